package planner

import (
	"tembea/models"
)

// MatchProviders filters a catalog snapshot by exact location and
// category constraints, then groups the surviving listings into
// per-provider aggregates.
//
// Location filter: a set district requires both district and region to
// agree; a region alone matches on region; an empty location is a
// no-op. An empty category set means "match all categories". Listings
// without a provider id cannot be attributed and are dropped.
//
// The function is pure: it never mutates the snapshot, and identical
// inputs always yield an equivalent grouping. Output order is the
// first-occurrence order of providers in the snapshot; callers must not
// rely on it.
func MatchProviders(snapshot []models.ServiceListing, loc models.Location, categories []models.ServiceCategory) []models.Provider {
	if len(snapshot) == 0 {
		return []models.Provider{}
	}

	wanted := make(map[models.ServiceCategory]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}

	byProvider := make(map[string]*models.Provider)
	var order []string

	for _, l := range snapshot {
		if !locationMatches(l.Location, loc) {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[l.Category]; !ok {
				continue
			}
		}
		if l.ProviderID == "" {
			continue
		}

		agg, ok := byProvider[l.ProviderID]
		if !ok {
			// First listing seeds the business metadata.
			agg = &models.Provider{
				ID:           l.ProviderID,
				BusinessName: l.ProviderName,
				Location:     l.Location,
				Verified:     l.ProviderVerified,
				Premium:      l.ProviderPremium,
				Rating:       l.ProviderRating,
				ReviewCount:  l.ProviderReviews,
			}
			byProvider[l.ProviderID] = agg
			order = append(order, l.ProviderID)
		}
		agg.AddListing(l)
	}

	providers := make([]models.Provider, 0, len(order))
	for _, id := range order {
		providers = append(providers, *byProvider[id])
	}
	return providers
}

func locationMatches(have models.ListingLocation, want models.Location) bool {
	if want.District != "" {
		return have.District == want.District && have.Region == want.Region
	}
	if want.Region != "" {
		return have.Region == want.Region
	}
	return true
}
