package planner

import (
	"testing"

	"tembea/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(id, providerID string, category models.ServiceCategory, region, district string, price float64) models.ServiceListing {
	return models.ServiceListing{
		ID:           id,
		Title:        "Listing " + id,
		Category:     category,
		Price:        price,
		Location:     models.ListingLocation{Region: region, District: district},
		ProviderID:   providerID,
		ProviderName: "Provider " + providerID,
	}
}

func TestMatchProvidersEmptyCatalog(t *testing.T) {
	got := MatchProviders(nil, models.Location{Region: "Arusha"}, nil)
	assert.Empty(t, got)

	got = MatchProviders([]models.ServiceListing{}, models.Location{}, []models.ServiceCategory{models.CategoryTours})
	assert.Empty(t, got)
}

func TestMatchProvidersKaratuAccommodation(t *testing.T) {
	snapshot := []models.ServiceListing{
		listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100),
		listing("a2", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 140),
		listing("a3", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 90),
		listing("b1", "P2", models.CategoryAccommodation, "Arusha", "Monduli", 70),
		listing("b2", "P2", models.CategoryAccommodation, "Arusha", "Monduli", 75),
		listing("t1", "P1", models.CategoryTransportation, "Arusha", "Karatu", 50),
	}

	got := MatchProviders(snapshot,
		models.Location{Region: "Arusha", District: "Karatu"},
		[]models.ServiceCategory{models.CategoryAccommodation},
	)

	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, 3, p.ServiceCount)
	require.Len(t, p.Services, 3)
	for _, s := range p.Services {
		assert.Equal(t, models.CategoryAccommodation, s.Category)
		assert.Equal(t, "Karatu", s.Location.District)
	}
	assert.Equal(t, []models.ServiceCategory{models.CategoryAccommodation}, p.ServiceCategories)
}

func TestMatchProvidersDistrictImpliesRegion(t *testing.T) {
	// Same district name in a different region must not match.
	snapshot := []models.ServiceListing{
		listing("x1", "P1", models.CategoryTours, "Arusha", "Karatu", 40),
		listing("x2", "P2", models.CategoryTours, "Kilimanjaro", "Karatu", 40),
	}

	got := MatchProviders(snapshot, models.Location{Region: "Arusha", District: "Karatu"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].ID)
}

func TestMatchProvidersRegionOnly(t *testing.T) {
	snapshot := []models.ServiceListing{
		listing("x1", "P1", models.CategoryTours, "Arusha", "Karatu", 40),
		listing("x2", "P2", models.CategoryTours, "Arusha", "Monduli", 40),
		listing("x3", "P3", models.CategoryTours, "Mwanza", "Ilemela", 40),
	}

	got := MatchProviders(snapshot, models.Location{Region: "Arusha"}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].ID)
	assert.Equal(t, "P2", got[1].ID)
}

func TestMatchProvidersEmptyCategorySetMatchesAll(t *testing.T) {
	snapshot := []models.ServiceListing{
		listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100),
		listing("t1", "P1", models.CategoryTransportation, "Arusha", "Karatu", 50),
		listing("f1", "P2", models.CategoryFood, "Arusha", "Karatu", 20),
	}
	loc := models.Location{Region: "Arusha", District: "Karatu"}

	all := MatchProviders(snapshot, loc, nil)
	alsoAll := MatchProviders(snapshot, loc, []models.ServiceCategory{})

	assert.Equal(t, all, alsoAll)
	require.Len(t, all, 2)
	assert.ElementsMatch(t,
		[]models.ServiceCategory{models.CategoryAccommodation, models.CategoryTransportation},
		all[0].ServiceCategories,
	)
}

func TestMatchProvidersDropsUnattributedListings(t *testing.T) {
	snapshot := []models.ServiceListing{
		listing("a1", "", models.CategoryAccommodation, "Arusha", "Karatu", 100),
		listing("a2", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 90),
	}

	got := MatchProviders(snapshot, models.Location{Region: "Arusha", District: "Karatu"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ServiceCount)
	assert.Equal(t, "a2", got[0].Services[0].ID)
}

func TestMatchProvidersCategorySetInvariant(t *testing.T) {
	snapshot := []models.ServiceListing{
		listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100),
		listing("a2", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 120),
		listing("t1", "P1", models.CategoryTransportation, "Arusha", "Karatu", 50),
		listing("c1", "P1", models.CategoryCulture, "Arusha", "Karatu", 35),
	}

	got := MatchProviders(snapshot, models.Location{Region: "Arusha", District: "Karatu"}, nil)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, len(p.Services), p.ServiceCount)

	// ServiceCategories must be exactly the category set of Services.
	want := map[models.ServiceCategory]bool{}
	for _, s := range p.Services {
		want[s.Category] = true
	}
	assert.Len(t, p.ServiceCategories, len(want))
	for _, c := range p.ServiceCategories {
		assert.True(t, want[c])
	}
}

func TestMatchProvidersDoesNotMutateSnapshot(t *testing.T) {
	snapshot := []models.ServiceListing{
		listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100),
		listing("t1", "P2", models.CategoryTransportation, "Arusha", "Monduli", 50),
	}
	before := make([]models.ServiceListing, len(snapshot))
	copy(before, snapshot)

	MatchProviders(snapshot, models.Location{Region: "Arusha", District: "Karatu"}, nil)
	assert.Equal(t, before, snapshot)

	// Referential transparency: same inputs, equivalent output.
	first := MatchProviders(snapshot, models.Location{Region: "Arusha"}, nil)
	second := MatchProviders(snapshot, models.Location{Region: "Arusha"}, nil)
	assert.Equal(t, first, second)
}

func TestMatchProvidersSeedsBusinessMetadata(t *testing.T) {
	first := listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100)
	first.ProviderVerified = true
	first.ProviderPremium = true
	first.ProviderRating = 4.6
	first.ProviderReviews = 120

	snapshot := []models.ServiceListing{
		first,
		listing("a2", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 90),
	}

	got := MatchProviders(snapshot, models.Location{Region: "Arusha", District: "Karatu"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Provider P1", got[0].BusinessName)
	assert.True(t, got[0].Verified)
	assert.True(t, got[0].Premium)
	assert.Equal(t, 4.6, got[0].Rating)
	assert.Equal(t, 120, got[0].ReviewCount)
}
