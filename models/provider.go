package models

// Provider aggregates a business's matched listings. It is constructed
// by the matcher for one wizard session and never persisted; the first
// listing seen for a provider seeds the business metadata.
//
// Invariants: ServiceCategories is exactly the set of categories present
// in Services, and ServiceCount == len(Services).
type Provider struct {
	ID                string            `json:"id"`
	BusinessName      string            `json:"businessName"`
	Location          ListingLocation   `json:"location"`
	Verified          bool              `json:"verified"`
	Premium           bool              `json:"premium"`
	Rating            float64           `json:"rating"`
	ReviewCount       int               `json:"reviewCount"`
	ServiceCategories []ServiceCategory `json:"serviceCategories"`
	Services          []ServiceListing  `json:"services"`
	ServiceCount      int               `json:"serviceCount"`
}

// HasCategory reports whether the aggregate already carries c.
func (p *Provider) HasCategory(c ServiceCategory) bool {
	for _, have := range p.ServiceCategories {
		if have == c {
			return true
		}
	}
	return false
}

// AddListing extends the aggregate with one more matched listing,
// maintaining the category set and service count.
func (p *Provider) AddListing(l ServiceListing) {
	p.Services = append(p.Services, l)
	p.ServiceCount = len(p.Services)
	if !p.HasCategory(l.Category) {
		p.ServiceCategories = append(p.ServiceCategories, l.Category)
	}
}
