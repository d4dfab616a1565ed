package models

// ServiceCategory is the fixed set of bookable service categories.
type ServiceCategory string

const (
	CategoryAccommodation  ServiceCategory = "Accommodation"
	CategoryTransportation ServiceCategory = "Transportation"
	CategoryTours          ServiceCategory = "Tours & Activities"
	CategoryFood           ServiceCategory = "Food & Dining"
	CategoryCulture        ServiceCategory = "Cultural Experiences"
	CategoryShopping       ServiceCategory = "Shopping & Crafts"
)

// AllCategories lists every category in display order.
var AllCategories = []ServiceCategory{
	CategoryAccommodation,
	CategoryTransportation,
	CategoryTours,
	CategoryFood,
	CategoryCulture,
	CategoryShopping,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c ServiceCategory) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ServiceListing is one bookable offering from the external catalog.
// It is an immutable snapshot row; the matcher never mutates it.
// Provider metadata is flattened onto the listing the way the catalog
// API returns it, and seeds the Provider aggregate during grouping.
type ServiceListing struct {
	ID          string          `bson:"id" json:"id"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description" json:"description,omitempty"`
	Category    ServiceCategory `bson:"category" json:"category"`
	Price       float64         `bson:"price" json:"price"`
	Location    ListingLocation `bson:"location" json:"location"`
	Images      []string        `bson:"images" json:"images,omitempty"`

	ProviderID       string  `bson:"providerId" json:"providerId"`
	ProviderName     string  `bson:"providerName" json:"providerName,omitempty"`
	ProviderVerified bool    `bson:"providerVerified" json:"providerVerified,omitempty"`
	ProviderPremium  bool    `bson:"providerPremium" json:"providerPremium,omitempty"`
	ProviderRating   float64 `bson:"providerRating" json:"providerRating,omitempty"`
	ProviderReviews  int     `bson:"providerReviews" json:"providerReviews,omitempty"`
}
