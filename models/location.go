package models

// Location identifies where a traveler wants to stay, at increasing
// precision. District implies region; ward and street are optional
// refinements of district.
type Location struct {
	Region   string `bson:"region" json:"region"`
	District string `bson:"district" json:"district,omitempty"`
	Ward     string `bson:"ward" json:"ward,omitempty"`
	Street   string `bson:"street" json:"street,omitempty"`
}

// Destination renders the most specific human-readable place name,
// e.g. "Karatu, Arusha".
func (l Location) Destination() string {
	switch {
	case l.District != "" && l.Region != "":
		return l.District + ", " + l.Region
	case l.Region != "":
		return l.Region
	default:
		return ""
	}
}

// IsZero reports whether no part of the location has been set.
func (l Location) IsZero() bool {
	return l.Region == "" && l.District == "" && l.Ward == "" && l.Street == ""
}

// ListingLocation is the coarse placement carried on a catalog listing.
type ListingLocation struct {
	Region   string `bson:"region" json:"region"`
	District string `bson:"district" json:"district"`
}
