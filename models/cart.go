package models

// JourneyDetails carries enough trip context on a cart item for the
// downstream payment/contact flow to function without re-querying the
// wizard.
type JourneyDetails struct {
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	TravelerCount int    `json:"travelerCount"`
	Destination   string `json:"destination"`
}

// CartItem is one line item handed off to the external cart/checkout
// subsystem. Quantity is the trip's day count.
type CartItem struct {
	ID             string          `json:"id"`
	ServiceID      string          `json:"serviceId"`
	Name           string          `json:"name"`
	Category       ServiceCategory `json:"category"`
	Price          float64         `json:"price"`
	Quantity       int             `json:"quantity"`
	ProviderID     string          `json:"providerId"`
	ProviderName   string          `json:"providerName"`
	JourneyDetails JourneyDetails  `json:"journeyDetails"`
}
