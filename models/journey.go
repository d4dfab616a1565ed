package models

import (
	"math"
	"time"
)

// JourneyStep is one of the five ordered wizard stages.
type JourneyStep string

const (
	StepLocation  JourneyStep = "LOCATION"
	StepDates     JourneyStep = "DATES"
	StepServices  JourneyStep = "SERVICES"
	StepProviders JourneyStep = "PROVIDERS"
	StepSummary   JourneyStep = "SUMMARY"
)

// StepOrder is the strict forward progression of the wizard.
var StepOrder = []JourneyStep{StepLocation, StepDates, StepServices, StepProviders, StepSummary}

// DateLayout is the wire format for travel dates.
const DateLayout = "2006-01-02"

// TravelWindow holds the traveler's dates and party size. Dates are
// "YYYY-MM-DD" strings as sent by the storefront.
type TravelWindow struct {
	CheckInDate   string `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate  string `bson:"checkOutDate" json:"checkOutDate"`
	TravelerCount int    `bson:"travelerCount" json:"travelerCount"`
}

// DayCount is the number of chargeable days: ceil(checkOut - checkIn).
// It is 0 until both dates are set, and never negative.
func (w TravelWindow) DayCount() int {
	in, errIn := time.Parse(DateLayout, w.CheckInDate)
	out, errOut := time.Parse(DateLayout, w.CheckOutDate)
	if errIn != nil || errOut != nil {
		return 0
	}
	days := int(math.Ceil(out.Sub(in).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// JourneySession is the wizard's in-progress state. It is created when
// the wizard opens, mutated only through step-transition operations,
// and discarded (or persisted as a JourneyPlan) on exit.
type JourneySession struct {
	SessionID          string            `json:"sessionId"`
	UserID             string            `json:"userId"`
	DeviceToken        string            `json:"deviceToken,omitempty"`
	Step               JourneyStep       `json:"step"`
	Location           Location          `json:"location"`
	TravelWindow       TravelWindow      `json:"travelWindow"`
	SelectedCategories []ServiceCategory `json:"selectedCategories"`
	MatchedProviders   []Provider        `json:"matchedProviders"`
	SelectedProviders  []Provider        `json:"selectedProviders"`
	SelectedServices   []ServiceListing  `json:"selectedServices"`

	// MatchGeneration increases every time a provider match is issued;
	// a match result is applied only if the session still carries the
	// generation it was issued under.
	MatchGeneration uint64 `json:"matchGeneration"`
	// MatchStale marks that location or categories changed since the
	// last applied match.
	MatchStale bool `json:"matchStale"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JourneyPlan status values.
const (
	PlanStatusSaved          = "saved"
	PlanStatusPendingPayment = "pending_payment"
)

// JourneyService is a selected service carried on a persisted plan,
// with provider attribution.
type JourneyService struct {
	ServiceID    string          `bson:"serviceId" json:"serviceId"`
	Name         string          `bson:"name" json:"name"`
	Category     ServiceCategory `bson:"category" json:"category"`
	Price        float64         `bson:"price" json:"price"`
	ProviderID   string          `bson:"providerId" json:"providerId"`
	ProviderName string          `bson:"providerName" json:"providerName"`
}

// JourneyPlan is a traveler's saved or pending multi-service trip record.
type JourneyPlan struct {
	ID          string           `bson:"id" json:"id"`
	UserID      string           `bson:"userId" json:"userId"`
	Status      string           `bson:"status" json:"status"`
	Region      string           `bson:"region" json:"region"`
	District    string           `bson:"district" json:"district"`
	Area        string           `bson:"area" json:"area,omitempty"`
	StartDate   string           `bson:"startDate" json:"startDate"`
	EndDate     string           `bson:"endDate" json:"endDate"`
	Travelers   int              `bson:"travelers" json:"travelers"`
	Services    []JourneyService `bson:"services" json:"services"`
	TotalCost   float64          `bson:"totalCost" json:"totalCost"`
	DeviceToken string           `bson:"deviceToken,omitempty" json:"-"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
}
