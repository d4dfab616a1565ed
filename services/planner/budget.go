package planner

import (
	"fmt"

	"tembea/models"
)

// Fixed daily allowances used by the parametric estimator. These are
// reference data, not user-configurable.
const (
	mealAllowancePerPersonPerDay = 30.0
	miscContingencyPerDay        = 50.0
)

// AccommodationTiers are the fixed price-per-night options.
var AccommodationTiers = []models.RateTier{
	{ID: "budget", Label: "Budget guesthouse", Rate: 40},
	{ID: "standard", Label: "Standard lodge", Rate: 100},
	{ID: "luxury", Label: "Luxury camp", Rate: 250},
}

// TransportTiers are the fixed price-per-day options.
var TransportTiers = []models.RateTier{
	{ID: "shared", Label: "Shared shuttle", Rate: 30},
	{ID: "private", Label: "Private car with driver", Rate: 80},
	{ID: "fourwheel", Label: "4x4 safari vehicle", Rate: 150},
}

// TourAddOns are the fixed-price optional tours.
var TourAddOns = []models.TourAddOn{
	{ID: "ngorongoro-day", Name: "Ngorongoro Crater day trip", Price: 120},
	{ID: "materuni-falls", Name: "Materuni waterfalls hike", Price: 45},
	{ID: "stone-town-walk", Name: "Stone Town walking tour", Price: 25},
	{ID: "cultural-boma", Name: "Maasai boma cultural visit", Price: 35},
	{ID: "coffee-farm", Name: "Coffee farm experience", Price: 30},
}

// AccommodationTier resolves a tier by id.
func AccommodationTier(id string) (models.RateTier, error) {
	for _, t := range AccommodationTiers {
		if t.ID == id {
			return t, nil
		}
	}
	return models.RateTier{}, fmt.Errorf("unknown accommodation tier %q", id)
}

// TransportTier resolves a tier by id.
func TransportTier(id string) (models.RateTier, error) {
	for _, t := range TransportTiers {
		if t.ID == id {
			return t, nil
		}
	}
	return models.RateTier{}, fmt.Errorf("unknown transport tier %q", id)
}

// TourAddOnByID resolves an add-on tour by id.
func TourAddOnByID(id string) (models.TourAddOn, error) {
	for _, t := range TourAddOns {
		if t.ID == id {
			return t, nil
		}
	}
	return models.TourAddOn{}, fmt.Errorf("unknown tour add-on %q", id)
}

// EstimateParametric computes the cost estimate from the fixed rate
// tables, before the traveler has chosen concrete services. A zero day
// count yields an all-zero breakdown.
func EstimateParametric(dayCount, travelerCount int, accommodationRate, transportRate float64, tourPrices []float64) models.BudgetBreakdown {
	if dayCount <= 0 || travelerCount <= 0 {
		return models.BudgetBreakdown{}
	}

	days := float64(dayCount)
	travelers := float64(travelerCount)

	var tours float64
	for _, p := range tourPrices {
		tours += p
	}
	tours *= travelers

	b := models.BudgetBreakdown{
		Accommodation: accommodationRate * days * travelers,
		Transport:     transportRate * days,
		Tours:         tours,
		Meals:         mealAllowancePerPersonPerDay * days * travelers,
		Misc:          miscContingencyPerDay * days,
	}
	b.Total = b.Accommodation + b.Transport + b.Tours + b.Meals + b.Misc
	return b
}

// EstimateFromSelection computes the cost of the traveler's concretely
// selected services: travelerCount * sum of prices. The parametric rate
// tables play no part here; the two modes are never blended.
func EstimateFromSelection(travelerCount int, services []models.ServiceListing) models.BudgetBreakdown {
	if travelerCount <= 0 {
		travelerCount = 1
	}
	travelers := float64(travelerCount)

	var b models.BudgetBreakdown
	for _, s := range services {
		cost := s.Price * travelers
		switch s.Category {
		case models.CategoryAccommodation:
			b.Accommodation += cost
		case models.CategoryTransportation:
			b.Transport += cost
		case models.CategoryTours:
			b.Tours += cost
		case models.CategoryFood:
			b.Meals += cost
		default:
			b.Misc += cost
		}
		b.Total += cost
	}
	return b
}
