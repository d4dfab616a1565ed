package planner

import (
	"testing"

	"tembea/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateParametricReferenceScenario(t *testing.T) {
	// 4 days, 2 travelers, accommodation 100/night, transport 80/day,
	// no tours: 800 + 320 + 0 + 240 + 200 = 1560.
	b := EstimateParametric(4, 2, 100, 80, nil)

	assert.Equal(t, 800.0, b.Accommodation)
	assert.Equal(t, 320.0, b.Transport)
	assert.Equal(t, 0.0, b.Tours)
	assert.Equal(t, 240.0, b.Meals)
	assert.Equal(t, 200.0, b.Misc)
	assert.Equal(t, 1560.0, b.Total)
}

func TestEstimateParametricZeroDays(t *testing.T) {
	b := EstimateParametric(0, 2, 100, 80, []float64{120, 45})
	assert.Equal(t, models.BudgetBreakdown{}, b)
}

func TestEstimateParametricTours(t *testing.T) {
	b := EstimateParametric(3, 2, 100, 80, []float64{120, 45})
	// Tours scale with travelers, not days.
	assert.Equal(t, (120.0+45.0)*2, b.Tours)
}

func TestEstimateParametricMonotonicInDays(t *testing.T) {
	prev := 0.0
	for days := 0; days <= 10; days++ {
		b := EstimateParametric(days, 2, 100, 80, []float64{50})
		assert.GreaterOrEqual(t, b.Total, prev, "days=%d", days)
		prev = b.Total
	}
}

func TestEstimateParametricMonotonicInTravelers(t *testing.T) {
	prev := 0.0
	for travelers := 1; travelers <= 8; travelers++ {
		b := EstimateParametric(5, travelers, 100, 80, []float64{50})
		assert.GreaterOrEqual(t, b.Total, prev, "travelers=%d", travelers)
		prev = b.Total
	}
}

func TestEstimateParametricMiscNotScaledByTravelers(t *testing.T) {
	two := EstimateParametric(4, 2, 100, 80, nil)
	five := EstimateParametric(4, 5, 100, 80, nil)
	assert.Equal(t, two.Misc, five.Misc)
	assert.Equal(t, two.Transport, five.Transport)
	assert.NotEqual(t, two.Meals, five.Meals)
}

func TestEstimateFromSelection(t *testing.T) {
	services := []models.ServiceListing{
		listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100),
		listing("t1", "P1", models.CategoryTransportation, "Arusha", "Karatu", 50),
		listing("x1", "P2", models.CategoryTours, "Arusha", "Karatu", 40),
	}

	b := EstimateFromSelection(2, services)
	assert.Equal(t, 200.0, b.Accommodation)
	assert.Equal(t, 100.0, b.Transport)
	assert.Equal(t, 80.0, b.Tours)
	assert.Equal(t, 0.0, b.Meals)
	// total == travelerCount * sum(prices); the rate tables play no part.
	assert.Equal(t, 2*(100.0+50.0+40.0), b.Total)
}

func TestEstimateFromSelectionAddingServiceNeverDecreasesTotal(t *testing.T) {
	services := []models.ServiceListing{
		listing("a1", "P1", models.CategoryAccommodation, "Arusha", "Karatu", 100),
	}
	before := EstimateFromSelection(3, services).Total

	services = append(services, listing("f1", "P1", models.CategoryFood, "Arusha", "Karatu", 0))
	withFree := EstimateFromSelection(3, services).Total
	assert.GreaterOrEqual(t, withFree, before)

	services = append(services, listing("t1", "P1", models.CategoryTransportation, "Arusha", "Karatu", 25))
	withPaid := EstimateFromSelection(3, services).Total
	assert.Greater(t, withPaid, withFree)
}

func TestEstimateFromSelectionEmpty(t *testing.T) {
	b := EstimateFromSelection(4, nil)
	assert.Equal(t, models.BudgetBreakdown{}, b)
}

func TestTierLookups(t *testing.T) {
	tier, err := AccommodationTier("standard")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, tier.Rate)

	_, err = AccommodationTier("penthouse")
	assert.Error(t, err)

	transport, err := TransportTier("private")
	assert.NoError(t, err)
	assert.Equal(t, 80.0, transport.Rate)

	_, err = TourAddOnByID("nope")
	assert.Error(t, err)
}
