package planner

import (
	"time"

	"tembea/models"

	"github.com/google/uuid"
)

// AssembledJourney is the wizard's final output: a persistable plan
// plus the cart line items handed to the external checkout subsystem.
type AssembledJourney struct {
	Plan  models.JourneyPlan `json:"journeyPlan"`
	Items []models.CartItem  `json:"cartItems"`
}

// AssembleJourney converts a finished wizard session into a journey
// plan record and cart items. One cart item is produced per selected
// service, with quantity equal to the trip's day count. Zero selected
// services is legal here; the checkout path rejects it separately.
func AssembleJourney(session *models.JourneySession, status string, now time.Time) AssembledJourney {
	window := session.TravelWindow
	dayCount := window.DayCount()
	details := models.JourneyDetails{
		CheckInDate:   window.CheckInDate,
		CheckOutDate:  window.CheckOutDate,
		TravelerCount: window.TravelerCount,
		Destination:   session.Location.Destination(),
	}

	items := make([]models.CartItem, 0, len(session.SelectedServices))
	planServices := make([]models.JourneyService, 0, len(session.SelectedServices))
	for _, s := range session.SelectedServices {
		items = append(items, models.CartItem{
			ID:             uuid.New().String(),
			ServiceID:      s.ID,
			Name:           s.Title,
			Category:       s.Category,
			Price:          s.Price,
			Quantity:       dayCount,
			ProviderID:     s.ProviderID,
			ProviderName:   s.ProviderName,
			JourneyDetails: details,
		})
		planServices = append(planServices, models.JourneyService{
			ServiceID:    s.ID,
			Name:         s.Title,
			Category:     s.Category,
			Price:        s.Price,
			ProviderID:   s.ProviderID,
			ProviderName: s.ProviderName,
		})
	}

	breakdown := EstimateFromSelection(window.TravelerCount, session.SelectedServices)

	area := session.Location.Ward
	if session.Location.Street != "" {
		area = session.Location.Street + ", " + session.Location.Ward
	}

	plan := models.JourneyPlan{
		ID:          uuid.New().String(),
		UserID:      session.UserID,
		Status:      status,
		Region:      session.Location.Region,
		District:    session.Location.District,
		Area:        area,
		StartDate:   window.CheckInDate,
		EndDate:     window.CheckOutDate,
		Travelers:   window.TravelerCount,
		Services:    planServices,
		TotalCost:   breakdown.Total,
		DeviceToken: session.DeviceToken,
		CreatedAt:   now,
	}

	return AssembledJourney{Plan: plan, Items: items}
}

// CartItemsFromPlan rebuilds cart line items from a persisted plan, so
// a previously saved plan can still be handed to checkout.
func CartItemsFromPlan(plan *models.JourneyPlan) []models.CartItem {
	window := models.TravelWindow{
		CheckInDate:   plan.StartDate,
		CheckOutDate:  plan.EndDate,
		TravelerCount: plan.Travelers,
	}
	details := models.JourneyDetails{
		CheckInDate:   plan.StartDate,
		CheckOutDate:  plan.EndDate,
		TravelerCount: plan.Travelers,
		Destination:   models.Location{Region: plan.Region, District: plan.District}.Destination(),
	}
	dayCount := window.DayCount()

	items := make([]models.CartItem, 0, len(plan.Services))
	for _, s := range plan.Services {
		items = append(items, models.CartItem{
			ID:             uuid.New().String(),
			ServiceID:      s.ServiceID,
			Name:           s.Name,
			Category:       s.Category,
			Price:          s.Price,
			Quantity:       dayCount,
			ProviderID:     s.ProviderID,
			ProviderName:   s.ProviderName,
			JourneyDetails: details,
		})
	}
	return items
}
