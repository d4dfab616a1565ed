package planner

import (
	"context"

	journeyRepo "tembea/database/repository/journey"
	paymentRepo "tembea/database/repository/payment"
	"tembea/models"
	"tembea/services/catalog"

	"go.uber.org/zap"
)

// JourneySummary is the SUMMARY step payload: the session, the cost of
// what was concretely selected, and a preview of the cart handoff.
type JourneySummary struct {
	Session   *models.JourneySession `json:"session"`
	Breakdown models.BudgetBreakdown `json:"breakdown"`
	CartItems []models.CartItem      `json:"cartItems"`
}

// CheckoutResult is the payment-path exit: the persisted plan, the cart
// handed to the external checkout subsystem, and the pending payment.
type CheckoutResult struct {
	Plan    models.JourneyPlan   `json:"journeyPlan"`
	Items   []models.CartItem    `json:"cartItems"`
	Payment models.PaymentRecord `json:"payment"`
}

// ReminderScheduler schedules a pre-trip reminder for a saved plan.
// Implementations must tolerate plans with no device token.
type ReminderScheduler interface {
	ScheduleTripReminder(ctx context.Context, plan models.JourneyPlan) error
}

// JourneyWizardService drives the five-step trip wizard:
// LOCATION -> DATES -> SERVICES -> PROVIDERS -> SUMMARY.
type JourneyWizardService interface {
	StartSession(ctx context.Context, userID, deviceToken string) (*models.JourneySession, error)
	GetSession(ctx context.Context, sessionID string) (*models.JourneySession, error)
	CancelSession(ctx context.Context, sessionID string) error

	SetLocation(ctx context.Context, sessionID string, loc models.Location) (*models.JourneySession, error)
	SetTravelWindow(ctx context.Context, sessionID string, w models.TravelWindow) (*models.JourneySession, error)
	SetCategories(ctx context.Context, sessionID string, categories []models.ServiceCategory) (*models.JourneySession, error)

	Advance(ctx context.Context, sessionID string) (*models.JourneySession, error)
	Back(ctx context.Context, sessionID string) (*models.JourneySession, error)

	ToggleProvider(ctx context.Context, sessionID, providerID string) (*models.JourneySession, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*models.JourneySession, error)

	ParametricEstimate(ctx context.Context, sessionID, accommodationTierID, transportTierID string, tourIDs []string) (*models.BudgetBreakdown, error)
	Summary(ctx context.Context, sessionID string) (*JourneySummary, error)

	SavePlan(ctx context.Context, sessionID string) (*models.JourneyPlan, error)
	Checkout(ctx context.Context, sessionID, paymentMethod string, paymentDetails map[string]string) (*CheckoutResult, error)
	CheckoutSavedPlan(ctx context.Context, planID, paymentMethod string, paymentDetails map[string]string) (*CheckoutResult, error)
}

// DefaultJourneyWizardService implements JourneyWizardService.
type DefaultJourneyWizardService struct {
	Store     SessionStore
	Catalog   catalog.Client
	Plans     journeyRepo.Repository
	Payments  paymentRepo.Repository
	Reminders ReminderScheduler // optional
	Logger    *zap.Logger
}
