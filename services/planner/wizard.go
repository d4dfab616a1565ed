package planner

import (
	"context"
	"fmt"
	"time"

	"tembea/models"
	"tembea/services/geo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession opens a fresh wizard at the LOCATION step.
func (s *DefaultJourneyWizardService) StartSession(ctx context.Context, userID, deviceToken string) (*models.JourneySession, error) {
	if userID == "" {
		return nil, newValidationError("userId", "user id is required")
	}

	now := time.Now()
	session := &models.JourneySession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		DeviceToken: deviceToken,
		Step:        models.StepLocation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("journey session started",
		zap.String("sessionId", session.SessionID),
		zap.String("userId", userID),
	)
	return session, nil
}

// GetSession returns the current wizard state.
func (s *DefaultJourneyWizardService) GetSession(ctx context.Context, sessionID string) (*models.JourneySession, error) {
	return s.Store.Get(ctx, sessionID)
}

// CancelSession abandons the wizard without persisting anything.
func (s *DefaultJourneyWizardService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// SetLocation records the traveler's destination. Changing it
// invalidates any previous provider match; if the wizard is already on
// the PROVIDERS step the match is refreshed immediately.
func (s *DefaultJourneyWizardService) SetLocation(ctx context.Context, sessionID string, loc models.Location) (*models.JourneySession, error) {
	if err := geo.Validate(loc); err != nil {
		return nil, &ValidationError{Field: "location", Message: err.Error()}
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Location != loc {
		session.MatchStale = true
	}
	session.Location = loc
	session.UpdatedAt = time.Now()

	if session.MatchStale && atOrPast(session, models.StepProviders) {
		if err := s.refreshMatches(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetTravelWindow records the traveler's dates and party size. Presence
// and ordering are enforced by the DATES guard on Advance, so partial
// input is allowed here.
func (s *DefaultJourneyWizardService) SetTravelWindow(ctx context.Context, sessionID string, w models.TravelWindow) (*models.JourneySession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.TravelWindow = w
	session.UpdatedAt = time.Now()

	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetCategories records the traveler's service categories. An empty set
// is legal and means "match all categories". Changing the set
// invalidates any previous provider match.
func (s *DefaultJourneyWizardService) SetCategories(ctx context.Context, sessionID string, categories []models.ServiceCategory) (*models.JourneySession, error) {
	for _, c := range categories {
		if !models.ValidCategory(c) {
			return nil, newValidationError("categories", fmt.Sprintf("unknown category %q", c))
		}
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sameCategories(session.SelectedCategories, categories) {
		session.MatchStale = true
	}
	session.SelectedCategories = categories
	session.UpdatedAt = time.Now()

	if session.MatchStale && atOrPast(session, models.StepProviders) {
		if err := s.refreshMatches(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard one step forward if the current step's guard
// is met. Entering PROVIDERS triggers a provider match against the
// current catalog snapshot.
func (s *DefaultJourneyWizardService) Advance(ctx context.Context, sessionID string) (*models.JourneySession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := checkAdvanceGuard(session, time.Now()); err != nil {
		return nil, err
	}

	idx := stepIndex(session.Step)
	session.Step = models.StepOrder[idx+1]
	session.UpdatedAt = time.Now()

	if session.Step == models.StepProviders && (session.MatchStale || session.MatchedProviders == nil) {
		if err := s.refreshMatches(ctx, session); err != nil {
			// Stay on SERVICES so the transition itself is the retry.
			session.Step = models.StepOrder[idx]
			if putErr := s.Store.Put(ctx, session); putErr != nil {
				s.Logger.Warn("failed to roll back step after match failure",
					zap.String("sessionId", session.SessionID), zap.Error(putErr))
			}
			return nil, err
		}
		return session, nil
	}

	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard one step backward. Already-entered data is
// kept, so a traveler can revise an earlier choice without losing later
// selections.
func (s *DefaultJourneyWizardService) Back(ctx context.Context, sessionID string) (*models.JourneySession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := stepIndex(session.Step)
	if idx <= 0 {
		return nil, newValidationError("step", "already at the first step")
	}
	session.Step = models.StepOrder[idx-1]
	session.UpdatedAt = time.Now()

	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// refreshMatches issues a new provider match under a fresh generation.
// The session is re-read after the catalog fetch; if a newer generation
// was issued meanwhile, this result is discarded silently rather than
// overwriting fresher data.
func (s *DefaultJourneyWizardService) refreshMatches(ctx context.Context, session *models.JourneySession) error {
	session.MatchGeneration++
	gen := session.MatchGeneration
	session.MatchStale = false
	if err := s.Store.Put(ctx, session); err != nil {
		return err
	}

	snapshot, err := s.Catalog.FetchSnapshot(ctx)
	if err != nil {
		s.Logger.Warn("catalog fetch failed during provider match",
			zap.String("sessionId", session.SessionID),
			zap.Error(err),
		)
		// The old match set is still stale; re-mark it so the next
		// entry into PROVIDERS retries the fetch instead of reusing it.
		if latest, getErr := s.Store.Get(ctx, session.SessionID); getErr == nil && latest.MatchGeneration == gen {
			latest.MatchStale = true
			if putErr := s.Store.Put(ctx, latest); putErr != nil {
				s.Logger.Warn("failed to re-mark match stale",
					zap.String("sessionId", session.SessionID), zap.Error(putErr))
			}
			*session = *latest
		}
		return err
	}

	latest, err := s.Store.Get(ctx, session.SessionID)
	if err != nil {
		return err
	}
	if latest.MatchGeneration != gen {
		s.Logger.Debug("discarding stale provider match",
			zap.String("sessionId", session.SessionID),
			zap.Uint64("issued", gen),
			zap.Uint64("current", latest.MatchGeneration),
		)
		*session = *latest
		return nil
	}

	latest.MatchedProviders = MatchProviders(snapshot, latest.Location, latest.SelectedCategories)
	pruneSelections(latest)
	latest.UpdatedAt = time.Now()

	if err := s.Store.Put(ctx, latest); err != nil {
		return err
	}
	*session = *latest

	s.Logger.Info("provider match refreshed",
		zap.String("sessionId", session.SessionID),
		zap.Int("providers", len(session.MatchedProviders)),
		zap.Uint64("generation", gen),
	)
	return nil
}

// pruneSelections drops selected providers and services that are no
// longer present in the refreshed match set; a location or category
// change invalidates them.
func pruneSelections(session *models.JourneySession) {
	matched := make(map[string]*models.Provider, len(session.MatchedProviders))
	for i := range session.MatchedProviders {
		matched[session.MatchedProviders[i].ID] = &session.MatchedProviders[i]
	}

	var providers []models.Provider
	for _, p := range session.SelectedProviders {
		if fresh, ok := matched[p.ID]; ok {
			providers = append(providers, *fresh)
		}
	}
	session.SelectedProviders = providers

	stillMatched := make(map[string]models.ServiceListing)
	for _, p := range session.SelectedProviders {
		for _, l := range p.Services {
			stillMatched[l.ID] = l
		}
	}
	var services []models.ServiceListing
	for _, l := range session.SelectedServices {
		if fresh, ok := stillMatched[l.ID]; ok {
			services = append(services, fresh)
		}
	}
	session.SelectedServices = services
}

// ToggleProvider selects or deselects a matched provider. Deselecting a
// provider also drops any of its selected services.
func (s *DefaultJourneyWizardService) ToggleProvider(ctx context.Context, sessionID, providerID string) (*models.JourneySession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i, p := range session.SelectedProviders {
		if p.ID == providerID {
			session.SelectedProviders = append(session.SelectedProviders[:i], session.SelectedProviders[i+1:]...)
			var kept []models.ServiceListing
			for _, l := range session.SelectedServices {
				if l.ProviderID != providerID {
					kept = append(kept, l)
				}
			}
			session.SelectedServices = kept
			session.UpdatedAt = time.Now()
			if err := s.Store.Put(ctx, session); err != nil {
				return nil, err
			}
			return session, nil
		}
	}

	var found *models.Provider
	for i := range session.MatchedProviders {
		if session.MatchedProviders[i].ID == providerID {
			found = &session.MatchedProviders[i]
			break
		}
	}
	if found == nil {
		return nil, newValidationError("providerId", "provider is not in the matched providers list")
	}

	session.SelectedProviders = append(session.SelectedProviders, *found)
	session.UpdatedAt = time.Now()
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ToggleService selects or deselects a concrete listing offered by one
// of the selected providers.
func (s *DefaultJourneyWizardService) ToggleService(ctx context.Context, sessionID, serviceID string) (*models.JourneySession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i, l := range session.SelectedServices {
		if l.ID == serviceID {
			session.SelectedServices = append(session.SelectedServices[:i], session.SelectedServices[i+1:]...)
			session.UpdatedAt = time.Now()
			if err := s.Store.Put(ctx, session); err != nil {
				return nil, err
			}
			return session, nil
		}
	}

	var found *models.ServiceListing
	for _, p := range session.SelectedProviders {
		for i := range p.Services {
			if p.Services[i].ID == serviceID {
				found = &p.Services[i]
				break
			}
		}
	}
	if found == nil {
		return nil, newValidationError("serviceId", "service does not belong to a selected provider")
	}

	session.SelectedServices = append(session.SelectedServices, *found)
	session.UpdatedAt = time.Now()
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ParametricEstimate computes the rate-table estimate for the session's
// travel window. Used while no concrete services are chosen.
func (s *DefaultJourneyWizardService) ParametricEstimate(ctx context.Context, sessionID, accommodationTierID, transportTierID string, tourIDs []string) (*models.BudgetBreakdown, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	accommodation, err := AccommodationTier(accommodationTierID)
	if err != nil {
		return nil, &ValidationError{Field: "accommodationTier", Message: err.Error()}
	}
	transport, err := TransportTier(transportTierID)
	if err != nil {
		return nil, &ValidationError{Field: "transportTier", Message: err.Error()}
	}
	tourPrices := make([]float64, 0, len(tourIDs))
	for _, id := range tourIDs {
		tour, err := TourAddOnByID(id)
		if err != nil {
			return nil, &ValidationError{Field: "tours", Message: err.Error()}
		}
		tourPrices = append(tourPrices, tour.Price)
	}

	window := session.TravelWindow
	breakdown := EstimateParametric(window.DayCount(), window.TravelerCount, accommodation.Rate, transport.Rate, tourPrices)
	return &breakdown, nil
}

// Summary returns the SUMMARY step payload: concrete-selection cost and
// a cart preview.
func (s *DefaultJourneyWizardService) Summary(ctx context.Context, sessionID string) (*JourneySummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	assembled := AssembleJourney(session, models.PlanStatusSaved, time.Now())
	return &JourneySummary{
		Session:   session,
		Breakdown: EstimateFromSelection(session.TravelWindow.TravelerCount, session.SelectedServices),
		CartItems: assembled.Items,
	}, nil
}

// SavePlan persists the session as a saved journey plan and ends the
// wizard. Zero selected services is legal on this path.
func (s *DefaultJourneyWizardService) SavePlan(ctx context.Context, sessionID string) (*models.JourneyPlan, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSummary {
		return nil, newValidationError("step", "plan can only be saved from the summary step")
	}

	assembled := AssembleJourney(session, models.PlanStatusSaved, time.Now())
	if err := s.Plans.Save(ctx, assembled.Plan); err != nil {
		return nil, fmt.Errorf("failed to save journey plan: %w", err)
	}

	s.scheduleReminder(ctx, assembled.Plan)

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear session after save",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Logger.Info("journey plan saved",
		zap.String("planId", assembled.Plan.ID),
		zap.String("userId", assembled.Plan.UserID),
	)
	return &assembled.Plan, nil
}

// Checkout persists the session as a pending-payment plan, records the
// payment handoff, and hands the cart to the external checkout
// subsystem. An empty cart is rejected before anything is persisted.
func (s *DefaultJourneyWizardService) Checkout(ctx context.Context, sessionID, paymentMethod string, paymentDetails map[string]string) (*CheckoutResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSummary {
		return nil, newValidationError("step", "checkout is only available from the summary step")
	}
	if len(session.SelectedServices) == 0 {
		return nil, &EmptyCartError{}
	}
	if !validPaymentMethod(paymentMethod) {
		return nil, newValidationError("paymentMethod", fmt.Sprintf("unsupported payment method %q", paymentMethod))
	}

	assembled := AssembleJourney(session, models.PlanStatusPendingPayment, time.Now())
	if err := s.Plans.Save(ctx, assembled.Plan); err != nil {
		return nil, fmt.Errorf("failed to save journey plan: %w", err)
	}

	record := models.PaymentRecord{
		ID:             uuid.New().String(),
		UserID:         session.UserID,
		PlanID:         assembled.Plan.ID,
		Amount:         assembled.Plan.TotalCost,
		PaymentMethod:  paymentMethod,
		PaymentDetails: paymentDetails,
		Status:         "pending",
		CreatedAt:      time.Now(),
	}
	if _, err := s.Payments.Record(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record payment handoff: %w", err)
	}

	s.scheduleReminder(ctx, assembled.Plan)

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear session after checkout",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Logger.Info("journey checkout handed off",
		zap.String("planId", assembled.Plan.ID),
		zap.Float64("amount", record.Amount),
		zap.String("method", paymentMethod),
	)
	return &CheckoutResult{Plan: assembled.Plan, Items: assembled.Items, Payment: record}, nil
}

// CheckoutSavedPlan moves a previously saved plan into the payment
// path: status saved -> pending_payment, with the payment handoff
// recorded and the cart rebuilt from the persisted plan.
func (s *DefaultJourneyWizardService) CheckoutSavedPlan(ctx context.Context, planID, paymentMethod string, paymentDetails map[string]string) (*CheckoutResult, error) {
	plan, err := s.Plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanStatusSaved {
		return nil, newValidationError("status", fmt.Sprintf("plan is %s; only saved plans can be checked out", plan.Status))
	}
	if len(plan.Services) == 0 {
		return nil, &EmptyCartError{}
	}
	if !validPaymentMethod(paymentMethod) {
		return nil, newValidationError("paymentMethod", fmt.Sprintf("unsupported payment method %q", paymentMethod))
	}

	if err := s.Plans.UpdateStatus(ctx, plan.ID, models.PlanStatusPendingPayment); err != nil {
		return nil, fmt.Errorf("failed to update plan status: %w", err)
	}
	plan.Status = models.PlanStatusPendingPayment

	record := models.PaymentRecord{
		ID:             uuid.New().String(),
		UserID:         plan.UserID,
		PlanID:         plan.ID,
		Amount:         plan.TotalCost,
		PaymentMethod:  paymentMethod,
		PaymentDetails: paymentDetails,
		Status:         "pending",
		CreatedAt:      time.Now(),
	}
	if _, err := s.Payments.Record(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record payment handoff: %w", err)
	}

	s.Logger.Info("saved plan checked out",
		zap.String("planId", plan.ID),
		zap.Float64("amount", record.Amount),
	)
	return &CheckoutResult{Plan: *plan, Items: CartItemsFromPlan(plan), Payment: record}, nil
}

// scheduleReminder is best-effort; a failed reminder never fails the
// exit path.
func (s *DefaultJourneyWizardService) scheduleReminder(ctx context.Context, plan models.JourneyPlan) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleTripReminder(ctx, plan); err != nil {
		s.Logger.Warn("failed to schedule trip reminder",
			zap.String("planId", plan.ID), zap.Error(err))
	}
}

func validPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodCard, models.PaymentMethodMobileMoney, models.PaymentMethodCash:
		return true
	}
	return false
}

func sameCategories(a, b []models.ServiceCategory) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[models.ServiceCategory]struct{}, len(a))
	for _, c := range a {
		set[c] = struct{}{}
	}
	for _, c := range b {
		if _, ok := set[c]; !ok {
			return false
		}
	}
	return true
}

var _ JourneyWizardService = (*DefaultJourneyWizardService)(nil)
