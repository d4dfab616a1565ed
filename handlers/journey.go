package handlers

import (
	"errors"
	"net/http"
	"strings"

	journeyRepo "tembea/database/repository/journey"
	"tembea/models"
	"tembea/services/catalog"
	"tembea/services/planner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JourneyHandler exposes the trip wizard over HTTP.
type JourneyHandler struct {
	Wizard planner.JourneyWizardService
	Plans  journeyRepo.Repository
	Logger *zap.Logger
}

func NewJourneyHandler(wizard planner.JourneyWizardService, plans journeyRepo.Repository, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{Wizard: wizard, Plans: plans, Logger: logger}
}

// respondWizardError maps planner error types onto HTTP statuses.
func (h *JourneyHandler) respondWizardError(c *gin.Context, err error) {
	var vErr *planner.ValidationError
	var cartErr *planner.EmptyCartError
	var fetchErr *catalog.FetchError

	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "journey session not found or expired"})
	case errors.Is(err, journeyRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "journey plan not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.As(err, &cartErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": cartErr.Error()})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "could not reach the service catalog",
			"retryable": fetchErr.Retryable,
		})
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// StartSession opens a new wizard session.
func (h *JourneyHandler) StartSession(c *gin.Context) {
	var input struct {
		UserID      string `json:"userId" binding:"required"`
		DeviceToken string `json:"deviceToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.StartSession(c.Request.Context(), input.UserID, input.DeviceToken)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns the current wizard state.
func (h *JourneyHandler) GetSession(c *gin.Context) {
	session, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelSession abandons the wizard.
func (h *JourneyHandler) CancelSession(c *gin.Context) {
	if err := h.Wizard.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// SetLocation records the destination for the LOCATION step.
func (h *JourneyHandler) SetLocation(c *gin.Context) {
	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.SetLocation(c.Request.Context(), c.Param("sessionID"), loc)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetDates records the travel window for the DATES step.
func (h *JourneyHandler) SetDates(c *gin.Context) {
	var window models.TravelWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.SetTravelWindow(c.Request.Context(), c.Param("sessionID"), window)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetCategories records the selected service categories.
func (h *JourneyHandler) SetCategories(c *gin.Context) {
	var input struct {
		Categories []models.ServiceCategory `json:"categories"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.SetCategories(c.Request.Context(), c.Param("sessionID"), input.Categories)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance moves the wizard forward one step.
func (h *JourneyHandler) Advance(c *gin.Context) {
	session, err := h.Wizard.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Back moves the wizard back one step without clearing data.
func (h *JourneyHandler) Back(c *gin.Context) {
	session, err := h.Wizard.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleProvider selects or deselects a matched provider.
func (h *JourneyHandler) ToggleProvider(c *gin.Context) {
	session, err := h.Wizard.ToggleProvider(c.Request.Context(), c.Param("sessionID"), c.Param("providerID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleService selects or deselects a concrete service listing.
func (h *JourneyHandler) ToggleService(c *gin.Context) {
	session, err := h.Wizard.ToggleService(c.Request.Context(), c.Param("sessionID"), c.Param("serviceID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Estimate returns the parametric budget for the chosen tiers,
// e.g. GET ...?accommodation=standard&transport=private&tours=a,b.
func (h *JourneyHandler) Estimate(c *gin.Context) {
	var tourIDs []string
	if raw := c.Query("tours"); raw != "" {
		tourIDs = strings.Split(raw, ",")
	}

	breakdown, err := h.Wizard.ParametricEstimate(
		c.Request.Context(),
		c.Param("sessionID"),
		c.Query("accommodation"),
		c.Query("transport"),
		tourIDs,
	)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// Summary returns the SUMMARY step payload.
func (h *JourneyHandler) Summary(c *gin.Context) {
	summary, err := h.Wizard.Summary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SavePlan exits the wizard by persisting a saved journey plan.
func (h *JourneyHandler) SavePlan(c *gin.Context) {
	plan, err := h.Wizard.SavePlan(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"journeyPlan": plan})
}

// Checkout exits the wizard into the cart/payment handoff.
func (h *JourneyHandler) Checkout(c *gin.Context) {
	var input struct {
		PaymentMethod  string            `json:"paymentMethod" binding:"required"`
		PaymentDetails map[string]string `json:"paymentDetails"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Wizard.Checkout(c.Request.Context(), c.Param("sessionID"), input.PaymentMethod, input.PaymentDetails)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPlan returns one saved journey plan.
func (h *JourneyHandler) GetPlan(c *gin.Context) {
	plan, err := h.Plans.GetByID(c.Request.Context(), c.Param("planID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"journeyPlan": plan})
}

// DeletePlan removes a saved journey plan.
func (h *JourneyHandler) DeletePlan(c *gin.Context) {
	if err := h.Plans.Delete(c.Request.Context(), c.Param("planID")); err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "journey plan deleted"})
}

// CheckoutSavedPlan moves an already-saved plan into the payment path.
func (h *JourneyHandler) CheckoutSavedPlan(c *gin.Context) {
	var input struct {
		PaymentMethod  string            `json:"paymentMethod" binding:"required"`
		PaymentDetails map[string]string `json:"paymentDetails"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Wizard.CheckoutSavedPlan(c.Request.Context(), c.Param("planID"), input.PaymentMethod, input.PaymentDetails)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPlans returns a user's saved journey plans, newest first.
func (h *JourneyHandler) ListPlans(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	plans, err := h.Plans.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list journey plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list journey plans"})
		return
	}
	if plans == nil {
		plans = []models.JourneyPlan{}
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
