package handlers

import (
	"net/http"
	"time"

	paymentRepo "tembea/database/repository/payment"
	"tembea/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler records payment handoffs for the external gateway.
type PaymentHandler struct {
	Repo   paymentRepo.Repository
	Logger *zap.Logger
}

func NewPaymentHandler(repo paymentRepo.Repository, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Repo: repo, Logger: logger}
}

// CreatePayment accepts the payment handoff body and stores it as a
// pending record. The gateway integration itself lives elsewhere.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payment amount"})
		return
	}
	switch req.PaymentMethod {
	case models.PaymentMethodCard, models.PaymentMethodMobileMoney, models.PaymentMethodCash:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unsupported payment method"})
		return
	}

	record := models.PaymentRecord{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		PlanID:         req.JourneyData.ID,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		Status:         "pending",
		CreatedAt:      time.Now(),
	}
	if _, err := h.Repo.Record(c.Request.Context(), record); err != nil {
		h.Logger.Error("failed to record payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": record})
}

// ListPayments returns a user's pending payment records.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "userId is required"})
		return
	}

	records, err := h.Repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to list payments"})
		return
	}
	if records == nil {
		records = []models.PaymentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": records})
}
