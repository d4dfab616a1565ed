package models

import "time"

// PaymentRequest is the body of the payment handoff produced at
// checkout. The actual gateway integration lives outside this service;
// the record is persisted as "pending" and picked up downstream.
type PaymentRequest struct {
	UserID         string            `json:"user_id" binding:"required"`
	JourneyData    JourneyPlan       `json:"journey_data"`
	PaymentMethod  string            `json:"payment_method" binding:"required"`
	Amount         float64           `json:"amount"`
	PaymentDetails map[string]string `json:"payment_details,omitempty"`
}

// PaymentRecord is the persisted pending payment.
type PaymentRecord struct {
	ID             string            `bson:"id" json:"id"`
	UserID         string            `bson:"user_id" json:"user_id"`
	PlanID         string            `bson:"plan_id" json:"plan_id"`
	Amount         float64           `bson:"amount" json:"amount"`
	PaymentMethod  string            `bson:"payment_method" json:"payment_method"`
	PaymentDetails map[string]string `bson:"payment_details,omitempty" json:"payment_details,omitempty"`
	Status         string            `bson:"status" json:"status"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
}

// Payment methods accepted at handoff. The concrete gateway behind each
// is out of scope here.
const (
	PaymentMethodCard        = "card"
	PaymentMethodMobileMoney = "mobile_money"
	PaymentMethodCash        = "cash"
)

// ReminderPayload is the asynq task body for a trip reminder push.
type ReminderPayload struct {
	UserID      string `json:"userId"`
	PlanID      string `json:"planId"`
	DeviceToken string `json:"deviceToken"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	FireDate    string `json:"fireDate"`
}
