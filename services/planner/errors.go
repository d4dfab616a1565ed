package planner

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound means the wizard session is missing or expired.
var ErrSessionNotFound = errors.New("journey session not found or expired")

// ValidationError is a failed step-transition guard or a malformed
// input. Handlers surface it as a 4xx, never as a panic.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// EmptyCartError rejects a payment handoff with zero selected services.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "no services selected; an empty cart cannot be paid for"
}
