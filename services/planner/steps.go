package planner

import (
	"time"

	"tembea/models"
)

func stepIndex(step models.JourneyStep) int {
	for i, s := range models.StepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// atOrPast reports whether the session has reached the given step.
func atOrPast(session *models.JourneySession, step models.JourneyStep) bool {
	return stepIndex(session.Step) >= stepIndex(step)
}

// checkAdvanceGuard validates the forward transition out of the
// session's current step. An unmet guard blocks the transition with a
// ValidationError; it is never a panic.
func checkAdvanceGuard(session *models.JourneySession, now time.Time) error {
	switch session.Step {
	case models.StepLocation:
		if session.Location.Region == "" {
			return newValidationError("region", "select a region before continuing")
		}
		if session.Location.District == "" {
			return newValidationError("district", "select a district before continuing")
		}
	case models.StepDates:
		return checkTravelWindow(session.TravelWindow, now)
	case models.StepServices:
		// Zero selected categories is legal and means "match all".
	case models.StepProviders:
		if len(session.SelectedProviders) == 0 {
			return newValidationError("providers", "select at least one provider before continuing")
		}
	case models.StepSummary:
		return newValidationError("step", "summary is the final step")
	}
	return nil
}

// checkTravelWindow enforces the dates policy: both dates present and
// parseable, check-out not before check-in, check-in not in the past
// (UTC date granularity).
func checkTravelWindow(w models.TravelWindow, now time.Time) error {
	if w.CheckInDate == "" {
		return newValidationError("checkInDate", "check-in date is required")
	}
	if w.CheckOutDate == "" {
		return newValidationError("checkOutDate", "check-out date is required")
	}
	in, err := time.Parse(models.DateLayout, w.CheckInDate)
	if err != nil {
		return newValidationError("checkInDate", "check-in date must be YYYY-MM-DD")
	}
	out, err := time.Parse(models.DateLayout, w.CheckOutDate)
	if err != nil {
		return newValidationError("checkOutDate", "check-out date must be YYYY-MM-DD")
	}
	if out.Before(in) {
		return newValidationError("checkOutDate", "check-out date cannot be before check-in date")
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if in.Before(today) {
		return newValidationError("checkInDate", "check-in date cannot be in the past")
	}
	if w.TravelerCount < 1 {
		return newValidationError("travelerCount", "at least one traveler is required")
	}
	return nil
}
