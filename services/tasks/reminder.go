package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tembea/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeTripReminder = "trip:reminder"

// reminderLead is how long before check-in the reminder fires.
const reminderLead = 24 * time.Hour

// NewTripReminderTask builds the asynq task for a trip reminder.
func NewTripReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.Queue("default"),
	}
	return asynq.NewTask(TypeTripReminder, b), opts, nil
}

// ReminderScheduler enqueues trip reminders on the asynq broker.
type ReminderScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewReminderScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts),
		logger: logger,
	}
}

// ScheduleTripReminder enqueues a push reminder for the day before
// check-in. Plans with no device token or an imminent/past check-in are
// skipped, not errors.
func (s *ReminderScheduler) ScheduleTripReminder(ctx context.Context, plan models.JourneyPlan) error {
	if plan.DeviceToken == "" {
		s.logger.Debug("plan has no device token, skipping reminder",
			zap.String("planId", plan.ID))
		return nil
	}

	checkIn, err := time.Parse(models.DateLayout, plan.StartDate)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q: %w", plan.StartDate, err)
	}
	fireAt := checkIn.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		s.logger.Debug("check-in too close, skipping reminder",
			zap.String("planId", plan.ID))
		return nil
	}

	destination := plan.District
	if destination == "" {
		destination = plan.Region
	}
	payload := models.ReminderPayload{
		UserID:      plan.UserID,
		PlanID:      plan.ID,
		DeviceToken: plan.DeviceToken,
		Title:       "Your trip is almost here",
		Body:        fmt.Sprintf("Your journey to %s starts on %s. Safari njema!", destination, plan.StartDate),
		FireDate:    fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewTripReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue trip reminder: %w", err)
	}

	s.logger.Info("trip reminder scheduled",
		zap.String("planId", plan.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// Close releases the underlying asynq client.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
