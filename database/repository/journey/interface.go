package journey

import (
	"context"
	"errors"

	"tembea/models"
)

// ErrNotFound means no journey plan exists under the given id.
var ErrNotFound = errors.New("journey plan not found")

// Repository is the persistence port for journey plans. The planner
// only ever sees this interface, so the core stays storage-agnostic.
type Repository interface {
	Save(ctx context.Context, plan models.JourneyPlan) error
	GetByID(ctx context.Context, id string) (*models.JourneyPlan, error)
	ListByUser(ctx context.Context, userID string) ([]models.JourneyPlan, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
