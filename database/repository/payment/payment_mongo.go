package payment

import (
	"context"
	"time"

	"tembea/database"
	"tembea/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists pending payment handoff records for the external
// gateway to pick up.
type Repository interface {
	Record(ctx context.Context, rec models.PaymentRecord) (string, error)
	ListByUser(ctx context.Context, userID string) ([]models.PaymentRecord, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a Repository backed by the payments
// collection.
func NewMongoPaymentRepo() Repository {
	return &mongoPaymentRepo{
		coll: database.DB().Collection("payments"),
	}
}

func (r *mongoPaymentRepo) Record(ctx context.Context, rec models.PaymentRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Status == "" {
		rec.Status = "pending"
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *mongoPaymentRepo) ListByUser(ctx context.Context, userID string) ([]models.PaymentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PaymentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
