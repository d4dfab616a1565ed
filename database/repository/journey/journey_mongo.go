package journey

import (
	"context"
	"errors"
	"time"

	"tembea/database"
	"tembea/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoJourneyRepo struct {
	coll *mongo.Collection
}

// NewMongoJourneyRepo returns a Repository backed by the journey_plans
// collection.
func NewMongoJourneyRepo() Repository {
	return &mongoJourneyRepo{
		coll: database.DB().Collection("journey_plans"),
	}
}

func (r *mongoJourneyRepo) Save(ctx context.Context, plan models.JourneyPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, plan)
	return err
}

func (r *mongoJourneyRepo) GetByID(ctx context.Context, id string) (*models.JourneyPlan, error) {
	var plan models.JourneyPlan
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoJourneyRepo) ListByUser(ctx context.Context, userID string) ([]models.JourneyPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.JourneyPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoJourneyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoJourneyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
