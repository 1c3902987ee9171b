package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type ActivityWriteRepository struct {
	db *mongo.Database
}

func NewActivityWriteRepository(db *mongo.Database) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db}
}

// Insert appends an activity record and returns its generated ID.
func (r *ActivityWriteRepository) Insert(ctx context.Context, activity models.ActivityDB) (primitive.ObjectID, error) {
	res, err := r.db.Collection(CollActivities).InsertOne(ctx, activity)

	logger.Log.Infow("insertOne",
		"collection", CollActivities,
		"userId", activity.UserID,
		"type", activity.Type,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
