package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type NotificationReadRepository struct {
	db *mongo.Database
}

func NewNotificationReadRepository(db *mongo.Database) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// ListForUser returns the user's newest 50 notifications, newest first, with
// each actor's public profile joined in.
func (r *NotificationReadRepository) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.NotificationWithActor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: 50}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "actorId",
			"foreignField": "_id",
			"as":           "actor",
		}}},
		{{Key: "$unwind", Value: "$actor"}},
		{{Key: "$project", Value: bson.M{
			"_id":       1,
			"type":      1,
			"read":      1,
			"createdAt": 1,
			"postId":    1,
			"actor": bson.M{
				"_id":      1,
				"name":     1,
				"username": 1,
				"image":    1,
			},
		}}},
	}

	cursor, err := r.db.Collection(CollNotifications).Aggregate(ctx, pipeline)

	logger.Log.Infow("aggregate",
		"collection", CollNotifications,
		"userId", userID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.NotificationWithActor
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
