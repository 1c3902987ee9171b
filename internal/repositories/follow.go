package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// FollowRepository performs the follow/unfollow toggle as a single Mongo
// transaction. The read of the current relationship and every write it
// implies happen inside the same session, so two concurrent toggles for the
// same pair serialize instead of interleaving between check and write.
type FollowRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewFollowRepository(client *mongo.Client, db *mongo.Database) *FollowRepository {
	return &FollowRepository{client: client, db: db}
}

// Toggle flips the follow relationship from actor to target and returns the
// resulting state. On follow it also appends the activity and notification
// records inside the transaction; on unfollow only the activity. Any failure
// aborts the whole sequence.
func (r *FollowRepository) Toggle(ctx context.Context, actorID, targetID primitive.ObjectID) (following bool, err error) {
	session, err := r.client.StartSession()
	if err != nil {
		return false, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		users := r.db.Collection(CollUsers)

		// Authoritative relationship check, same session as the writes.
		err := users.FindOne(sessCtx, bson.M{"_id": actorID, "following": targetID}).Err()
		isFollowing := err == nil
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, err
		}

		now := time.Now()

		if isFollowing {
			if _, err := users.UpdateOne(sessCtx, bson.M{"_id": actorID}, bson.M{
				"$pull": bson.M{"following": targetID},
				"$inc":  bson.M{"followingCount": -1},
			}); err != nil {
				return nil, err
			}
			if _, err := users.UpdateOne(sessCtx, bson.M{"_id": targetID}, bson.M{
				"$pull": bson.M{"followers": actorID},
				"$inc":  bson.M{"followersCount": -1},
			}); err != nil {
				return nil, err
			}

			activity := models.ActivityDB{
				UserID:       actorID,
				Type:         models.ActivityUnfollow,
				TargetUserID: &targetID,
				Message:      "unfollowed",
				CreatedAt:    now,
			}
			if _, err := r.db.Collection(CollActivities).InsertOne(sessCtx, activity); err != nil {
				return nil, err
			}

			return false, nil
		}

		if _, err := users.UpdateOne(sessCtx, bson.M{"_id": actorID}, bson.M{
			"$addToSet": bson.M{"following": targetID},
			"$inc":      bson.M{"followingCount": 1},
		}); err != nil {
			return nil, err
		}
		if _, err := users.UpdateOne(sessCtx, bson.M{"_id": targetID}, bson.M{
			"$addToSet": bson.M{"followers": actorID},
			"$inc":      bson.M{"followersCount": 1},
		}); err != nil {
			return nil, err
		}

		activity := models.ActivityDB{
			UserID:       actorID,
			Type:         models.ActivityFollow,
			TargetUserID: &targetID,
			Message:      "started following",
			CreatedAt:    now,
		}
		if _, err := r.db.Collection(CollActivities).InsertOne(sessCtx, activity); err != nil {
			return nil, err
		}

		notification := models.NotificationDB{
			UserID:    targetID,
			ActorID:   actorID,
			Type:      models.NotificationFollow,
			Read:      false,
			CreatedAt: now,
		}
		if _, err := r.db.Collection(CollNotifications).InsertOne(sessCtx, notification); err != nil {
			return nil, err
		}

		return true, nil
	})

	logger.Log.Infow("follow toggle",
		"actor", actorID,
		"target", targetID,
		"result", result,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return result.(bool), nil
}
