package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// ActivityWriter defines write operations for activity records.
type ActivityWriter interface {
	Insert(ctx context.Context, activity models.ActivityDB) (primitive.ObjectID, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ActivityService appends audit records and publishes them to the event
// stream. Every method is fire-and-forget: the caller's primary state change
// stands even when recording fails, which is only logged.
//
// Follow and unfollow rows are the exception: they are written inside the
// follow-toggle transaction, so for those this service only publishes the
// stream event.
type ActivityService struct {
	writeRepo   ActivityWriter
	kafkaWriter KafkaWriter
}

// NewActivityService creates a new ActivityService.
func NewActivityService(writeRepo ActivityWriter, kafkaWriter KafkaWriter) *ActivityService {
	return &ActivityService{
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an activity event to Kafka.
func (svc *ActivityService) publishEvent(ctx context.Context, event models.ActivityEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event", "type", event.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event", "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Activity event published", "type", event.Type, "user_id", event.UserID)
	}
}

// RecordJoin records a signup.
func (svc *ActivityService) RecordJoin(ctx context.Context, userID primitive.ObjectID) {
	activity := models.ActivityDB{
		UserID:    userID,
		Type:      models.ActivityJoin,
		Message:   "joined",
		CreatedAt: time.Now(),
	}

	activityID, err := svc.writeRepo.Insert(ctx, activity)
	if err != nil {
		logger.Log.Warnw("failed to record join activity", "userID", userID, "error", err)
		return
	}

	svc.publishEvent(ctx, models.ActivityEvent{
		ActivityID: activityID.Hex(),
		Timestamp:  activity.CreatedAt.Unix(),
		UserID:     userID.Hex(),
		Type:       models.ActivityJoin,
	})
}

// RecordPost records a post creation.
func (svc *ActivityService) RecordPost(ctx context.Context, userID, postID primitive.ObjectID) {
	activity := models.ActivityDB{
		UserID:    userID,
		Type:      models.ActivityPost,
		PostID:    &postID,
		Message:   "created a post",
		CreatedAt: time.Now(),
	}

	activityID, err := svc.writeRepo.Insert(ctx, activity)
	if err != nil {
		logger.Log.Warnw("failed to record post activity", "userID", userID, "postID", postID, "error", err)
		return
	}

	svc.publishEvent(ctx, models.ActivityEvent{
		ActivityID: activityID.Hex(),
		Timestamp:  activity.CreatedAt.Unix(),
		UserID:     userID.Hex(),
		Type:       models.ActivityPost,
		PostID:     postID.Hex(),
	})
}

// PublishFollowToggle publishes the event for a follow or unfollow whose
// durable records were already written by the toggle transaction.
func (svc *ActivityService) PublishFollowToggle(ctx context.Context, actorID, targetID primitive.ObjectID, following bool) {
	activityType := models.ActivityUnfollow
	if following {
		activityType = models.ActivityFollow
	}

	svc.publishEvent(ctx, models.ActivityEvent{
		Timestamp:    time.Now().Unix(),
		UserID:       actorID.Hex(),
		Type:         activityType,
		TargetUserID: targetID.Hex(),
	})
}
