package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type MessageReadRepository struct {
	db *mongo.Database
}

func NewMessageReadRepository(db *mongo.Database) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// ListByConversation returns the conversation's messages oldest first.
func (r *MessageReadRepository) ListByConversation(ctx context.Context, conversationID primitive.ObjectID) ([]models.MessageDB, error) {
	filter := bson.M{"conversationId": conversationID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.db.Collection(CollMessages).Find(ctx, filter, opts)

	logger.Log.Infow("find",
		"collection", CollMessages,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.MessageDB
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// CountUnread counts messages from the given sender strictly newer than the
// reader's last-read timestamp.
func (r *MessageReadRepository) CountUnread(ctx context.Context, conversationID, sender primitive.ObjectID, lastRead time.Time) (int64, error) {
	filter := bson.M{
		"conversationId": conversationID,
		"sender":         sender,
		"timestamp":      bson.M{"$gt": lastRead},
	}

	count, err := r.db.Collection(CollMessages).CountDocuments(ctx, filter)

	logger.Log.Infow("countDocuments",
		"collection", CollMessages,
		"filter", filter,
		"count", count,
		"error", err,
	)

	return count, err
}

type MessageWriteRepository struct {
	db *mongo.Database
}

func NewMessageWriteRepository(db *mongo.Database) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Insert appends a message and returns it with the generated ID.
func (r *MessageWriteRepository) Insert(ctx context.Context, message models.MessageDB) (*models.MessageDB, error) {
	res, err := r.db.Collection(CollMessages).InsertOne(ctx, message)

	logger.Log.Infow("insertOne",
		"collection", CollMessages,
		"conversationId", message.ConversationID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	message.ID = res.InsertedID.(primitive.ObjectID)
	return &message, nil
}

// MarkRead flips every not-yet-read message from the given sender in the
// conversation to "read". Calling it again matches nothing, so it is
// idempotent.
func (r *MessageWriteRepository) MarkRead(ctx context.Context, conversationID, sender primitive.ObjectID) (int64, error) {
	filter := bson.M{
		"conversationId": conversationID,
		"sender":         sender,
		"status":         bson.M{"$ne": models.StatusRead},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusRead}}

	res, err := r.db.Collection(CollMessages).UpdateMany(ctx, filter, update)
	var modified int64
	if res != nil {
		modified = res.ModifiedCount
	}

	logger.Log.Infow("updateMany",
		"collection", CollMessages,
		"filter", filter,
		"modified", modified,
		"error", err,
	)

	return modified, err
}

// SetStatus overwrites the message status unconditionally. Transition
// ordering is the caller's responsibility.
func (r *MessageWriteRepository) SetStatus(ctx context.Context, messageID primitive.ObjectID, status string) error {
	filter := bson.M{"_id": messageID}
	update := bson.M{"$set": bson.M{"status": status}}

	_, err := r.db.Collection(CollMessages).UpdateOne(ctx, filter, update)

	logger.Log.Infow("updateOne",
		"collection", CollMessages,
		"filter", filter,
		"status", status,
		"error", err,
	)

	return err
}
