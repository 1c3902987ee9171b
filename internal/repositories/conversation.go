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

type ConversationReadRepository struct {
	db *mongo.Database
}

func NewConversationReadRepository(db *mongo.Database) *ConversationReadRepository {
	return &ConversationReadRepository{db: db}
}

// GetForParticipant returns the conversation only when the given user is a
// participant. Returns (nil, nil) otherwise, so callers cannot distinguish
// "absent" from "not yours".
func (r *ConversationReadRepository) GetForParticipant(ctx context.Context, conversationID, userID primitive.ObjectID) (*models.ConversationDB, error) {
	filter := bson.M{
		"_id":                 conversationID,
		"participants.userId": userID,
	}

	var conversation models.ConversationDB
	err := r.db.Collection(CollConversations).FindOne(ctx, filter).Decode(&conversation)

	// A miss is routine, not a failure
	if err == mongo.ErrNoDocuments {
		logger.Log.Infow("findOne",
			"collection", CollConversations,
			"filter", filter,
			"found", false,
		)
		return nil, nil
	}

	logger.Log.Infow("findOne",
		"collection", CollConversations,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

// ListByParticipant returns all conversations containing the user, most
// recently updated first.
func (r *ConversationReadRepository) ListByParticipant(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationDB, error) {
	filter := bson.M{"participants.userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.db.Collection(CollConversations).Find(ctx, filter, opts)

	logger.Log.Infow("find",
		"collection", CollConversations,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []models.ConversationDB
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

type ConversationWriteRepository struct {
	db *mongo.Database
}

func NewConversationWriteRepository(db *mongo.Database) *ConversationWriteRepository {
	return &ConversationWriteRepository{db: db}
}

// CreateIfAbsent inserts a conversation for the unordered pair unless one
// already exists, in a single conditional upsert keyed by the normalized
// pairKey. Concurrent calls for the same pair cannot create duplicates: the
// unique pairKey index plus $setOnInsert make exactly one insert win.
func (r *ConversationWriteRepository) CreateIfAbsent(ctx context.Context, a, b primitive.ObjectID) (*models.ConversationDB, bool, error) {
	pairKey := models.PairKey(a, b)
	now := time.Now()

	filter := bson.M{"pairKey": pairKey}
	update := bson.M{"$setOnInsert": bson.M{
		"pairKey": pairKey,
		"participants": []models.ParticipantDB{
			{UserID: a},
			{UserID: b},
		},
		"createdAt": now,
		"updatedAt": now,
	}}

	res, err := r.db.Collection(CollConversations).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))

	logger.Log.Infow("updateOne",
		"collection", CollConversations,
		"filter", filter,
		"upserted", res != nil && res.UpsertedCount > 0,
		"error", err,
	)

	if err != nil {
		return nil, false, err
	}

	existing := res.UpsertedCount == 0

	var conversation models.ConversationDB
	if err := r.db.Collection(CollConversations).FindOne(ctx, filter).Decode(&conversation); err != nil {
		return nil, false, err
	}

	return &conversation, existing, nil
}

// SetLastRead stamps the given participant's lastRead. The filter includes
// the participant match so non-participants never update anything.
func (r *ConversationWriteRepository) SetLastRead(ctx context.Context, conversationID, userID primitive.ObjectID, at time.Time) error {
	filter := bson.M{
		"_id":                 conversationID,
		"participants.userId": userID,
	}
	update := bson.M{"$set": bson.M{"participants.$.lastRead": at}}

	res, err := r.db.Collection(CollConversations).UpdateOne(ctx, filter, update)
	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow("updateOne",
		"collection", CollConversations,
		"filter", filter,
		"matched", matched,
		"error", err,
	)

	return err
}

// SetLastMessage refreshes the denormalized last-message cache and updatedAt.
func (r *ConversationWriteRepository) SetLastMessage(ctx context.Context, conversationID primitive.ObjectID, last models.LastMessageDB) error {
	filter := bson.M{"_id": conversationID}
	update := bson.M{"$set": bson.M{
		"lastMessage": last,
		"updatedAt":   last.Timestamp,
	}}

	_, err := r.db.Collection(CollConversations).UpdateOne(ctx, filter, update)

	logger.Log.Infow("updateOne",
		"collection", CollConversations,
		"filter", filter,
		"error", err,
	)

	return err
}
