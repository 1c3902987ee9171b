package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. It is safe to
// call on every startup; existing indexes are left untouched.
//
// The unique pairKey index on conversations is load-bearing: it is what makes
// concurrent conversation creation for the same pair collapse into a single
// document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(CollUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	conversationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pairKey", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants.userId", Value: 1}}},
		{Keys: bson.D{{Key: "updatedAt", Value: -1}}},
	}
	if _, err := db.Collection(CollConversations).Indexes().CreateMany(ctx, conversationIndexes); err != nil {
		return err
	}

	messageIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "sender", Value: 1}}},
	}
	if _, err := db.Collection(CollMessages).Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return err
	}

	notificationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(CollNotifications).Indexes().CreateMany(ctx, notificationIndexes); err != nil {
		return err
	}

	return nil
}
