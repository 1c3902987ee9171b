package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types.
const (
	NotificationFollow  = "follow"
	NotificationLike    = "like"
	NotificationComment = "comment"
)

// NotificationDB represents a notification document targeting a user for display.
type NotificationDB struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID  `json:"userId" bson:"userId"`   // Recipient
	ActorID   primitive.ObjectID  `json:"actorId" bson:"actorId"` // User who triggered it
	Type      string              `json:"type" bson:"type"`
	PostID    *primitive.ObjectID `json:"postId,omitempty" bson:"postId,omitempty"`
	Read      bool                `json:"read" bson:"read"`
	CreatedAt time.Time           `json:"created_at" bson:"createdAt"`
}

// NotificationWithActor is a notification joined with its actor's public
// profile, produced by the listing aggregation.
type NotificationWithActor struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id"`
	Type      string              `json:"type" bson:"type"`
	Read      bool                `json:"read" bson:"read"`
	PostID    *primitive.ObjectID `json:"postId,omitempty" bson:"postId,omitempty"`
	CreatedAt time.Time           `json:"created_at" bson:"createdAt"`
	Actor     NotificationActor   `json:"actor" bson:"actor"`
}

// NotificationActor is the actor shape embedded in notification listings.
type NotificationActor struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Username string             `json:"username" bson:"username"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
}
