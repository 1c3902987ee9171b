package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity types.
const (
	ActivityFollow   = "follow"
	ActivityUnfollow = "unfollow"
	ActivityPost     = "post"
	ActivityJoin     = "join"
)

// ActivityDB is an append-only audit record of a user action. It is written
// as a side effect and never read back by request handling.
type ActivityDB struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID  `json:"userId" bson:"userId"`
	Type         string              `json:"type" bson:"type"`
	TargetUserID *primitive.ObjectID `json:"targetUserId,omitempty" bson:"targetUserId,omitempty"`
	PostID       *primitive.ObjectID `json:"postId,omitempty" bson:"postId,omitempty"`
	Message      string              `json:"message" bson:"message"`
	CreatedAt    time.Time           `json:"created_at" bson:"createdAt"`
}

// ActivityEvent is the payload published to the event stream for every
// recorded activity.
type ActivityEvent struct {
	ActivityID   string `json:"activity_id"`
	Timestamp    int64  `json:"timestamp"`
	UserID       string `json:"user_id"`
	Type         string `json:"type"`
	TargetUserID string `json:"target_user_id,omitempty"`
	PostID       string `json:"post_id,omitempty"`
}
