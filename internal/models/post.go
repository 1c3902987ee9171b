package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostDB represents a post document.
type PostDB struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Content   string             `json:"content,omitempty" bson:"content,omitempty"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

// PostFeedItem is a post joined with its author and like/comment counters,
// produced by the feed aggregation.
type PostFeedItem struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Content       string             `json:"content,omitempty" bson:"content,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	LikesCount    int64              `json:"likesCount" bson:"likesCount"`
	CommentsCount int64              `json:"commentsCount" bson:"commentsCount"`
	IsLiked       bool               `json:"isLiked" bson:"isLiked"`
	User          PostAuthor         `json:"user" bson:"user"`
}

// PostAuthor is the author shape embedded in feed items.
type PostAuthor struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Username string             `json:"username" bson:"username"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
}
