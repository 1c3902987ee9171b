package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// View types returned by services and serialized by handlers. Defined once
// here instead of being shaped ad hoc per route.

// LastMessageView is the conversation's last message as seen by one caller.
// Read is derived: true when the caller sent it or has read past it.
type LastMessageView struct {
	Content   string             `json:"content"`
	Sender    primitive.ObjectID `json:"sender"`
	Timestamp time.Time          `json:"timestamp"`
	Read      bool               `json:"read"`
}

// ConversationSummary is one row of the conversation listing.
type ConversationSummary struct {
	ID          primitive.ObjectID `json:"id"`
	User        UserPublic         `json:"user"`
	LastMessage *LastMessageView   `json:"lastMessage,omitempty"`
	UnreadCount int64              `json:"unreadCount"`
}

// SenderDetails is the sender shape attached to each message in a detail view.
type SenderDetails struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Image    string             `json:"image,omitempty"`
}

// MessageWithSender is a message joined with its sender's details.
type MessageWithSender struct {
	MessageDB
	SenderDetails SenderDetails `json:"senderDetails"`
}

// ConversationDetail is the full view of one conversation.
type ConversationDetail struct {
	ID       primitive.ObjectID  `json:"id"`
	User     UserPublic          `json:"user"`
	Messages []MessageWithSender `json:"messages"`
}

// ProfileView is a user's public profile with counters, relative to a viewer.
type ProfileView struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Username       string             `json:"username"`
	Image          string             `json:"image,omitempty"`
	Bio            string             `json:"bio,omitempty"`
	PostsCount     int64              `json:"postsCount"`
	FollowersCount int64              `json:"followersCount"`
	FollowingCount int64              `json:"followingCount"`
	Online         bool               `json:"online"`
	LastActive     time.Time          `json:"lastActive,omitempty"`
	IsFollowing    bool               `json:"isFollowing"`
}
