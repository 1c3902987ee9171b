package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message delivery statuses. Transitions are expected to be monotonic
// sent -> delivered -> read, enforced by caller ordering.
const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

// ValidStatusUpdate reports whether a status value is accepted by the
// status-update operation. "sent" is set only at insertion.
func ValidStatusUpdate(status string) bool {
	return status == StatusDelivered || status == StatusRead
}

// MessageDB represents a message document.
type MessageDB struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID `json:"conversationId" bson:"conversationId"`
	Sender         primitive.ObjectID `json:"sender" bson:"sender"`
	Content        string             `json:"content" bson:"content"`
	MediaURL       string             `json:"mediaUrl,omitempty" bson:"mediaUrl,omitempty"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
	Status         string             `json:"status" bson:"status"`
}
