package models

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParticipantDB binds a user to a conversation with their last-read timestamp.
type ParticipantDB struct {
	UserID   primitive.ObjectID `json:"userId" bson:"userId"`                         // Participant user ID
	LastRead time.Time          `json:"lastRead,omitempty" bson:"lastRead,omitempty"` // Zero value means never read
}

// LastMessageDB is the denormalized last-message cache on a conversation.
type LastMessageDB struct {
	Content   string             `json:"content" bson:"content"`
	Sender    primitive.ObjectID `json:"sender" bson:"sender"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

// ConversationDB represents a 1:1 conversation document.
// PairKey is the normalized participant pair; a unique index on it guarantees
// at most one conversation per unordered pair.
type ConversationDB struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PairKey      string             `json:"-" bson:"pairKey"`
	Participants []ParticipantDB    `json:"participants" bson:"participants"`
	LastMessage  *LastMessageDB     `json:"lastMessage,omitempty" bson:"lastMessage,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updatedAt"`
}

// PairKey normalizes two user IDs into an order-independent key.
func PairKey(a, b primitive.ObjectID) string {
	ids := []string{a.Hex(), b.Hex()}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}

// Other returns the participant that is not the given user.
// ok is false when the document is missing a second participant.
func (c *ConversationDB) Other(userID primitive.ObjectID) (ParticipantDB, bool) {
	for _, p := range c.Participants {
		if p.UserID != userID {
			return p, true
		}
	}
	return ParticipantDB{}, false
}

// Self returns the given user's own participant entry.
func (c *ConversationDB) Self(userID primitive.ObjectID) (ParticipantDB, bool) {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return p, true
		}
	}
	return ParticipantDB{}, false
}
