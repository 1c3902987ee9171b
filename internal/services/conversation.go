package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// Error variables
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrSelfConversation     = errors.New("cannot start a conversation with yourself")
)

// ConversationReader defines read operations for conversations.
type ConversationReader interface {
	GetForParticipant(ctx context.Context, conversationID, userID primitive.ObjectID) (*models.ConversationDB, error)
	ListByParticipant(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationDB, error)
}

// ConversationWriter defines write operations for conversations.
type ConversationWriter interface {
	CreateIfAbsent(ctx context.Context, a, b primitive.ObjectID) (*models.ConversationDB, bool, error)
	SetLastRead(ctx context.Context, conversationID, userID primitive.ObjectID, at time.Time) error
	SetLastMessage(ctx context.Context, conversationID primitive.ObjectID, last models.LastMessageDB) error
}

// MessageReader defines read operations for messages.
type MessageReader interface {
	ListByConversation(ctx context.Context, conversationID primitive.ObjectID) ([]models.MessageDB, error)
	CountUnread(ctx context.Context, conversationID, sender primitive.ObjectID, lastRead time.Time) (int64, error)
}

// PresenceGetter reads cached presence; ok is false on a miss.
type PresenceGetter interface {
	GetPresence(ctx context.Context, userID string) (online bool, ok bool, err error)
}

// ConversationService handles conversation lookup, creation, and listing.
type ConversationService struct {
	convReader ConversationReader
	convWriter ConversationWriter
	msgReader  MessageReader
	userReader UserReader
	presence   PresenceGetter
}

// NewConversationService creates a new ConversationService.
func NewConversationService(
	convReader ConversationReader,
	convWriter ConversationWriter,
	msgReader MessageReader,
	userReader UserReader,
	presence PresenceGetter,
) *ConversationService {
	return &ConversationService{
		convReader: convReader,
		convWriter: convWriter,
		msgReader:  msgReader,
		userReader: userReader,
		presence:   presence,
	}
}

// CreateOrGet returns the conversation for the unordered user pair, creating
// it when absent. existing reports whether it was already there. The insert
// is a conditional upsert on the normalized pair, so concurrent calls for
// the same pair always converge on one conversation.
func (svc *ConversationService) CreateOrGet(ctx context.Context, currentUserID, otherUserID primitive.ObjectID) (primitive.ObjectID, bool, error) {
	// A conversation needs two distinct participants
	if otherUserID == currentUserID {
		return primitive.NilObjectID, false, ErrSelfConversation
	}

	other, err := svc.userReader.GetByID(ctx, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to look up conversation target", "userID", otherUserID, "error", err)
		return primitive.NilObjectID, false, err
	}
	if other == nil {
		return primitive.NilObjectID, false, ErrUserNotFound
	}

	conversation, existing, err := svc.convWriter.CreateIfAbsent(ctx, currentUserID, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to create or get conversation", "error", err)
		return primitive.NilObjectID, false, err
	}

	return conversation.ID, existing, nil
}

// List returns the caller's conversations, most recently updated first, each
// with the other participant's profile, an unread count, and the last-message
// cache. Unread counts are recomputed on every call, never cached.
func (svc *ConversationService) List(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error) {
	conversations, err := svc.convReader.ListByParticipant(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list conversations", "userID", userID, "error", err)
		return nil, err
	}

	summaries := make([]models.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		other, ok := conversation.Other(userID)
		if !ok {
			return nil, fmt.Errorf("conversation %s is missing a participant", conversation.ID.Hex())
		}

		user, err := svc.userReader.GetByID(ctx, other.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("conversation %s references unknown user %s", conversation.ID.Hex(), other.UserID.Hex())
		}

		profile := svc.withCachedPresence(ctx, user)

		self, _ := conversation.Self(userID)
		lastRead := self.LastRead // zero value = epoch, never read

		unreadCount, err := svc.msgReader.CountUnread(ctx, conversation.ID, other.UserID, lastRead)
		if err != nil {
			return nil, err
		}

		var lastMessage *models.LastMessageView
		if conversation.LastMessage != nil {
			lm := conversation.LastMessage
			lastMessage = &models.LastMessageView{
				Content:   lm.Content,
				Sender:    lm.Sender,
				Timestamp: lm.Timestamp,
				Read:      !lastRead.Before(lm.Timestamp) || lm.Sender == userID,
			}
		}

		summaries = append(summaries, models.ConversationSummary{
			ID:          conversation.ID,
			User:        profile,
			LastMessage: lastMessage,
			UnreadCount: unreadCount,
		})
	}

	return summaries, nil
}

// Get returns the full conversation view for a participant and stamps their
// lastRead, since fetching the detail is how a client reads the thread.
func (svc *ConversationService) Get(ctx context.Context, conversationID, userID primitive.ObjectID) (*models.ConversationDetail, error) {
	conversation, err := svc.convReader.GetForParticipant(ctx, conversationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "conversationID", conversationID, "error", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	other, ok := conversation.Other(userID)
	if !ok {
		return nil, fmt.Errorf("conversation %s is missing a participant", conversation.ID.Hex())
	}

	otherUser, err := svc.userReader.GetByID(ctx, other.UserID)
	if err != nil {
		return nil, err
	}
	if otherUser == nil {
		return nil, fmt.Errorf("conversation %s references unknown user %s", conversation.ID.Hex(), other.UserID.Hex())
	}

	self, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if self == nil {
		return nil, ErrUserNotFound
	}

	messages, err := svc.msgReader.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if err := svc.convWriter.SetLastRead(ctx, conversationID, userID, time.Now()); err != nil {
		logger.Log.Errorw("failed to update lastRead", "conversationID", conversationID, "error", err)
		return nil, err
	}

	withSenders := make([]models.MessageWithSender, 0, len(messages))
	for _, message := range messages {
		sender := otherUser
		if message.Sender == userID {
			sender = self
		}
		withSenders = append(withSenders, models.MessageWithSender{
			MessageDB: message,
			SenderDetails: models.SenderDetails{
				ID:       sender.ID,
				Username: sender.Username,
				Image:    sender.Image,
			},
		})
	}

	return &models.ConversationDetail{
		ID:       conversation.ID,
		User:     svc.withCachedPresence(ctx, otherUser),
		Messages: withSenders,
	}, nil
}

// withCachedPresence overlays the Redis presence cache on the user document.
// The document is authoritative; the cache just carries fresher ticks.
func (svc *ConversationService) withCachedPresence(ctx context.Context, user *models.UserDB) models.UserPublic {
	profile := user.Public()

	online, ok, err := svc.presence.GetPresence(ctx, user.ID.Hex())
	if err != nil {
		logger.Log.Warnw("presence cache read failed", "userID", user.ID, "error", err)
		return profile
	}
	if ok {
		profile.Online = online
	}
	return profile
}
