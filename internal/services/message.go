package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// Error variables
var (
	ErrEmptyContent  = errors.New("message content is required")
	ErrInvalidStatus = errors.New("invalid message status")
)

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Insert(ctx context.Context, message models.MessageDB) (*models.MessageDB, error)
	MarkRead(ctx context.Context, conversationID, sender primitive.ObjectID) (int64, error)
	SetStatus(ctx context.Context, messageID primitive.ObjectID, status string) error
}

// MessageService handles sending, read marking, and status updates.
type MessageService struct {
	convReader ConversationReader
	convWriter ConversationWriter
	msgWriter  MessageWriter
	userReader UserReader
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	convReader ConversationReader,
	convWriter ConversationWriter,
	msgWriter MessageWriter,
	userReader UserReader,
) *MessageService {
	return &MessageService{
		convReader: convReader,
		convWriter: convWriter,
		msgWriter:  msgWriter,
		userReader: userReader,
	}
}

// Send appends a message to the conversation. The sender must be a
// participant; a non-participant gets the same not-found as a missing
// conversation. The message insert always precedes the conversation summary
// update; a failed summary update is logged and tolerated since the next
// send repairs it.
func (svc *MessageService) Send(ctx context.Context, conversationID, senderID primitive.ObjectID, content, mediaURL string) (*models.MessageWithSender, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	conversation, err := svc.convReader.GetForParticipant(ctx, conversationID, senderID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "conversationID", conversationID, "error", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	now := time.Now()
	message, err := svc.msgWriter.Insert(ctx, models.MessageDB{
		ConversationID: conversationID,
		Sender:         senderID,
		Content:        content,
		MediaURL:       mediaURL,
		Timestamp:      now,
		Status:         models.StatusSent,
	})
	if err != nil {
		logger.Log.Errorw("failed to insert message", "conversationID", conversationID, "error", err)
		return nil, err
	}

	if err := svc.convWriter.SetLastMessage(ctx, conversationID, models.LastMessageDB{
		Content:   content,
		Sender:    senderID,
		Timestamp: now,
	}); err != nil {
		// The message is durable; a stale summary heals on the next send.
		logger.Log.Warnw("failed to update conversation summary", "conversationID", conversationID, "error", err)
	}

	sender, err := svc.userReader.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}

	return &models.MessageWithSender{
		MessageDB: *message,
		SenderDetails: models.SenderDetails{
			ID:       sender.ID,
			Username: sender.Username,
			Image:    sender.Image,
		},
	}, nil
}

// MarkRead stamps the reader's lastRead and flips the other participant's
// unread messages to read. Repeated calls are no-ops.
func (svc *MessageService) MarkRead(ctx context.Context, conversationID, readerID primitive.ObjectID) error {
	conversation, err := svc.convReader.GetForParticipant(ctx, conversationID, readerID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "conversationID", conversationID, "error", err)
		return err
	}
	if conversation == nil {
		return ErrConversationNotFound
	}

	if err := svc.convWriter.SetLastRead(ctx, conversationID, readerID, time.Now()); err != nil {
		logger.Log.Errorw("failed to update lastRead", "conversationID", conversationID, "error", err)
		return err
	}

	if other, ok := conversation.Other(readerID); ok {
		if _, err := svc.msgWriter.MarkRead(ctx, conversationID, other.UserID); err != nil {
			logger.Log.Errorw("failed to mark messages read", "conversationID", conversationID, "error", err)
			return err
		}
	}

	return nil
}

// UpdateStatus overwrites a message's delivery status. Only "delivered" and
// "read" are accepted. The write is unconditional: no transition check is
// made, so an out-of-order caller can regress read back to delivered.
func (svc *MessageService) UpdateStatus(ctx context.Context, messageID primitive.ObjectID, status string) error {
	if !models.ValidStatusUpdate(status) {
		return ErrInvalidStatus
	}

	if err := svc.msgWriter.SetStatus(ctx, messageID, status); err != nil {
		logger.Log.Errorw("failed to update message status", "messageID", messageID, "status", status, "error", err)
		return err
	}

	return nil
}
