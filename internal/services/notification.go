package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.NotificationWithActor, error)
}

// NotificationService handles notification listing.
type NotificationService struct {
	reader NotificationReader
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(reader NotificationReader) *NotificationService {
	return &NotificationService{reader: reader}
}

// List returns the user's newest 50 notifications, newest first, with actor
// details.
func (svc *NotificationService) List(ctx context.Context, userID primitive.ObjectID) ([]models.NotificationWithActor, error) {
	notifications, err := svc.reader.ListForUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "userID", userID, "error", err)
		return nil, err
	}
	return notifications, nil
}
