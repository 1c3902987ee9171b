package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// NotificationLister defines the interface that the service must implement.
type NotificationLister interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]models.NotificationWithActor, error)
}

// NotificationsErrorResponse represents an error response when listing notifications
// swagger:model NotificationsErrorResponse
type NotificationsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListNotificationsHandler returns an HTTP handler listing the caller's
// newest notifications.
// @Summary List notifications
// @Description Returns the caller's newest 50 notifications, newest first, with actor details.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.NotificationWithActor "Notifications"
// @Failure 401 {object} handlers.NotificationsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.NotificationsErrorResponse "Internal server error"
// @Router /notifications [get]
// @Security BearerAuth
func NewListNotificationsHandler(svc NotificationLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NotificationsErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		notifications, err := svc.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if notifications == nil {
			notifications = []models.NotificationWithActor{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(notifications)
	}
}
