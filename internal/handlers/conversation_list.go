package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// ConversationLister defines the interface that the service must implement.
type ConversationLister interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error)
}

// ConversationListErrorResponse represents an error response when listing conversations
// swagger:model ConversationListErrorResponse
type ConversationListErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListConversationsHandler returns an HTTP handler listing the caller's conversations.
// @Summary List conversations
// @Description Returns the caller's conversations sorted by last update, each with the other participant, unread count, and last message.
// @Tags messages
// @Produce json
// @Success 200 {array} models.ConversationSummary "Conversations"
// @Failure 401 {object} handlers.ConversationListErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ConversationListErrorResponse "Internal server error"
// @Router /conversations [get]
// @Security BearerAuth
func NewListConversationsHandler(svc ConversationLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			logger.Log.Errorw("unauthorized conversations request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConversationListErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		conversations, err := svc.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list conversations", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConversationListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if conversations == nil {
			conversations = []models.ConversationSummary{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(conversations)
	}
}
