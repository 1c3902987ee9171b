package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// ConversationGetter defines the interface that the service must implement.
type ConversationGetter interface {
	Get(ctx context.Context, conversationID, userID primitive.ObjectID) (*models.ConversationDetail, error)
}

// GetConversationErrorResponse represents an error response when fetching a conversation
// swagger:model GetConversationErrorResponse
type GetConversationErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewGetConversationHandler returns an HTTP handler for the conversation
// detail view. Fetching the detail also stamps the caller's lastRead.
// @Summary Get a conversation
// @Description Returns the conversation with its messages and the other participant, and marks it read for the caller.
// @Tags messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} models.ConversationDetail "Conversation detail"
// @Failure 401 {object} handlers.GetConversationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GetConversationErrorResponse "Conversation not found"
// @Router /conversations/{id} [get]
// @Security BearerAuth
func NewGetConversationHandler(svc ConversationGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GetConversationErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		conversationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetConversationErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		detail, err := svc.Get(ctx, conversationID, userID)
		if err != nil {
			switch err {
			case services.ErrConversationNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetConversationErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("failed to get conversation", "conversationID", conversationID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetConversationErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
