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

// MessageSender defines the interface that the service must implement.
type MessageSender interface {
	Send(ctx context.Context, conversationID, senderID primitive.ObjectID, content, mediaURL string) (*models.MessageWithSender, error)
}

// SendMessageRequest represents the JSON body for sending a message
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Message content
	// required: true
	Content string `json:"content"`

	// Optional media attachment URL
	MediaURL string `json:"mediaUrl,omitempty"`
}

// SendMessageErrorResponse represents an error response when sending a message
// swagger:model SendMessageErrorResponse
type SendMessageErrorResponse struct {
	// Error message
	// default: Message content is required
	Error string `json:"error"`
}

// NewSendMessageHandler returns an HTTP handler for appending a message to a
// conversation. Non-participants get the same 404 as a missing conversation.
// @Summary Send a message
// @Description Appends a message to the conversation and refreshes its last-message summary.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message"
// @Success 200 {object} models.MessageWithSender "Created message"
// @Failure 400 {object} handlers.SendMessageErrorResponse "Empty content"
// @Failure 401 {object} handlers.SendMessageErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SendMessageErrorResponse "Conversation not found"
// @Router /conversations/{id} [post]
// @Security BearerAuth
func NewSendMessageHandler(svc MessageSender, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SendMessageErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		conversationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SendMessageErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendMessageErrorResponse{
				Error: "Message content is required",
			})
			return
		}

		message, err := svc.Send(ctx, conversationID, userID, req.Content, req.MediaURL)
		if err != nil {
			switch err {
			case services.ErrEmptyContent:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Message content is required",
				})
			case services.ErrConversationNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("failed to send message", "conversationID", conversationID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(message)
	}
}
