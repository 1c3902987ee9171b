package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// ReadMarker defines the interface that the service must implement.
type ReadMarker interface {
	MarkRead(ctx context.Context, conversationID, readerID primitive.ObjectID) error
}

// MarkReadResponse represents a successful mark-read response
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	// default: true
	Success bool `json:"success"`
}

// MarkReadErrorResponse represents an error response when marking a conversation read
// swagger:model MarkReadErrorResponse
type MarkReadErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewMarkReadHandler returns an HTTP handler that marks a conversation read
// for the caller. The operation is idempotent.
// @Summary Mark a conversation read
// @Description Stamps the caller's last-read timestamp and flips the other participant's unread messages to read.
// @Tags messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} handlers.MarkReadResponse "Marked read"
// @Failure 401 {object} handlers.MarkReadErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MarkReadErrorResponse "Conversation not found"
// @Router /conversations/{id}/read [post]
// @Security BearerAuth
func NewMarkReadHandler(svc ReadMarker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MarkReadErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		conversationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MarkReadErrorResponse{
				Error: "Conversation not found",
			})
			return
		}

		if err := svc.MarkRead(ctx, conversationID, userID); err != nil {
			switch err {
			case services.ErrConversationNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MarkReadErrorResponse{
					Error: "Conversation not found",
				})
			default:
				logger.Log.Errorw("failed to mark conversation read", "conversationID", conversationID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MarkReadErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MarkReadResponse{Success: true})
	}
}
