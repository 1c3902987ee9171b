package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// StatusUpdater defines the interface that the service must implement.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, messageID primitive.ObjectID, status string) error
}

// UpdateMessageStatusRequest represents the JSON body for a status update
// swagger:model UpdateMessageStatusRequest
type UpdateMessageStatusRequest struct {
	// Message ID
	// required: true
	MessageID string `json:"messageId"`

	// New status, "delivered" or "read"
	// required: true
	Status string `json:"status"`
}

// UpdateMessageStatusResponse represents a successful status update
// swagger:model UpdateMessageStatusResponse
type UpdateMessageStatusResponse struct {
	// default: true
	Success bool `json:"success"`
}

// UpdateMessageStatusErrorResponse represents an error response for a status update
// swagger:model UpdateMessageStatusErrorResponse
type UpdateMessageStatusErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`
}

// NewUpdateMessageStatusHandler returns an HTTP handler that updates a
// message's delivery status.
// @Summary Update message status
// @Description Sets a message's status to delivered or read.
// @Tags messages
// @Accept json
// @Produce json
// @Param updateMessageStatusRequest body handlers.UpdateMessageStatusRequest true "Status update"
// @Success 200 {object} handlers.UpdateMessageStatusResponse "Status updated"
// @Failure 400 {object} handlers.UpdateMessageStatusErrorResponse "Invalid request"
// @Failure 401 {object} handlers.UpdateMessageStatusErrorResponse "Unauthorized"
// @Router /messages/status [post]
// @Security BearerAuth
func NewUpdateMessageStatusHandler(svc StatusUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := userIDFromRequest(ctx, tokener, r); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateMessageStatusErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req UpdateMessageStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MessageID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateMessageStatusErrorResponse{
				Error: "Invalid request",
			})
			return
		}

		messageID, err := primitive.ObjectIDFromHex(req.MessageID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateMessageStatusErrorResponse{
				Error: "Invalid request",
			})
			return
		}

		if err := svc.UpdateStatus(ctx, messageID, req.Status); err != nil {
			switch err {
			case services.ErrInvalidStatus:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateMessageStatusErrorResponse{
					Error: "Invalid request",
				})
			default:
				logger.Log.Errorw("failed to update message status", "messageID", req.MessageID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateMessageStatusErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateMessageStatusResponse{Success: true})
	}
}
