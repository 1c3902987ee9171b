package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
)

// PresenceSetter defines the interface that the service must implement.
type PresenceSetter interface {
	SetOnline(ctx context.Context, userID primitive.ObjectID, online bool) error
}

// SetOnlineRequest represents the JSON body for a presence update
// swagger:model SetOnlineRequest
type SetOnlineRequest struct {
	// Online flag
	// required: true
	Status *bool `json:"status"`
}

// SetOnlineResponse represents a successful presence update
// swagger:model SetOnlineResponse
type SetOnlineResponse struct {
	// default: true
	Success bool `json:"success"`
}

// SetOnlineErrorResponse represents an error response for a presence update
// swagger:model SetOnlineErrorResponse
type SetOnlineErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`
}

// NewSetOnlineHandler returns an HTTP handler recording the caller's
// self-reported presence. Clients call it on visibility changes, on an
// interval while visible, and best-effort on teardown.
// @Summary Set presence
// @Description Records the caller's online flag and last-active timestamp.
// @Tags users
// @Accept json
// @Produce json
// @Param setOnlineRequest body handlers.SetOnlineRequest true "Presence flag"
// @Success 200 {object} handlers.SetOnlineResponse "Presence recorded"
// @Failure 400 {object} handlers.SetOnlineErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SetOnlineErrorResponse "Unauthorized"
// @Router /users/online [post]
// @Security BearerAuth
func NewSetOnlineHandler(svc PresenceSetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetOnlineErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req SetOnlineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetOnlineErrorResponse{
				Error: "Invalid request",
			})
			return
		}

		if err := svc.SetOnline(ctx, userID, *req.Status); err != nil {
			logger.Log.Errorw("failed to set presence", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SetOnlineErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetOnlineResponse{Success: true})
	}
}
