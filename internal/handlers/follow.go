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

// FollowToggler defines the interface that the service must implement.
type FollowToggler interface {
	ToggleFollow(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error)
}

// FollowResponse represents the relationship state after a toggle
// swagger:model FollowResponse
type FollowResponse struct {
	// True when the caller now follows the target
	Following bool `json:"following"`
}

// FollowErrorResponse represents an error response for a follow toggle
// swagger:model FollowErrorResponse
type FollowErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewFollowHandler returns an HTTP handler toggling the follow relationship
// with the target user.
// @Summary Follow or unfollow a user
// @Description Follows the target if not currently followed, unfollows otherwise, and returns the resulting state.
// @Tags users
// @Produce json
// @Param id path string true "Target user ID"
// @Success 200 {object} handlers.FollowResponse "Resulting relationship"
// @Failure 400 {object} handlers.FollowErrorResponse "Self-follow"
// @Failure 401 {object} handlers.FollowErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FollowErrorResponse "User not found"
// @Router /users/{id}/follow [post]
// @Security BearerAuth
func NewFollowHandler(svc FollowToggler, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FollowErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		targetID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FollowErrorResponse{
				Error: "User not found",
			})
			return
		}

		following, err := svc.ToggleFollow(ctx, userID, targetID)
		if err != nil {
			switch err {
			case services.ErrSelfFollow:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Cannot follow yourself",
				})
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("follow toggle failed", "targetID", targetID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FollowErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FollowResponse{Following: following})
	}
}
