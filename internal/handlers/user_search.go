package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// UserSearcher defines the interface that the service must implement.
type UserSearcher interface {
	Search(ctx context.Context, query string, selfID primitive.ObjectID) ([]models.UserPublic, error)
}

// UserSearchErrorResponse represents an error response for user search
// swagger:model UserSearchErrorResponse
type UserSearchErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewUserSearchHandler returns an HTTP handler searching users by username
// or name prefix.
// @Summary Search users
// @Description Returns public profiles matching the query, excluding the caller.
// @Tags users
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.UserPublic "Matching users"
// @Failure 401 {object} handlers.UserSearchErrorResponse "Unauthorized"
// @Router /users/search [get]
// @Security BearerAuth
func NewUserSearchHandler(svc UserSearcher, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserSearchErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]models.UserPublic{})
			return
		}

		users, err := svc.Search(ctx, query, userID)
		if err != nil {
			logger.Log.Errorw("user search failed", "query", query, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserSearchErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if users == nil {
			users = []models.UserPublic{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
