package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// FeedReader defines the interface that the service must implement.
type FeedReader interface {
	Feed(ctx context.Context, viewerID primitive.ObjectID) ([]models.PostFeedItem, error)
}

// FeedErrorResponse represents an error response when fetching the feed
// swagger:model FeedErrorResponse
type FeedErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewFeedHandler returns an HTTP handler for the post feed.
// @Summary Get the post feed
// @Description Returns all posts newest first with author details and like/comment counters.
// @Tags posts
// @Produce json
// @Success 200 {array} models.PostFeedItem "Posts"
// @Failure 401 {object} handlers.FeedErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Router /posts [get]
// @Security BearerAuth
func NewFeedHandler(svc FeedReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FeedErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		posts, err := svc.Feed(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to fetch feed", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if posts == nil {
			posts = []models.PostFeedItem{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}
