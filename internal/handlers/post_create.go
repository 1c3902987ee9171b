package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// PostCreator defines the interface that the service must implement.
type PostCreator interface {
	Create(ctx context.Context, userID primitive.ObjectID, content, image string) (*models.PostFeedItem, error)
}

// CreatePostRequest represents the JSON body for creating a post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Post text
	Content string `json:"content"`

	// Image URL
	Image string `json:"image"`
}

// CreatePostErrorResponse represents an error response when creating a post
// swagger:model CreatePostErrorResponse
type CreatePostErrorResponse struct {
	// Error message
	// default: Content or image is required
	Error string `json:"error"`
}

// NewCreatePostHandler returns an HTTP handler for creating a post.
// @Summary Create a post
// @Description Creates a post with text and/or an image and bumps the author's post counter.
// @Tags posts
// @Accept json
// @Produce json
// @Param createPostRequest body handlers.CreatePostRequest true "Post content"
// @Success 200 {object} models.PostFeedItem "Created post"
// @Failure 400 {object} handlers.CreatePostErrorResponse "Content or image is required"
// @Failure 401 {object} handlers.CreatePostErrorResponse "Unauthorized"
// @Router /posts [post]
// @Security BearerAuth
func NewCreatePostHandler(svc PostCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{
				Error: "Content or image is required",
			})
			return
		}

		post, err := svc.Create(ctx, userID, req.Content, req.Image)
		if err != nil {
			switch err {
			case services.ErrEmptyPost:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreatePostErrorResponse{
					Error: "Content or image is required",
				})
			default:
				logger.Log.Errorw("failed to create post", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreatePostErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(post)
	}
}
