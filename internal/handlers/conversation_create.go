package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// ConversationCreator defines the interface that the service must implement.
type ConversationCreator interface {
	CreateOrGet(ctx context.Context, currentUserID, otherUserID primitive.ObjectID) (primitive.ObjectID, bool, error)
}

// CreateConversationRequest represents the JSON body for opening a conversation
// swagger:model CreateConversationRequest
type CreateConversationRequest struct {
	// Other participant's user ID
	// required: true
	UserID string `json:"userId"`
}

// CreateConversationResponse represents the conversation returned for the pair
// swagger:model CreateConversationResponse
type CreateConversationResponse struct {
	// Conversation ID
	ID string `json:"id"`

	// True when the conversation already existed
	Existing bool `json:"existing"`
}

// CreateConversationErrorResponse represents an error response when opening a conversation
// swagger:model CreateConversationErrorResponse
type CreateConversationErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewCreateConversationHandler returns an HTTP handler that finds or creates
// the 1:1 conversation with another user.
// @Summary Create or get a conversation
// @Description Returns the existing conversation with the given user, creating it when absent. At most one conversation exists per pair.
// @Tags messages
// @Accept json
// @Produce json
// @Param createConversationRequest body handlers.CreateConversationRequest true "Conversation target"
// @Success 200 {object} handlers.CreateConversationResponse "Conversation"
// @Failure 400 {object} handlers.CreateConversationErrorResponse "Missing user ID"
// @Failure 401 {object} handlers.CreateConversationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CreateConversationErrorResponse "User not found"
// @Router /conversations [post]
// @Security BearerAuth
func NewCreateConversationHandler(svc ConversationCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateConversationErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateConversationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateConversationErrorResponse{
				Error: "Missing user ID",
			})
			return
		}

		otherID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateConversationErrorResponse{
				Error: "Invalid user ID",
			})
			return
		}

		conversationID, existing, err := svc.CreateOrGet(ctx, userID, otherID)
		if err != nil {
			switch err {
			case services.ErrSelfConversation:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateConversationErrorResponse{
					Error: "Cannot start a conversation with yourself",
				})
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateConversationErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to create conversation", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateConversationErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateConversationResponse{
			ID:       conversationID.Hex(),
			Existing: existing,
		})
	}
}
