package handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tokener extracts the authenticated user's ID from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (primitive.ObjectID, error)
}

// userIDFromRequest resolves the caller's user ID from the Authorization
// header.
func userIDFromRequest(ctx context.Context, tokener Tokener, r *http.Request) (primitive.ObjectID, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return tokener.GetUserID(ctx, tokenStr)
}
