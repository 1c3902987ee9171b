package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/services"
)

func TestCreateConversationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	convID := primitive.NewObjectID()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(tok *MockTokener, svc *MockConversationCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "creates new conversation",
			body: fmt.Sprintf(`{"userId":%q}`, otherID.Hex()),
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
				svc.EXPECT().
					CreateOrGet(gomock.Any(), userID, otherID).
					Return(convID, false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"id": convID.Hex(), "existing": false},
		},
		{
			name: "returns existing conversation",
			body: fmt.Sprintf(`{"userId":%q}`, otherID.Hex()),
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
				svc.EXPECT().
					CreateOrGet(gomock.Any(), userID, otherID).
					Return(convID, true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"id": convID.Hex(), "existing": true},
		},
		{
			name: "missing user id",
			body: `{}`,
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Missing user ID"},
		},
		{
			name: "invalid user id",
			body: `{"userId":"not-a-hex-id"}`,
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user ID"},
		},
		{
			name: "own user id rejected",
			body: fmt.Sprintf(`{"userId":%q}`, userID.Hex()),
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
				svc.EXPECT().
					CreateOrGet(gomock.Any(), userID, userID).
					Return(primitive.NilObjectID, false, services.ErrSelfConversation)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Cannot start a conversation with yourself"},
		},
		{
			name: "user not found",
			body: fmt.Sprintf(`{"userId":%q}`, otherID.Hex()),
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
				svc.EXPECT().
					CreateOrGet(gomock.Any(), userID, otherID).
					Return(primitive.NilObjectID, false, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name: "unauthorized",
			body: `{}`,
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authFail(tok)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
		{
			name: "internal server error",
			body: fmt.Sprintf(`{"userId":%q}`, otherID.Hex()),
			mockSetup: func(tok *MockTokener, svc *MockConversationCreator) {
				authOK(tok, userID)
				svc.EXPECT().
					CreateOrGet(gomock.Any(), userID, otherID).
					Return(primitive.NilObjectID, false, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockTokener(ctrl)
			svc := NewMockConversationCreator(ctrl)
			tt.mockSetup(tok, svc)

			handler := NewCreateConversationHandler(svc, tok)

			req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
