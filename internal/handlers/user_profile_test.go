package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()

	tests := []struct {
		name         string
		paramID      string
		mockSetup    func(tok *MockTokener, svc *MockProfileGetter)
		expectedCode int
	}{
		{
			name:    "success",
			paramID: targetID.Hex(),
			mockSetup: func(tok *MockTokener, svc *MockProfileGetter) {
				authOK(tok, userID)
				svc.EXPECT().
					GetProfile(gomock.Any(), targetID, userID).
					Return(&models.ProfileView{
						ID:             targetID,
						Name:           "Alice",
						Username:       "alice",
						PostsCount:     3,
						FollowersCount: 10,
						FollowingCount: 7,
						IsFollowing:    true,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "user not found",
			paramID: targetID.Hex(),
			mockSetup: func(tok *MockTokener, svc *MockProfileGetter) {
				authOK(tok, userID)
				svc.EXPECT().
					GetProfile(gomock.Any(), targetID, userID).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "invalid user id",
			paramID: "not-a-hex-id",
			mockSetup: func(tok *MockTokener, svc *MockProfileGetter) {
				authOK(tok, userID)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "unauthorized",
			paramID: targetID.Hex(),
			mockSetup: func(tok *MockTokener, svc *MockProfileGetter) {
				authFail(tok)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:    "internal server error",
			paramID: targetID.Hex(),
			mockSetup: func(tok *MockTokener, svc *MockProfileGetter) {
				authOK(tok, userID)
				svc.EXPECT().
					GetProfile(gomock.Any(), targetID, userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockTokener(ctrl)
			svc := NewMockProfileGetter(ctrl)
			tt.mockSetup(tok, svc)

			handler := NewGetProfileHandler(svc, tok)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.paramID, nil)
			req = withURLParam(req, "id", tt.paramID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.ProfileView
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, targetID, resp.ID)
				assert.True(t, resp.IsFollowing)
			}
		})
	}
}
