package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Username: "alice", Name: "Alice", Password: "abc123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "Alice", "abc123").
					Return(&models.UserDB{UserID: userID, Username: "alice", Name: "Alice", PasswordHash: "digest"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{
				"id":       userID.String(),
				"username": "alice",
				"name":     "Alice",
				"blogs":    []any{},
			},
		},
		{
			name:    "user already exists",
			reqBody: RegisterRequest{Username: "alice", Password: "abc123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "", "abc123").
					Return(nil, apperr.Validation("username must be unique"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"error": "validation failed: username must be unique",
				"code":  "validation_failed",
			},
		},
		{
			name:    "internal server error",
			reqBody: RegisterRequest{Username: "bob", Password: "abc123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "", "abc123").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error", "code": "internal"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Malformed request", "code": "validation_failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
			assert.NotContains(t, rr.Body.String(), "digest")
		})
	}
}
