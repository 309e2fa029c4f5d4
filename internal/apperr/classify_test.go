package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantReason string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        Validation("title is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
			wantMsg:    "validation failed: title is required",
		},
		{
			name:       "malformed key",
			err:        MalformedKey("123", errors.New("invalid length")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "malformed_key",
			wantMsg:    "malformatted id",
		},
		{
			name:       "expired token",
			err:        Auth(ReasonExpired, errors.New("token is expired")),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "auth_failure",
			wantReason: "expired",
			wantMsg:    "token expired",
		},
		{
			name:       "missing token",
			err:        Auth(ReasonMissingToken, nil),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "auth_failure",
			wantReason: "missing_token",
			wantMsg:    "token missing",
		},
		{
			name:       "forbidden",
			err:        Forbidden("Access denied"),
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
			wantMsg:    "Access denied",
		},
		{
			name:       "not found wrapped",
			err:        fmt.Errorf("delete blog: %w", NotFound("Blog not found")),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
			wantMsg:    "Blog not found",
		},
		{
			name:       "method not allowed",
			err:        MethodNotAllowed(http.MethodPatch),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "method_not_allowed",
			wantMsg:    "method not allowed",
		},
		{
			name:       "unclassified",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("resolve: %w", Auth(ReasonExpired, nil))

	assert.True(t, errors.Is(err, ErrAuth))
	assert.True(t, errors.Is(err, ErrExpired))
	assert.False(t, errors.Is(err, ErrInvalidSignature))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.True(t, errors.Is(Forbidden("no"), ErrForbidden))
	assert.Equal(t, KindAuth, KindOf(err))
	assert.Equal(t, KindUnclassified, KindOf(errors.New("boom")))
}

func TestWrite(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, NotFound("Blog not found"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Blog not found", "code": "not_found"}, body)
}
