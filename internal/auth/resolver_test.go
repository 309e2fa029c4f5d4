package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/jwt"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	dbErr := errors.New("db down")

	tests := []struct {
		name       string
		header     string
		mockSetup  func(d *MockClaimsDecoder, u *MockUserGetter)
		wantErr    error
		wantUserID uuid.UUID
	}{
		{
			name:    "missing header",
			header:  "",
			wantErr: apperr.ErrMissingToken,
		},
		{
			name:    "wrong scheme",
			header:  "Basic YWxpY2U6c2VjcmV0",
			wantErr: apperr.ErrMissingToken,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "expired").
					Return(nil, apperr.Auth(apperr.ReasonExpired, nil))
			},
			wantErr: apperr.ErrExpired,
		},
		{
			name:   "bad signature",
			header: "Bearer forged",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "forged").
					Return(nil, apperr.Auth(apperr.ReasonInvalidSignature, nil))
			},
			wantErr: apperr.ErrInvalidSignature,
		},
		{
			name:   "claim without user id",
			header: "Bearer old-schema",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "old-schema").
					Return(&jwt.Claims{Username: "alice"}, nil)
			},
			wantErr: apperr.ErrInvalidToken,
		},
		{
			name:   "claim with malformed user id",
			header: "Bearer weird",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "weird").
					Return(&jwt.Claims{UserID: "42", Username: "alice"}, nil)
			},
			wantErr: apperr.ErrInvalidToken,
		},
		{
			name:   "user deleted after issuance",
			header: "Bearer good",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "good").
					Return(&jwt.Claims{UserID: userID.String(), Username: "alice"}, nil)
				u.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			wantErr: apperr.ErrUnknownUser,
		},
		{
			name:   "store error",
			header: "Bearer good",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "good").
					Return(&jwt.Claims{UserID: userID.String(), Username: "alice"}, nil)
				u.EXPECT().GetByID(gomock.Any(), userID).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:   "success",
			header: "Bearer good",
			mockSetup: func(d *MockClaimsDecoder, u *MockUserGetter) {
				d.EXPECT().GetClaims(gomock.Any(), "good").
					Return(&jwt.Claims{UserID: userID.String(), Username: "alice"}, nil)
				u.EXPECT().GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, Username: "alice", Name: "Alice"}, nil)
			},
			wantUserID: userID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := NewMockClaimsDecoder(ctrl)
			users := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(decoder, users)
			}

			identity, err := NewResolver(decoder, users).Resolve(context.Background(), tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantUserID, identity.UserID)
			assert.Equal(t, "alice", identity.Username)
			assert.Equal(t, "Alice", identity.Name)
		})
	}
}
