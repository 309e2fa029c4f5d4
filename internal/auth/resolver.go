// Package auth resolves the caller of a request and decides whether it may
// mutate a blog.
package auth

//go:generate mockgen -source=resolver.go -destination=mock_resolver.go -package=auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/jwt"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// ClaimsDecoder verifies a bearer token and returns its claims.
type ClaimsDecoder interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter looks a user up by key. It returns nil, nil when the user does not exist.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// Resolver turns an Authorization header into the identity of the caller.
type Resolver struct {
	decoder ClaimsDecoder
	users   UserGetter
}

// NewResolver creates a new Resolver.
func NewResolver(decoder ClaimsDecoder, users UserGetter) *Resolver {
	return &Resolver{decoder: decoder, users: users}
}

// Resolve extracts the bearer token from header, verifies it and loads the
// user it names. Every failure is an apperr auth failure except store errors,
// which are returned as they are.
func (r *Resolver) Resolve(ctx context.Context, header string) (*models.Identity, error) {
	token, err := jwt.ExtractBearer(header)
	if err != nil {
		return nil, err
	}

	claims, err := r.decoder.GetClaims(ctx, token)
	if err != nil {
		return nil, err
	}

	if claims.UserID == "" {
		return nil, apperr.Auth(apperr.ReasonInvalidToken, errors.New("claim has no user id"))
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperr.Auth(apperr.ReasonInvalidToken, err)
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load token user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.Auth(apperr.ReasonUnknownUser, errors.New("user "+userID.String()+" no longer exists"))
	}

	return &models.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
