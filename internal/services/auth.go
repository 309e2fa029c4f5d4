package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	maxNameLength     = 128
	minPasswordLength = 3
	maxPasswordBytes  = 72 // bcrypt input limit
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	cost   int
}

// NewAuthService creates a new AuthService instance.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, cost int) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		cost:   cost,
	}
}

// Register validates and stores a new user.
func (svc *AuthService) Register(ctx context.Context, username, name, password string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	switch {
	case username == "":
		return nil, apperr.Validation("username is required")
	case utf8.RuneCountInString(username) < minUsernameLength:
		return nil, apperr.Validation("username must be at least %d characters", minUsernameLength)
	case utf8.RuneCountInString(username) > maxUsernameLength:
		return nil, apperr.Validation("username must be at most %d characters", maxUsernameLength)
	case utf8.RuneCountInString(name) > maxNameLength:
		return nil, apperr.Validation("name must be at most %d characters", maxNameLength)
	case password == "":
		return nil, apperr.Validation("password is required")
	case utf8.RuneCountInString(password) < minPasswordLength:
		return nil, apperr.Validation("password must be at least %d characters", minPasswordLength)
	case len(password) > maxPasswordBytes:
		return nil, apperr.Validation("password must be at most %d bytes", maxPasswordBytes)
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, apperr.Validation("username must be unique")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
		BlogIDs:      []uuid.UUID{},
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns it together with a fresh token.
// Unknown usernames and wrong passwords fail identically.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return nil, "", apperr.Auth(apperr.ReasonInvalidCredentials, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, "", apperr.Auth(apperr.ReasonInvalidCredentials, nil)
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}
