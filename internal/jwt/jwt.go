package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
)

// Claims is the signed identity claim carried by a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

// JWT issues and decodes HS256 bearer tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Default token lifetime used by Generate

	now func() time.Time
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
		now:       time.Now,
	}
}

// Generate issues a token for the user with the default lifetime.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	return j.Issue(ctx, userID, username, j.Exp)
}

// Issue signs a token for the user that expires after ttl.
// A non-positive ttl yields a token that is already expired.
func (j *JWT) Issue(ctx context.Context, userID uuid.UUID, username string, ttl time.Duration) (string, error) {
	now := j.clock()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry(now, ttl)),
		},
		UserID:   userID.String(),
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies the signature and expiry of tokenString and returns its claims.
// It does not check the claim contents; callers decide what a usable claim is.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperr.Auth(apperr.ReasonExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, apperr.Auth(apperr.ReasonInvalidSignature, err)
		default:
			return nil, apperr.Auth(apperr.ReasonInvalidToken, err)
		}
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return ExtractBearer(r.Header.Get("Authorization"))
}

// ExtractBearer returns the token of an "Authorization: Bearer <token>" header value.
// The scheme is matched case-insensitively.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", apperr.Auth(apperr.ReasonMissingToken, errors.New("authorization header missing"))
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", apperr.Auth(apperr.ReasonMissingToken, errors.New("invalid authorization header format"))
	}

	return parts[1], nil
}

// expiry returns now+ttl. For a positive ttl it is rounded up to the next
// whole second, since NumericDate keeps only seconds.
func expiry(now time.Time, ttl time.Duration) time.Time {
	exp := now.Add(ttl)
	if ttl <= 0 {
		return exp
	}
	if t := exp.Truncate(jwt.TimePrecision); t.Before(exp) {
		return t.Add(jwt.TimePrecision)
	}
	return exp
}

func (j *JWT) clock() time.Time {
	if j.now == nil {
		return time.Now()
	}
	return j.now()
}
