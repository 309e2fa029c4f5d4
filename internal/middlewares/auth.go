package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// IdentityResolver resolves an Authorization header value to the calling user.
type IdentityResolver interface {
	Resolve(ctx context.Context, header string) (*models.Identity, error)
}

// AuthMiddleware returns a middleware that resolves the bearer token of the
// request and attaches the identity to its context. Unauthenticated requests
// are answered here and never reach next.
func AuthMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := resolver.Resolve(ctx, r.Header.Get("Authorization"))
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				apperr.Write(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, identity)))
		})
	}
}
