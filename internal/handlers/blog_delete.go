package handlers

//go:generate mockgen -source=blog_delete.go -destination=mock_blog_delete.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogDeleter deletes a blog owned by the caller.
type BlogDeleter interface {
	Delete(ctx context.Context, identity *models.Identity, id string) error
}

// NewDeleteBlogHandler returns an HTTP handler deleting a blog of the authenticated user.
// @Summary Delete blog
// @Tags blogs
// @Param id path string true "Blog key"
// @Success 204 "Deleted"
// @Failure 400 {object} apperr.Response "Malformed key"
// @Failure 401 {object} apperr.Response "Missing, invalid or expired token"
// @Failure 403 {object} apperr.Response "Not the owner"
// @Failure 404 {object} apperr.Response "Blog not found"
// @Router /blogs/{id} [delete]
// @Security BearerAuth
func NewDeleteBlogHandler(svc BlogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := svc.Delete(ctx, auth.IdentityFromContext(ctx), chi.URLParam(r, "id")); err != nil {
			apperr.Write(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
