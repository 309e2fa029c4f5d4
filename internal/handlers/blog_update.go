package handlers

//go:generate mockgen -source=blog_update.go -destination=mock_blog_update.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogUpdater updates a blog owned by the caller.
type BlogUpdater interface {
	Update(ctx context.Context, identity *models.Identity, id string, fields models.BlogFields) (*models.BlogWithOwner, error)
}

// NewUpdateBlogHandler returns an HTTP handler updating a blog of the authenticated user.
// @Summary Update blog
// @Description Updates title, author, url or likes of a blog. Only the owner may update it.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog key"
// @Param blogRequest body handlers.BlogRequest true "Fields to change"
// @Success 200 {object} handlers.BlogResponse "Updated blog"
// @Failure 400 {object} apperr.Response "Validation failed or malformed key"
// @Failure 401 {object} apperr.Response "Missing, invalid or expired token"
// @Failure 403 {object} apperr.Response "Not the owner"
// @Failure 404 {object} apperr.Response "Blog not found"
// @Router /blogs/{id} [put]
// @Security BearerAuth
func NewUpdateBlogHandler(svc BlogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		ctx := r.Context()
		blog, err := svc.Update(ctx, auth.IdentityFromContext(ctx), chi.URLParam(r, "id"), req.fields())
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBlogResponse(blog))
	}
}
