package handlers

//go:generate mockgen -source=blog_get.go -destination=mock_blog_get.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogGetter returns one blog by key.
type BlogGetter interface {
	Get(ctx context.Context, id string) (*models.BlogWithOwner, error)
}

// NewGetBlogHandler returns an HTTP handler for a single blog.
// @Summary Get blog
// @Tags blogs
// @Produce json
// @Param id path string true "Blog key"
// @Success 200 {object} handlers.BlogResponse "Blog"
// @Failure 400 {object} apperr.Response "Malformed key"
// @Failure 404 {object} apperr.Response "Blog not found"
// @Router /blogs/{id} [get]
func NewGetBlogHandler(svc BlogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blog, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBlogResponse(blog))
	}
}
