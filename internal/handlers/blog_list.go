package handlers

//go:generate mockgen -source=blog_list.go -destination=mock_blog_list.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogLister lists every blog.
type BlogLister interface {
	List(ctx context.Context) ([]models.BlogWithOwner, error)
}

// NewListBlogsHandler returns an HTTP handler listing every blog.
// @Summary List blogs
// @Description Returns every blog with its owner expanded to id, username and name. No authentication required.
// @Tags blogs
// @Produce json
// @Success 200 {array} handlers.BlogResponse "Blogs"
// @Failure 500 {object} apperr.Response "Internal server error"
// @Router /blogs [get]
func NewListBlogsHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := svc.List(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}

		resp := make([]BlogResponse, 0, len(blogs))
		for i := range blogs {
			resp = append(resp, toBlogResponse(&blogs[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
