package handlers

//go:generate mockgen -source=blog_create.go -destination=mock_blog_create.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogCreator creates a blog owned by the caller.
type BlogCreator interface {
	Create(ctx context.Context, identity *models.Identity, fields models.BlogFields) (*models.BlogWithOwner, error)
}

// BlogRequest represents the JSON body for creating or updating a blog.
// Omitted fields are left unchanged on update.
// swagger:model BlogRequest
type BlogRequest struct {
	// Title
	// required: true
	// default: Go proverbs
	Title *string `json:"title"`

	// Author
	// required: true
	// default: Rob Pike
	Author *string `json:"author"`

	// Source URL
	// default: https://go-proverbs.github.io
	URL *string `json:"url"`

	// Like count, defaults to 0
	// minimum: 0
	Likes *int `json:"likes"`
}

func (req BlogRequest) fields() models.BlogFields {
	return models.BlogFields{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
}

// NewCreateBlogHandler returns an HTTP handler creating a blog for the authenticated user.
// @Summary Create blog
// @Description Creates a blog owned by the caller and appends it to the caller's blogs.
// @Tags blogs
// @Accept json
// @Produce json
// @Param blogRequest body handlers.BlogRequest true "Blog"
// @Success 201 {object} handlers.BlogResponse "Created blog"
// @Failure 400 {object} apperr.Response "Validation failed"
// @Failure 401 {object} apperr.Response "Missing, invalid or expired token"
// @Router /blogs [post]
// @Security BearerAuth
func NewCreateBlogHandler(svc BlogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		ctx := r.Context()
		blog, err := svc.Create(ctx, auth.IdentityFromContext(ctx), req.fields())
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toBlogResponse(blog))
	}
}
