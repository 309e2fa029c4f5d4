package handlers

//go:generate mockgen -source=blog_stats.go -destination=mock_blog_stats.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// StatsGetter computes blog statistics.
type StatsGetter interface {
	Get(ctx context.Context) (*models.BlogStats, error)
}

// FavoriteBlogResponse is the most liked blog
// swagger:model FavoriteBlogResponse
type FavoriteBlogResponse struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// StatsResponse represents blog statistics. Entries are null when there are no blogs.
// swagger:model StatsResponse
type StatsResponse struct {
	// Sum of likes over all blogs
	// default: 36
	TotalLikes int `json:"total_likes"`

	FavoriteBlog *FavoriteBlogResponse `json:"favorite_blog"`
	MostBlogs    *models.AuthorBlogs   `json:"most_blogs"`
	MostLikes    *models.AuthorLikes   `json:"most_likes"`
}

// NewBlogStatsHandler returns an HTTP handler for blog statistics.
// @Summary Blog statistics
// @Description Total likes, the favorite blog, the author with most blogs and the author with most likes.
// @Tags blogs
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Failure 500 {object} apperr.Response "Internal server error"
// @Router /blogs/stats [get]
func NewBlogStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Get(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}

		resp := StatsResponse{
			TotalLikes: stats.TotalLikes,
			MostBlogs:  stats.MostBlogs,
			MostLikes:  stats.MostLikes,
		}
		if stats.Favorite != nil {
			resp.FavoriteBlog = &FavoriteBlogResponse{
				Title:  stats.Favorite.Title,
				Author: stats.Favorite.Author,
				Likes:  stats.Favorite.Likes,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
