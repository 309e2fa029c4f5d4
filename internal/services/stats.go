package services

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogLister lists every blog.
type BlogLister interface {
	List(ctx context.Context) ([]models.BlogWithOwner, error)
}

// StatsService computes statistics over the public blog list.
type StatsService struct {
	blogs BlogLister
}

// NewStatsService creates a new StatsService.
func NewStatsService(blogs BlogLister) *StatsService {
	return &StatsService{blogs: blogs}
}

// Get computes the statistics of the current blog list.
func (s *StatsService) Get(ctx context.Context) (*models.BlogStats, error) {
	list, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	blogs := make([]models.BlogDB, 0, len(list))
	for _, b := range list {
		blogs = append(blogs, b.BlogDB)
	}

	return &models.BlogStats{
		TotalLikes: TotalLikes(blogs),
		Favorite:   FavoriteBlog(blogs),
		MostBlogs:  MostBlogs(blogs),
		MostLikes:  MostLikes(blogs),
	}, nil
}

// TotalLikes returns the sum of likes over blogs.
func TotalLikes(blogs []models.BlogDB) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the first blog with the highest like count, or nil.
func FavoriteBlog(blogs []models.BlogDB) *models.BlogDB {
	if len(blogs) == 0 {
		return nil
	}
	fav := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > fav.Likes {
			fav = b
		}
	}
	return &fav
}

// MostBlogs returns the author with the most blogs. Ties go to the author seen first.
func MostBlogs(blogs []models.BlogDB) *models.AuthorBlogs {
	order, counts := groupByAuthor(blogs, func(models.BlogDB) int { return 1 })
	if len(order) == 0 {
		return nil
	}
	author := topAuthor(order, counts)
	return &models.AuthorBlogs{Author: author, Blogs: counts[author]}
}

// MostLikes returns the author whose blogs have the most likes in total.
// Ties go to the author seen first.
func MostLikes(blogs []models.BlogDB) *models.AuthorLikes {
	order, likes := groupByAuthor(blogs, func(b models.BlogDB) int { return b.Likes })
	if len(order) == 0 {
		return nil
	}
	author := topAuthor(order, likes)
	return &models.AuthorLikes{Author: author, Likes: likes[author]}
}

func groupByAuthor(blogs []models.BlogDB, weight func(models.BlogDB) int) ([]string, map[string]int) {
	var order []string
	sums := make(map[string]int)
	for _, b := range blogs {
		if _, ok := sums[b.Author]; !ok {
			order = append(order, b.Author)
		}
		sums[b.Author] += weight(b)
	}
	return order, sums
}

func topAuthor(order []string, sums map[string]int) string {
	top := order[0]
	for _, author := range order[1:] {
		if sums[author] > sums[top] {
			top = author
		}
	}
	return top
}
