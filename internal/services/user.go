package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// UserLister lists users together with their owned blogs.
type UserLister interface {
	List(ctx context.Context) ([]models.UserWithBlogs, error)
}

// UserService serves the public user listing.
type UserService struct {
	lister UserLister
}

// NewUserService creates a new UserService.
func NewUserService(lister UserLister) *UserService {
	return &UserService{lister: lister}
}

// List returns every user with the summaries of the blogs it owns.
func (s *UserService) List(ctx context.Context) ([]models.UserWithBlogs, error) {
	users, err := s.lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
