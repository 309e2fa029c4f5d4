package handlers

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// UserLister lists users with their owned blogs.
type UserLister interface {
	List(ctx context.Context) ([]models.UserWithBlogs, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Description Returns every user with the blogs it owns. Password digests are never included.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse "Users"
// @Failure 500 {object} apperr.Response "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
