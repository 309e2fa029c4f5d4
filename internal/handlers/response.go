package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// BlogOwnerResponse is the public summary of a blog owner
// swagger:model BlogOwnerResponse
type BlogOwnerResponse struct {
	// Owner key
	// default: 4f8b2a4e-1c0a-4f4c-9d43-2b8d1f6c7a10
	ID string `json:"id"`

	// Owner username
	// default: alice
	Username string `json:"username"`

	// Owner display name
	// default: Alice
	Name string `json:"name"`
}

// BlogResponse represents a blog with its owner expanded
// swagger:model BlogResponse
type BlogResponse struct {
	// Blog key
	// default: 9a1c3a1e-6a77-4bd4-8f55-6a1d8f0a4f3e
	ID string `json:"id"`

	// Title
	// default: Go proverbs
	Title string `json:"title"`

	// Author
	// default: Rob Pike
	Author string `json:"author"`

	// Source URL
	// default: https://go-proverbs.github.io
	URL string `json:"url"`

	// Like count
	// default: 0
	Likes int `json:"likes"`

	// Owner summary, absent for unowned blogs
	User *BlogOwnerResponse `json:"user,omitempty"`
}

// UserBlogResponse is a blog summary inside a user listing
// swagger:model UserBlogResponse
type UserBlogResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// UserResponse represents a user with the blogs it owns
// swagger:model UserResponse
type UserResponse struct {
	// User key
	// default: 4f8b2a4e-1c0a-4f4c-9d43-2b8d1f6c7a10
	ID string `json:"id"`

	// Username
	// default: alice
	Username string `json:"username"`

	// Display name
	// default: Alice
	Name string `json:"name"`

	// Owned blogs in creation order
	Blogs []UserBlogResponse `json:"blogs"`
}

func toBlogResponse(b *models.BlogWithOwner) BlogResponse {
	resp := BlogResponse{
		ID:     b.BlogID.String(),
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if b.UserID.Valid {
		resp.User = &BlogOwnerResponse{
			ID:       b.UserID.UUID.String(),
			Username: b.OwnerUsername.String,
			Name:     b.OwnerName.String,
		}
	}
	return resp
}

func toUserResponse(u models.UserWithBlogs) UserResponse {
	resp := UserResponse{
		ID:       u.User.UserID.String(),
		Username: u.User.Username,
		Name:     u.User.Name,
		Blogs:    make([]UserBlogResponse, 0, len(u.Blogs)),
	}
	for _, b := range u.Blogs {
		resp.Blogs = append(resp.Blogs, UserBlogResponse{
			ID:     b.BlogID.String(),
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}
	return resp
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.MalformedRequest(err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
