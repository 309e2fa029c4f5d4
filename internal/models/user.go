package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID   `json:"id" db:"user_id"`            // Primary key
	Username     string      `json:"username" db:"username"`     // Unique username
	Name         string      `json:"name" db:"name"`             // Display name
	PasswordHash string      `json:"-" db:"password_hash"`       // Bcrypt digest, never serialized
	CreatedAt    time.Time   `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"` // Last update timestamp
	BlogIDs      []uuid.UUID `json:"blogs,omitempty" db:"-"`     // Owned blog keys in creation order
}

// UserBlogDB is one entry of a user's owned-blog list joined with the blog summary.
type UserBlogDB struct {
	UserID uuid.UUID `db:"user_id"`
	BlogID uuid.UUID `db:"blog_id"`
	Title  string    `db:"title"`
	Author string    `db:"author"`
	URL    string    `db:"url"`
}

// UserWithBlogs is a user together with the summaries of the blogs it owns.
type UserWithBlogs struct {
	User  UserDB
	Blogs []UserBlogDB
}
