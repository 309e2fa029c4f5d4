package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BlogDB represents a blog row in the database
type BlogDB struct {
	BlogID    uuid.UUID     `db:"blog_id"`    // Primary key
	Title     string        `db:"title"`      // Required title
	Author    string        `db:"author"`     // Required author name
	URL       string        `db:"url"`        // Optional source URL, empty when absent
	Likes     int           `db:"likes"`      // Like count, never negative
	UserID    uuid.NullUUID `db:"user_id"`    // Owner reference, invalid for unowned blogs
	CreatedAt time.Time     `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time     `db:"updated_at"` // Last update timestamp
}

// BlogWithOwner is a blog row with its owner expanded to the public summary.
type BlogWithOwner struct {
	BlogDB
	OwnerUsername sql.NullString `db:"owner_username"`
	OwnerName     sql.NullString `db:"owner_name"`
}

// BlogFields holds the mutable fields of an update. Nil means "leave unchanged".
type BlogFields struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}
