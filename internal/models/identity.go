package models

import "github.com/google/uuid"

// Identity is the caller resolved from a bearer token for the duration of one request.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Name     string
}
