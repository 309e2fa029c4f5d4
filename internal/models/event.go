package models

// Blog event operations.
const (
	BlogCreated = "created"
	BlogUpdated = "updated"
	BlogDeleted = "deleted"
)

// BlogEvent is published after a blog mutation has been committed.
type BlogEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the mutation.
	BlogID    string `json:"blog_id"`   // BlogID is the key of the mutated blog.
	UserID    string `json:"user_id"`   // UserID is the key of the acting owner.
	Operation string `json:"operation"` // Operation is one of created, updated or deleted.
}
