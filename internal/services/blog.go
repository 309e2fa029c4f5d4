package services

//go:generate mockgen -source=blog.go -destination=mock_blog.go -package=services

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
	"github.com/segmentio/kafka-go"
)

// BlogReader defines blog read operations.
type BlogReader interface {
	List(ctx context.Context) ([]models.BlogWithOwner, error)                     // Returns every blog with its owner summary
	GetByID(ctx context.Context, blogID uuid.UUID) (*models.BlogWithOwner, error) // Returns nil when the blog does not exist
}

// BlogWriter defines blog write operations.
type BlogWriter interface {
	Save(ctx context.Context, blog *models.BlogDB) error                      // Inserts a new blog
	UpdateOwned(ctx context.Context, blog *models.BlogDB) (bool, error)       // Updates while the owner still matches
	DeleteOwned(ctx context.Context, blogID, ownerID uuid.UUID) (bool, error) // Deletes while the owner still matches
}

// OwnedBlogAppender maintains the owned-blog list of a user.
type OwnedBlogAppender interface {
	AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error
}

// BlogListCache caches the public blog list.
type BlogListCache interface {
	Get(ctx context.Context) ([]models.BlogWithOwner, bool, error)
	Set(ctx context.Context, blogs []models.BlogWithOwner) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook defers fn until the transaction bound to ctx commits.
type CommitHook func(ctx context.Context, fn func(ctx context.Context))

// BlogService reads blogs and runs the authenticated create, update and delete pipelines.
type BlogService struct {
	reader      BlogReader
	writer      BlogWriter
	owners      OwnedBlogAppender
	cache       BlogListCache
	kafkaWriter KafkaWriter
	onCommit    CommitHook
}

// NewBlogService creates a new BlogService. cache, kafkaWriter and onCommit may be nil.
func NewBlogService(
	reader BlogReader,
	writer BlogWriter,
	owners OwnedBlogAppender,
	cache BlogListCache,
	kafkaWriter KafkaWriter,
	onCommit CommitHook,
) *BlogService {
	return &BlogService{
		reader:      reader,
		writer:      writer,
		owners:      owners,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		onCommit:    onCommit,
	}
}

// List returns every blog, from the cache when possible.
func (s *BlogService) List(ctx context.Context) ([]models.BlogWithOwner, error) {
	if s.cache != nil {
		blogs, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Log.Warnw("blog list cache unavailable", "error", err)
		}
		if ok {
			return blogs, nil
		}
	}

	blogs, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list blogs", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, blogs); err != nil {
			logger.Log.Warnw("failed to cache blog list", "error", err)
		}
	}
	return blogs, nil
}

// Get returns one blog by its key.
func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogWithOwner, error) {
	blogID, err := ParseKey(id)
	if err != nil {
		return nil, err
	}

	blog, err := s.reader.GetByID(ctx, blogID)
	if err != nil {
		logger.Log.Errorw("failed to get blog", "blogID", blogID, "error", err)
		return nil, err
	}
	if blog == nil {
		return nil, apperr.NotFound("Blog not found")
	}
	return blog, nil
}

// Create validates the input, stores the blog owned by identity and appends
// it to the owner's blog list. Nothing is written when validation fails.
func (s *BlogService) Create(ctx context.Context, identity *models.Identity, fields models.BlogFields) (*models.BlogWithOwner, error) {
	if identity == nil {
		return nil, apperr.Auth(apperr.ReasonMissingToken, nil)
	}

	blog := models.BlogDB{
		BlogID: uuid.New(),
		UserID: uuid.NullUUID{UUID: identity.UserID, Valid: true},
	}
	applyFields(&blog, fields)
	if err := validateBlog(&blog); err != nil {
		return nil, err
	}

	if err := s.writer.Save(ctx, &blog); err != nil {
		logger.Log.Errorw("failed to save blog", "userID", identity.UserID, "error", err)
		return nil, err
	}

	if err := s.owners.AppendBlog(ctx, identity.UserID, blog.BlogID); err != nil {
		logger.Log.Errorw("failed to append blog to owner", "userID", identity.UserID, "blogID", blog.BlogID, "error", err)
		return nil, err
	}

	s.afterCommit(ctx, blog.BlogID, identity.UserID, models.BlogCreated)

	return withOwner(blog, identity), nil
}

// Update applies fields to a blog owned by identity.
func (s *BlogService) Update(ctx context.Context, identity *models.Identity, id string, fields models.BlogFields) (*models.BlogWithOwner, error) {
	current, err := s.authorizedBlog(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	blog := current.BlogDB
	applyFields(&blog, fields)
	if err := validateBlog(&blog); err != nil {
		return nil, err
	}

	ok, err := s.writer.UpdateOwned(ctx, &blog)
	if err != nil {
		logger.Log.Errorw("failed to update blog", "blogID", blog.BlogID, "error", err)
		return nil, err
	}
	if !ok {
		// deleted or re-owned between the check and the write
		return nil, apperr.NotFound("Blog not found")
	}

	s.afterCommit(ctx, blog.BlogID, identity.UserID, models.BlogUpdated)

	return withOwner(blog, identity), nil
}

// Delete removes a blog owned by identity.
func (s *BlogService) Delete(ctx context.Context, identity *models.Identity, id string) error {
	current, err := s.authorizedBlog(ctx, identity, id)
	if err != nil {
		return err
	}

	ok, err := s.writer.DeleteOwned(ctx, current.BlogID, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to delete blog", "blogID", current.BlogID, "error", err)
		return err
	}
	if !ok {
		return apperr.NotFound("Blog not found")
	}

	s.afterCommit(ctx, current.BlogID, identity.UserID, models.BlogDeleted)

	return nil
}

// authorizedBlog fetches the blog and checks that identity owns it.
func (s *BlogService) authorizedBlog(ctx context.Context, identity *models.Identity, id string) (*models.BlogWithOwner, error) {
	if identity == nil {
		return nil, apperr.Auth(apperr.ReasonMissingToken, nil)
	}

	blog, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.Authorize(identity, &blog.BlogDB); err != nil {
		logger.Log.Infow("blog mutation denied", "blogID", blog.BlogID, "userID", identity.UserID)
		return nil, err
	}
	return blog, nil
}

// afterCommit drops the cached list and publishes the event once the
// surrounding transaction has committed.
func (s *BlogService) afterCommit(ctx context.Context, blogID, userID uuid.UUID, operation string) {
	fn := func(ctx context.Context) {
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx); err != nil {
				logger.Log.Warnw("failed to invalidate blog list cache", "error", err)
			}
		}
		s.publishEvent(ctx, models.BlogEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			BlogID:    blogID.String(),
			UserID:    userID.String(),
			Operation: operation,
		})
	}

	if s.onCommit == nil {
		fn(ctx)
		return
	}
	s.onCommit(ctx, fn)
}

// publishEvent publishes a blog event to Kafka.
func (s *BlogService) publishEvent(ctx context.Context, event models.BlogEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal blog event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BlogID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish blog event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Blog event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// ParseKey parses a blog or user key in any accepted UUID form.
func ParseKey(id string) (uuid.UUID, error) {
	key, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, apperr.MalformedKey(id, err)
	}
	return key, nil
}

func applyFields(blog *models.BlogDB, fields models.BlogFields) {
	if fields.Title != nil {
		blog.Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Author != nil {
		blog.Author = strings.TrimSpace(*fields.Author)
	}
	if fields.URL != nil {
		blog.URL = strings.TrimSpace(*fields.URL)
	}
	if fields.Likes != nil {
		blog.Likes = *fields.Likes
	}
}

func validateBlog(blog *models.BlogDB) error {
	switch {
	case blog.Title == "":
		return apperr.Validation("title is required")
	case blog.Author == "":
		return apperr.Validation("author is required")
	case blog.Likes < 0:
		return apperr.Validation("likes must not be negative")
	case blog.Likes > math.MaxInt32:
		return apperr.Validation("likes must be at most %d", math.MaxInt32)
	}
	return nil
}

func withOwner(blog models.BlogDB, identity *models.Identity) *models.BlogWithOwner {
	result := &models.BlogWithOwner{BlogDB: blog}
	result.OwnerUsername.String, result.OwnerUsername.Valid = identity.Username, true
	result.OwnerName.String, result.OwnerName.Valid = identity.Name, true
	return result
}
