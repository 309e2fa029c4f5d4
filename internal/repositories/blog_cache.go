package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

const blogListKey = "blogs:list"

// BlogListCacheRepository caches the public blog list in Redis
type BlogListCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewBlogListCacheRepository creates a new repository instance with the given TTL
func NewBlogListCacheRepository(client *redis.Client, expiration time.Duration) *BlogListCacheRepository {
	return &BlogListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached list. The boolean is false on a cache miss.
func (r *BlogListCacheRepository) Get(ctx context.Context) ([]models.BlogWithOwner, bool, error) {
	val, err := r.client.Get(ctx, blogListKey).Bytes()
	if err == redis.Nil {
		logger.Log.Debugw("cache miss", "key", blogListKey)
		return nil, false, nil
	}
	if err != nil {
		logger.Log.Warnw("cache read failed", "key", blogListKey, "error", err)
		return nil, false, err
	}

	var blogs []models.BlogWithOwner
	if err := json.Unmarshal(val, &blogs); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", blogListKey, "error", err)
		return nil, false, err
	}

	logger.Log.Debugw("cache hit", "key", blogListKey, "result", len(blogs))
	return blogs, true, nil
}

// Set stores the list with the repository TTL
func (r *BlogListCacheRepository) Set(ctx context.Context, blogs []models.BlogWithOwner) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, blogListKey, data, r.exp).Err()

	logger.Log.Debugw("cache write", "key", blogListKey, "result", len(blogs), "error", err)

	return err
}

// Invalidate drops the cached list
func (r *BlogListCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, blogListKey).Err()

	logger.Log.Debugw("cache invalidate", "key", blogListKey, "error", err)

	return err
}
