// File: internal/infrastructure/cache/blog_cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/syedsaim26/blog-platform/internal/config"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/domain/repository"
)

const (
	blogKeyPrefix = "blog:"
	blogListKey   = "blogs:all"
)

// NewRedisClient creates a redis client and verifies the connection with a
// ping.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

type redisBlogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBlogCache creates a blog read cache backed by redis.
func NewRedisBlogCache(client *redis.Client, ttl time.Duration) repository.BlogCache {
	return &redisBlogCache{client: client, ttl: ttl}
}

func (c *redisBlogCache) GetBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	data, err := c.client.Get(ctx, blogKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog from cache: %w", err)
	}
	blog := &models.Blog{}
	if err := json.Unmarshal(data, blog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached blog: %w", err)
	}
	return blog, nil
}

func (c *redisBlogCache) SetBlog(ctx context.Context, blog *models.Blog) error {
	data, err := json.Marshal(blog)
	if err != nil {
		return fmt.Errorf("failed to marshal blog for cache: %w", err)
	}
	if err := c.client.Set(ctx, blogKeyPrefix+blog.ID.String(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set blog in cache: %w", err)
	}
	return nil
}

func (c *redisBlogCache) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, blogKeyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete blog from cache: %w", err)
	}
	return nil
}

func (c *redisBlogCache) GetBlogList(ctx context.Context) ([]models.Blog, error) {
	data, err := c.client.Get(ctx, blogListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog list from cache: %w", err)
	}
	var blogs []models.Blog
	if err := json.Unmarshal(data, &blogs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached blog list: %w", err)
	}
	return blogs, nil
}

func (c *redisBlogCache) SetBlogList(ctx context.Context, blogs []models.Blog) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return fmt.Errorf("failed to marshal blog list for cache: %w", err)
	}
	if err := c.client.Set(ctx, blogListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set blog list in cache: %w", err)
	}
	return nil
}

func (c *redisBlogCache) DeleteBlogList(ctx context.Context) error {
	if err := c.client.Del(ctx, blogListKey).Err(); err != nil {
		return fmt.Errorf("failed to delete blog list from cache: %w", err)
	}
	return nil
}

var _ repository.BlogCache = (*redisBlogCache)(nil)
