package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Nazehs/trivia-app/internal/domain"
)

const (
	// Redis key holding the JSON encoded category list
	categoriesKey = "trivia:categories"

	// DefaultTTL is used when a non-positive TTL is configured
	DefaultTTL = 5 * time.Minute
)

// CategoryCache is a read-through Redis cache in front of a
// domain.CategoryRepository. Only List is cached; categories cannot be
// changed through the API, so entries simply expire after the TTL.
type CategoryCache struct {
	next  domain.CategoryRepository
	redis *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

// NewCategoryCache wraps next with a Redis backed list cache
func NewCategoryCache(next domain.CategoryRepository, client *redis.Client, ttl time.Duration, log *slog.Logger) *CategoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CategoryCache{
		next:  next,
		redis: client,
		ttl:   ttl,
		log:   log,
	}
}

// List returns the cached category list, loading it from the wrapped
// repository on a miss. Redis failures fall back to the repository.
func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.get(ctx)
	switch {
	case err == nil:
		return categories, nil
	case errors.Is(err, redis.Nil):
	default:
		c.log.WarnContext(ctx, "category cache read failed", slog.String("error", err.Error()))
	}

	categories, err = c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, categories); err != nil {
		c.log.WarnContext(ctx, "category cache write failed", slog.String("error", err.Error()))
	}
	return categories, nil
}

// First retrieves the category with the lowest id from the wrapped repository
func (c *CategoryCache) First(ctx context.Context) (*domain.Category, error) {
	return c.next.First(ctx)
}

// GetByID retrieves a category from the wrapped repository
func (c *CategoryCache) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	return c.next.GetByID(ctx, id)
}

// Invalidate drops the cached list
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoriesKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate category cache: %w", err)
	}
	return nil
}

func (c *CategoryCache) get(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryCache) set(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, categoriesKey, data, c.ttl).Err()
}
