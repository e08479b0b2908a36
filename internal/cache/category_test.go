package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/repository/memory"
)

// countingRepository records how often List reaches the backing store
type countingRepository struct {
	domain.CategoryRepository
	lists int
}

func (r *countingRepository) List(ctx context.Context) ([]domain.Category, error) {
	r.lists++
	return r.CategoryRepository.List(ctx)
}

func newCache(t *testing.T, ttl time.Duration) (*CategoryCache, *countingRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	repo := &countingRepository{CategoryRepository: memory.NewCategoryRepository("Science", "Art")}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCategoryCache(repo, client, ttl, log), repo, mr
}

func TestCategoryCache_ReadThrough(t *testing.T) {
	ctx := context.Background()
	c, repo, mr := newCache(t, time.Minute)

	first, err := c.List(ctx)
	require.NoError(t, err)
	second, err := c.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []domain.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, second)
	assert.Equal(t, 1, repo.lists)
	assert.True(t, mr.Exists(categoriesKey))
	assert.Equal(t, time.Minute, mr.TTL(categoriesKey))
}

func TestCategoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, repo, mr := newCache(t, time.Minute)

	_, err := c.List(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
}

func TestCategoryCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, repo, mr := newCache(t, 0)

	_, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, mr.TTL(categoriesKey))

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(categoriesKey))

	_, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
}

func TestCategoryCache_CorruptEntryFallsBack(t *testing.T) {
	ctx := context.Background()
	c, repo, mr := newCache(t, time.Minute)

	require.NoError(t, mr.Set(categoriesKey, "not json"))

	categories, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, 1, repo.lists)
}

func TestCategoryCache_RedisDownFallsBack(t *testing.T) {
	ctx := context.Background()
	c, repo, mr := newCache(t, time.Minute)
	mr.Close()

	categories, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, 1, repo.lists)
}

func TestCategoryCache_DelegatesLookups(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCache(t, time.Minute)

	first, err := c.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	art, err := c.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", art.Type)

	_, err = c.GetByID(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
