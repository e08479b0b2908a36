package main

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

	"github.com/Nazehs/trivia-app/internal/config"
	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/repository/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:      config.EnvLocal,
		LogLevel: "info",
		HTTP:     config.HTTPConfig{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second},
		Storage:  config.StorageConfig{Driver: config.StorageMemory},
		Quiz:     config.QuizConfig{Selection: config.QuizSelectFirst},
	}
}

func TestRun_RedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig()
	cfg.Redis.Addr = addr

	err = run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestSetupStorage_Memory(t *testing.T) {
	categories, questions, closeStorage, err := setupStorage(context.Background(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer closeStorage()

	first, err := categories.First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategories[0], first.Type)

	all, err := questions.List(context.Background(), domain.QuestionFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSetupLogger(t *testing.T) {
	log := setupLogger(config.EnvProd, "debug")
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))

	log = setupLogger(config.EnvLocal, "bogus")
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestSetupCategoryCache_FlushesStaleList(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("trivia:categories", `[{"id":1,"type":"Stale"}]`))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	categories := setupCategoryCache(context.Background(), memory.NewCategoryRepository(domain.DefaultCategories...), client, config.RedisConfig{}, log)

	got, err := categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(domain.DefaultCategories))
	assert.Equal(t, "Science", got[0].Type)
}
