package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "trivia", cfg.Postgres.DBName)
	assert.True(t, cfg.Postgres.Bootstrap)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.CategoryCacheTTL)
	assert.Equal(t, QuizSelectFirst, cfg.Quiz.Selection)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CATEGORY_CACHE_TTL", "30s")
	t.Setenv("QUIZ_SELECTION", QuizSelectRandom)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.CategoryCacheTTL)
	assert.Equal(t, QuizSelectRandom, cfg.Quiz.Selection)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("env: prod\nstorage:\n  driver: memory\npostgres:\n  db_name: quiz\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "quiz", cfg.Postgres.DBName)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	t.Run("storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := Load()
		require.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("quiz selection", func(t *testing.T) {
		t.Setenv("QUIZ_SELECTION", "weighted")
		_, err := Load()
		require.ErrorContains(t, err, "unknown quiz selection")
	})
}
