package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	QuizSelectFirst  = "first"
	QuizSelectRandom = "random"
)

// Config holds the application configuration
type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	LogLevel string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Quiz     QuizConfig     `yaml:"quiz"`
}

// HTTPConfig holds the HTTP server configuration
type HTTPConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects the question bank backend
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

// PostgresConfig holds the configuration for PostgreSQL connection
type PostgresConfig struct {
	Host      string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port      string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User      string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password  string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName    string `yaml:"db_name" env:"POSTGRES_DB" env-default:"trivia"`
	SSLMode   string `yaml:"ssl_mode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	Bootstrap bool   `yaml:"bootstrap" env:"POSTGRES_BOOTSTRAP" env-default:"true"`
}

// RedisConfig holds the Redis configuration. An empty Addr disables Redis.
type RedisConfig struct {
	Addr             string        `yaml:"addr" env:"REDIS_ADDR"`
	Password         string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB               int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	CategoryCacheTTL time.Duration `yaml:"category_cache_ttl" env:"CATEGORY_CACHE_TTL" env-default:"5m"`
}

// QuizConfig holds the quiz endpoint configuration
type QuizConfig struct {
	Selection string `yaml:"selection" env:"QUIZ_SELECTION" env-default:"first"`
}

// Enabled reports whether a Redis address is configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Load reads the configuration from an optional .env file, an optional YAML
// file named by CONFIG_PATH, and the process environment, in that order.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad loads the configuration and panics on error
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Quiz.Selection {
	case QuizSelectFirst, QuizSelectRandom:
	default:
		return fmt.Errorf("unknown quiz selection %q", c.Quiz.Selection)
	}

	return nil
}
