package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/Nazehs/trivia-app/internal/cache"
	"github.com/Nazehs/trivia-app/internal/config"
	"github.com/Nazehs/trivia-app/internal/database"
	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/events"
	"github.com/Nazehs/trivia-app/internal/handler"
	"github.com/Nazehs/trivia-app/internal/repository/memory"
	"github.com/Nazehs/trivia-app/internal/repository/postgres"
	"github.com/Nazehs/trivia-app/internal/service"
	"github.com/Nazehs/trivia-app/internal/websocket"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, cfg.LogLevel)
	log.Info("starting trivia api",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	if err := run(cfg, log); err != nil {
		log.Error("trivia api stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	categoryRepo, questionRepo, closeStorage, err := setupStorage(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage()

	// Initialize websocket hub
	hub := websocket.NewHub(log)
	go hub.Run(ctx)

	var publisher events.Publisher = hub

	// Initialize Redis client
	if cfg.Redis.Enabled() {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		categoryRepo = setupCategoryCache(ctx, categoryRepo, redisClient, cfg.Redis, log)
		publisher = startBroker(ctx, redisClient, hub, log)
	}

	// Initialize services
	strategy := service.QuizFirst
	if cfg.Quiz.Selection == config.QuizSelectRandom {
		strategy = service.QuizRandom
	}
	triviaService := service.NewTriviaService(categoryRepo, questionRepo, log,
		service.WithPublisher(publisher),
		service.WithQuizStrategy(strategy),
	)

	// Initialize Echo
	e := handler.NewEcho(log)

	// Routes
	handler.NewCategoryHandler(triviaService).Register(e)
	handler.NewQuestionHandler(triviaService).Register(e)
	handler.NewQuizHandler(triviaService).Register(e)
	handler.NewWebSocketHandler(hub, log).Register(e)

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", cfg.HTTP.Addr))
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	}
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

func setupStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (domain.CategoryRepository, domain.QuestionRepository, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("using in-memory storage, questions are lost on restart")
		return memory.NewCategoryRepository(domain.DefaultCategories...), memory.NewQuestionRepository(), func() {}, nil
	}

	pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Postgres.Bootstrap {
		if err := database.Bootstrap(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		log.Info("database schema ready")
	}

	return postgres.NewCategoryRepository(pool), postgres.NewQuestionRepository(pool), pool.Close, nil
}

// setupCategoryCache wraps categories with the Redis list cache. Storage may
// have been re-seeded since the list was cached, so it starts empty.
func setupCategoryCache(ctx context.Context, categories domain.CategoryRepository, client *redis.Client, cfg config.RedisConfig, log *slog.Logger) domain.CategoryRepository {
	categoryCache := cache.NewCategoryCache(categories, client, cfg.CategoryCacheTTL, log)
	if err := categoryCache.Invalidate(ctx); err != nil {
		log.Warn("failed to flush category cache", slog.String("error", err.Error()))
	}
	return categoryCache
}

// startBroker publishes question events through Redis and relays them back
// into the local hub, so every instance's feed sees every change
func startBroker(ctx context.Context, client *redis.Client, hub *websocket.Hub, log *slog.Logger) events.Publisher {
	broker := events.NewRedisBroker(client, events.DefaultChannel, log)

	go func() {
		if err := broker.Relay(ctx, hub); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("event relay stopped", slog.String("error", err.Error()))
		}
	}()

	return broker
}

func setupLogger(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
}
