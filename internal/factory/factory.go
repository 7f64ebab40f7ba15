package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/uygun9544/slipperduel/internal/dependencies/clock"
	"github.com/uygun9544/slipperduel/internal/dependencies/random"
	"github.com/uygun9544/slipperduel/internal/services/balance"
	"github.com/uygun9544/slipperduel/internal/services/leaderboard"
	"github.com/uygun9544/slipperduel/internal/services/match"
	"github.com/uygun9544/slipperduel/internal/services/planner"
	"github.com/uygun9544/slipperduel/internal/services/training"
	"github.com/uygun9544/slipperduel/internal/storage"
	"github.com/uygun9544/slipperduel/internal/storage/memory"
	redisstorage "github.com/uygun9544/slipperduel/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.Storage
	StorageMode string

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Balances    *balance.Service
	Planner     *planner.Service
	MatchServer *match.Server
	Leaderboard *leaderboard.Service
	Training    *training.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// persisted state warm-loaded.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, storageType, clk, rnd, logger)

	// Warm loads are best effort: memory stays authoritative either way
	ctx := context.Background()
	if err := app.Balances.Load(ctx); err != nil {
		logger.Warn("could not load profiles", slog.String("error", err.Error()))
	}
	if err := app.Training.Load(ctx); err != nil {
		logger.Warn("could not load training config", slog.String("error", err.Error()))
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, storageMode string, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	balances := balance.New(store, logger)
	plan := planner.New(clk, rnd)
	matchServer := match.NewServer(rnd, plan, balances, logger)

	return &App{
		Storage:     store,
		StorageMode: storageMode,
		Clock:       clk,
		Random:      rnd,
		Balances:    balances,
		Planner:     plan,
		MatchServer: matchServer,
		Leaderboard: leaderboard.New(balances),
		Training:    training.New(store, logger),
	}
}
