// Package training holds the server-side tuning object for the client's
// training bot. The server never runs the bot; it only keeps every client
// on the same tuning and survives it across restarts.
package training

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/storage"
)

// Service serves and updates the training-bot config.
type Service struct {
	mu      sync.RWMutex
	storage storage.Storage
	logger  *slog.Logger
	current model.TrainingBotConfig
}

// New creates a training config service starting from the default tuning.
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
		current: model.DefaultTrainingBotConfig(),
	}
}

// Load restores a previously saved tuning; a missing row keeps the
// default.
func (s *Service) Load(ctx context.Context) error {
	cfg, err := s.storage.GetTrainingConfig(ctx)
	if err != nil {
		if errors.Is(err, model.ErrTrainingConfigNotFound) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.current = cfg.Normalized()
	s.mu.Unlock()
	return nil
}

// Get returns the current tuning.
func (s *Service) Get() model.TrainingBotConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update normalizes and applies a new tuning, then mirrors it to storage
// in the background.
func (s *Service) Update(cfg model.TrainingBotConfig) model.TrainingBotConfig {
	normalized := cfg.Normalized()

	s.mu.Lock()
	s.current = normalized
	s.mu.Unlock()

	go func() {
		if err := s.storage.SaveTrainingConfig(context.Background(), normalized); err != nil {
			s.logger.Error("training config persist failed",
				slog.String("error", err.Error()))
		}
	}()

	return normalized
}
