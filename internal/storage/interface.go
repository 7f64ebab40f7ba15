package storage

import (
	"context"

	"github.com/uygun9544/slipperduel/internal/model"
)

// Storage defines the interface for data persistence. The running process
// treats memory as authoritative; storage is a best-effort mirror, so every
// save is a complete row replace.
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, record *model.ProfileRecord) error
	GetProfile(ctx context.Context, id model.PlayerID) (*model.ProfileRecord, error)
	ListProfiles(ctx context.Context) ([]*model.ProfileRecord, error)

	// Training config operations
	SaveTrainingConfig(ctx context.Context, cfg model.TrainingBotConfig) error
	GetTrainingConfig(ctx context.Context) (model.TrainingBotConfig, error)
}
