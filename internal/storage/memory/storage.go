package memory

import (
	"context"
	"sync"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	profiles       map[model.PlayerID]*model.ProfileRecord
	trainingConfig *model.TrainingBotConfig
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles: make(map[model.PlayerID]*model.ProfileRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, record *model.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *record
	s.profiles[record.PlayerID] = &copied
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.ProfileRecord, 0, len(s.profiles))
	for _, record := range s.profiles {
		copied := *record
		records = append(records, &copied)
	}
	return records, nil
}

// Training config operations

func (s *Storage) SaveTrainingConfig(ctx context.Context, cfg model.TrainingBotConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trainingConfig = &cfg
	return nil
}

func (s *Storage) GetTrainingConfig(ctx context.Context) (model.TrainingBotConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.trainingConfig == nil {
		return model.TrainingBotConfig{}, model.ErrTrainingConfigNotFound
	}
	return *s.trainingConfig, nil
}
