package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, record *model.ProfileRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Pipeline the row replace and the index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, profileKey(record.PlayerID), data, 0)
	pipe.SAdd(ctx, profileIndexKey(), string(record.PlayerID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.ProfileRecord, error) {
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var record model.ProfileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.ProfileRecord, error) {
	ids, err := s.client.SMembers(ctx, profileIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.ProfileRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.GetProfile(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrProfileNotFound) {
				// Index entry without a row; skip it
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Training config operations

func (s *Storage) SaveTrainingConfig(ctx context.Context, cfg model.TrainingBotConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, trainingConfigKey(), data, 0).Err()
}

func (s *Storage) GetTrainingConfig(ctx context.Context) (model.TrainingBotConfig, error) {
	data, err := s.client.Get(ctx, trainingConfigKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.TrainingBotConfig{}, model.ErrTrainingConfigNotFound
		}
		return model.TrainingBotConfig{}, err
	}

	var cfg model.TrainingBotConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.TrainingBotConfig{}, err
	}
	return cfg, nil
}
