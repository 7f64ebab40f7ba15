package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Profile tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	record := &model.ProfileRecord{
		PlayerID: "player-1",
		Name:     "Alice",
		Balance:  1000,
		Wins:     3,
		Losses:   1,
	}

	err := s.storage.SaveProfile(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(record.PlayerID, retrieved.PlayerID)
	s.Equal(record.Name, retrieved.Name)
	s.Equal(int64(1000), retrieved.Balance)
	s.Equal(3, retrieved.Wins)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestSaveProfileReplacesRow() {
	record := &model.ProfileRecord{PlayerID: "player-1", Name: "Alice", Balance: 1000}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, record))

	record.Balance = 900
	record.Losses = 1
	s.Require().NoError(s.storage.SaveProfile(s.ctx, record))

	retrieved, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(900), retrieved.Balance)
	s.Equal(1, retrieved.Losses)
}

func (s *StorageSuite) TestSaveProfileCopiesRecord() {
	record := &model.ProfileRecord{PlayerID: "player-1", Name: "Alice", Balance: 1000}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, record))

	// Mutating the caller's record must not leak into storage
	record.Balance = 0

	retrieved, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(1000), retrieved.Balance)
}

func (s *StorageSuite) TestListProfiles() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.ProfileRecord{PlayerID: "a", Name: "A"}))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.ProfileRecord{PlayerID: "b", Name: "B"}))

	records, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestListProfilesEmpty() {
	records, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

// Training config tests

func (s *StorageSuite) TestTrainingConfigNotFound() {
	_, err := s.storage.GetTrainingConfig(s.ctx)
	s.ErrorIs(err, model.ErrTrainingConfigNotFound)
}

func (s *StorageSuite) TestSaveAndGetTrainingConfig() {
	cfg := model.TrainingBotConfig{ReactionMinMs: 400, ReactionMaxMs: 1800, MissChance: 0.1}
	s.Require().NoError(s.storage.SaveTrainingConfig(s.ctx, cfg))

	retrieved, err := s.storage.GetTrainingConfig(s.ctx)
	s.Require().NoError(err)
	s.Equal(cfg, retrieved)
}
