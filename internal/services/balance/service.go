// Package balance owns the in-memory ledger of per-identity balances and
// win/loss counters. Memory is authoritative for the running process;
// every mutation is mirrored to storage asynchronously and failures are
// logged, never surfaced to the protocol exchange that caused them.
package balance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/storage"
)

const (
	// SeedBalance is granted to every identity on first sight.
	SeedBalance int64 = 1000
	// MatchReward is the symmetric zero-sum transfer applied at match
	// settlement.
	MatchReward int64 = 100
)

// persistTimeout bounds each background storage write.
const persistTimeout = 5 * time.Second

// Service is the balance ledger.
type Service struct {
	mu      sync.RWMutex
	storage storage.Storage
	logger  *slog.Logger
	records map[model.PlayerID]*model.ProfileRecord
}

// New creates a balance service backed by the given storage.
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
		records: make(map[model.PlayerID]*model.ProfileRecord),
	}
}

// Load warms the ledger from storage. Called once at startup, before the
// server accepts connections.
func (s *Service) Load(ctx context.Context) error {
	records, err := s.storage.ListProfiles(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range records {
		copied := *record
		s.records[record.PlayerID] = &copied
	}
	return nil
}

// GetOrCreate returns the record for the profile's identity, seeding a new
// one on first sight. Display metadata is refreshed from the profile on
// every call.
func (s *Service) GetOrCreate(profile model.PlayerProfile) model.ProfileRecord {
	s.mu.Lock()
	record, ok := s.records[profile.PlayerID]
	if !ok {
		record = &model.ProfileRecord{
			PlayerID: profile.PlayerID,
			Balance:  SeedBalance,
		}
		s.records[profile.PlayerID] = record
	}
	record.Name = profile.Name
	record.AvatarURL = profile.AvatarURL
	snapshot := *record
	s.mu.Unlock()

	s.persistAsync(snapshot)
	return snapshot
}

// Get returns a copy of the record for the given identity.
func (s *Service) Get(id model.PlayerID) (model.ProfileRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return model.ProfileRecord{}, false
	}
	return *record, true
}

// Transfer applies the symmetric settlement: the winner gains amount, the
// loser loses it, and the win/loss counters advance. Identities unseen so
// far are seeded first so the transfer always lands somewhere.
func (s *Service) Transfer(winner, loser model.PlayerID, amount int64) (model.ProfileRecord, model.ProfileRecord) {
	s.mu.Lock()
	winRec := s.ensureLocked(winner)
	loseRec := s.ensureLocked(loser)

	winRec.Balance += amount
	winRec.Wins++
	loseRec.Balance -= amount
	loseRec.Losses++

	winSnap, loseSnap := *winRec, *loseRec
	s.mu.Unlock()

	s.persistAsync(winSnap)
	s.persistAsync(loseSnap)
	return winSnap, loseSnap
}

// Snapshot returns copies of every tracked record.
func (s *Service) Snapshot() []model.ProfileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]model.ProfileRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, *record)
	}
	return records
}

// TrackedCount returns the number of identities the ledger knows about.
func (s *Service) TrackedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Service) ensureLocked(id model.PlayerID) *model.ProfileRecord {
	record, ok := s.records[id]
	if !ok {
		record = &model.ProfileRecord{
			PlayerID: id,
			Balance:  SeedBalance,
		}
		s.records[id] = record
	}
	return record
}

// persistAsync mirrors a record to storage without blocking the caller.
func (s *Service) persistAsync(record model.ProfileRecord) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.storage.SaveProfile(ctx, &record); err != nil {
			s.logger.Error("profile persist failed",
				slog.String("player_id", string(record.PlayerID)),
				slog.String("error", err.Error()))
		}
	}()
}
