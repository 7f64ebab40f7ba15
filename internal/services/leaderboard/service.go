// Package leaderboard ranks tracked identities by balance for the HTTP
// side-channel.
package leaderboard

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/services/balance"
)

const (
	// DefaultLimit applies when the caller does not ask for a size.
	DefaultLimit = 20
	// MaxLimit caps how many rows one request can pull.
	MaxLimit = 100
)

// Service builds leaderboard snapshots from the balance ledger.
type Service struct {
	balances *balance.Service
	collator *collate.Collator
}

// New creates a leaderboard service. Names are ordered with locale-aware
// collation so non-ASCII display names sort the way players expect.
func New(balances *balance.Service) *Service {
	return &Service{
		balances: balances,
		collator: collate.New(language.Und),
	}
}

// Top returns up to limit rows ordered by balance desc, wins desc, losses
// asc, then name. The limit is clamped to [1, MaxLimit]; zero or negative
// values fall back to DefaultLimit.
func (s *Service) Top(limit int) []model.LeaderboardRow {
	if limit == 0 {
		limit = DefaultLimit
	}
	limit = clampLimit(limit)

	records := s.balances.Snapshot()
	sort.Slice(records, func(i, j int) bool {
		return s.less(&records[i], &records[j])
	})

	if len(records) > limit {
		records = records[:limit]
	}

	rows := make([]model.LeaderboardRow, 0, len(records))
	for i := range records {
		record := &records[i]
		rows = append(rows, model.LeaderboardRow{
			PlayerID:  record.PlayerID,
			Name:      record.Name,
			AvatarURL: record.AvatarURL,
			Balance:   record.Balance,
			Wins:      record.Wins,
			Losses:    record.Losses,
			Matches:   record.Matches(),
			WinRate:   record.WinRate(),
		})
	}
	return rows
}

// less is the total ranking order over profile records.
func (s *Service) less(a, b *model.ProfileRecord) bool {
	if a.Balance != b.Balance {
		return a.Balance > b.Balance
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.Losses != b.Losses {
		return a.Losses < b.Losses
	}
	return s.collator.CompareString(a.Name, b.Name) < 0
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
