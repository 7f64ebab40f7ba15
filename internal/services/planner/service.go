// Package planner generates the random parameters of each round. Both
// clients receive the exact plan produced here, so a round looks identical
// on either screen.
package planner

import (
	"github.com/uygun9544/slipperduel/internal/dependencies/clock"
	"github.com/uygun9544/slipperduel/internal/dependencies/random"
	"github.com/uygun9544/slipperduel/internal/model"
)

const (
	// Position ranges, percent offsets: top in [10,60), left in [10,80)
	topMin   = 10
	topSpan  = 50
	leftMin  = 10
	leftSpan = 70

	// MinSeparation is the required distance between the two targets on
	// at least one axis.
	MinSeparation = 20

	// Reveal delay in [2000,8000) ms from now
	revealDelayMinMs  = 2000
	revealDelaySpanMs = 6000

	// ActionWindowMs is how long a revealed round stays actionable.
	ActionWindowMs = 20000

	// maxPlacementAttempts bounds rejection sampling for the second
	// target before falling back to a deterministic offset.
	maxPlacementAttempts = 64
)

// Service generates round plans.
type Service struct {
	clock  clock.Clock
	random random.Random
}

// New creates a planner.
func New(clk clock.Clock, rnd random.Random) *Service {
	return &Service{clock: clk, random: rnd}
}

// Generate produces the plan for the given round number: two distinct
// colors, two non-overlapping positions, and a reveal timestamp.
func (s *Service) Generate(round int) *model.RoundPlan {
	colors := make([]model.Color, len(model.Palette))
	copy(colors, model.Palette)
	s.random.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	first := s.randomPosition()
	second := s.placeSecond(first)

	revealAt := s.clock.Now().UnixMilli() +
		int64(revealDelayMinMs+s.random.Intn(revealDelaySpanMs))

	return &model.RoundPlan{
		Round:          round,
		Colors:         [2]model.Color{colors[0], colors[1]},
		Positions:      [2]model.Position{first, second},
		RevealAt:       revealAt,
		ActionWindowMs: ActionWindowMs,
	}
}

func (s *Service) randomPosition() model.Position {
	return model.Position{
		Top:  topMin + s.random.Intn(topSpan),
		Left: leftMin + s.random.Intn(leftSpan),
	}
}

// placeSecond resamples until the second target is separated from the
// first by at least MinSeparation on one axis. The fallback offset keeps
// the invariant even if the sampler never cooperates.
func (s *Service) placeSecond(first model.Position) model.Position {
	for i := 0; i < maxPlacementAttempts; i++ {
		candidate := s.randomPosition()
		if separated(first, candidate) {
			return candidate
		}
	}
	return model.Position{
		Top:  topMin + (first.Top-topMin+topSpan/2)%topSpan,
		Left: first.Left,
	}
}

func separated(a, b model.Position) bool {
	return abs(a.Top-b.Top) >= MinSeparation || abs(a.Left-b.Left) >= MinSeparation
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
