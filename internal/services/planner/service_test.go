package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/dependencies/mocks"
	"github.com/uygun9544/slipperduel/internal/dependencies/random"
	"github.com/uygun9544/slipperduel/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock  *mocks.MockClock
	random *mocks.MockRandom
	planner *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.planner = New(s.clock, s.random)
}

func (s *ServiceSuite) TestGenerateCarriesRoundNumber() {
	plan := s.planner.Generate(3)
	s.Equal(3, plan.Round)
	s.Equal(ActionWindowMs, plan.ActionWindowMs)
}

func (s *ServiceSuite) TestColorsAreDistinct() {
	plan := s.planner.Generate(1)
	s.NotEqual(plan.Colors[0], plan.Colors[1])
	s.Contains(model.Palette, plan.Colors[0])
	s.Contains(model.Palette, plan.Colors[1])
}

func (s *ServiceSuite) TestRevealDelayLowerBound() {
	// All Intn draws return 0: reveal lands exactly at now + 2000ms
	plan := s.planner.Generate(1)
	s.Equal(s.clock.Now().UnixMilli()+2000, plan.RevealAt)
}

func (s *ServiceSuite) TestPositionsSeparatedUnderStarvedRandomness() {
	// A starved MockRandom returns 0 forever, putting both draws at the
	// range minimum; the fallback must still separate the targets.
	plan := s.planner.Generate(1)

	a, b := plan.Positions[0], plan.Positions[1]
	s.True(abs(a.Top-b.Top) >= MinSeparation || abs(a.Left-b.Left) >= MinSeparation,
		"positions %+v and %+v overlap", a, b)
}

func (s *ServiceSuite) TestPositionsSeparatedWithRealRandomness() {
	planner := New(s.clock, random.New())

	for i := 0; i < 500; i++ {
		plan := planner.Generate(1)
		a, b := plan.Positions[0], plan.Positions[1]

		s.GreaterOrEqual(a.Top, 10)
		s.Less(a.Top, 60)
		s.GreaterOrEqual(a.Left, 10)
		s.Less(a.Left, 80)
		s.True(abs(a.Top-b.Top) >= MinSeparation || abs(a.Left-b.Left) >= MinSeparation,
			"positions %+v and %+v overlap", a, b)
		s.NotEqual(plan.Colors[0], plan.Colors[1])
	}
}

func (s *ServiceSuite) TestRevealDelayWithRealRandomness() {
	planner := New(s.clock, random.New())
	now := s.clock.Now().UnixMilli()

	for i := 0; i < 100; i++ {
		plan := planner.Generate(1)
		s.GreaterOrEqual(plan.RevealAt, now+2000)
		s.Less(plan.RevealAt, now+8000)
	}
}
