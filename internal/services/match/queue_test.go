package match

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/model"
)

type QueueSuite struct {
	suite.Suite
	queue *queue
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

func (s *QueueSuite) SetupTest() {
	s.queue = newQueue()
}

func alwaysAlive(model.SessionID) bool { return true }

func (s *QueueSuite) TestEnqueueIsFIFO() {
	s.queue.Enqueue("a")
	s.queue.Enqueue("b")
	s.queue.Enqueue("c")

	a, b, ok := s.queue.DequeuePair(alwaysAlive)
	s.Require().True(ok)
	s.Equal(model.SessionID("a"), a)
	s.Equal(model.SessionID("b"), b)
	s.Equal(1, s.queue.Len())
}

func (s *QueueSuite) TestDequeueNeedsTwo() {
	s.queue.Enqueue("a")

	_, _, ok := s.queue.DequeuePair(alwaysAlive)
	s.False(ok)
	s.True(s.queue.Contains("a"))
}

func (s *QueueSuite) TestEnqueueIsIdempotent() {
	s.queue.Enqueue("a")
	s.queue.Enqueue("b")
	s.queue.Enqueue("a")

	s.Equal(2, s.queue.Len())

	// Re-joining moved "a" to the tail
	first, second, ok := s.queue.DequeuePair(alwaysAlive)
	s.Require().True(ok)
	s.Equal(model.SessionID("b"), first)
	s.Equal(model.SessionID("a"), second)
}

func (s *QueueSuite) TestRemove() {
	s.queue.Enqueue("a")
	s.queue.Enqueue("b")
	s.queue.Enqueue("c")
	s.queue.Remove("b")

	s.Equal(2, s.queue.Len())
	s.False(s.queue.Contains("b"))

	first, second, ok := s.queue.DequeuePair(alwaysAlive)
	s.Require().True(ok)
	s.Equal(model.SessionID("a"), first)
	s.Equal(model.SessionID("c"), second)
}

func (s *QueueSuite) TestRemoveAbsentIsNoOp() {
	s.queue.Enqueue("a")
	s.queue.Remove("missing")
	s.Equal(1, s.queue.Len())
}

func (s *QueueSuite) TestDequeueSkipsDeadWithoutReinsertion() {
	s.queue.Enqueue("dead")
	s.queue.Enqueue("a")
	s.queue.Enqueue("b")

	first, second, ok := s.queue.DequeuePair(func(id model.SessionID) bool {
		return id != "dead"
	})
	s.Require().True(ok)
	s.Equal(model.SessionID("a"), first)
	s.Equal(model.SessionID("b"), second)
	s.Zero(s.queue.Len())
	s.False(s.queue.Contains("dead"))
}

func (s *QueueSuite) TestLoneSurvivorStaysAtHead() {
	s.queue.Enqueue("dead")
	s.queue.Enqueue("a")

	_, _, ok := s.queue.DequeuePair(func(id model.SessionID) bool {
		return id != "dead"
	})
	s.False(ok)
	s.Equal(1, s.queue.Len())
	s.True(s.queue.Contains("a"))

	// The survivor still pairs first when someone else arrives
	s.queue.Enqueue("b")
	first, second, ok := s.queue.DequeuePair(alwaysAlive)
	s.Require().True(ok)
	s.Equal(model.SessionID("a"), first)
	s.Equal(model.SessionID("b"), second)
}

func (s *QueueSuite) TestPairNeverRepeatsAnID() {
	s.queue.Enqueue("a")
	s.queue.Enqueue("a")
	s.queue.Enqueue("b")

	first, second, ok := s.queue.DequeuePair(alwaysAlive)
	s.Require().True(ok)
	s.NotEqual(first, second)
}
