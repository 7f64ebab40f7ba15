package match

import (
	"github.com/uygun9544/slipperduel/internal/model"
)

// queue is the FIFO matchmaking waiting list. Removal by id is O(1):
// entries are invalidated through the sequence map and skipped lazily when
// they surface at the head.
type queue struct {
	entries []queueEntry
	seqs    map[model.SessionID]uint64
	nextSeq uint64
}

type queueEntry struct {
	id  model.SessionID
	seq uint64
}

func newQueue() *queue {
	return &queue{seqs: make(map[model.SessionID]uint64)}
}

// Enqueue appends the session at the tail. A prior occurrence of the same
// id is invalidated first, so re-joining moves the session to the back
// instead of duplicating it.
func (q *queue) Enqueue(id model.SessionID) {
	q.nextSeq++
	q.seqs[id] = q.nextSeq
	q.entries = append(q.entries, queueEntry{id: id, seq: q.nextSeq})
}

// Remove drops the session from the waiting list, no-op when absent.
func (q *queue) Remove(id model.SessionID) {
	delete(q.seqs, id)
}

// Contains reports whether the session is currently waiting.
func (q *queue) Contains(id model.SessionID) bool {
	_, ok := q.seqs[id]
	return ok
}

// Len returns the number of live entries.
func (q *queue) Len() int {
	return len(q.seqs)
}

// DequeuePair pops the two oldest waiting sessions. Popped ids that fail
// the alive check are discarded without re-insertion; if only one valid
// session can be found it is restored to the head and no pair is returned.
func (q *queue) DequeuePair(alive func(model.SessionID) bool) (model.SessionID, model.SessionID, bool) {
	if q.Len() < 2 {
		return "", "", false
	}

	var picked []queueEntry
	for len(picked) < 2 && len(q.entries) > 0 {
		head := q.entries[0]
		q.entries = q.entries[1:]
		if q.seqs[head.id] != head.seq {
			// Superseded by a re-join or removed
			continue
		}
		delete(q.seqs, head.id)
		if !alive(head.id) {
			continue
		}
		picked = append(picked, head)
	}

	if len(picked) == 2 {
		return picked[0].id, picked[1].id, true
	}
	if len(picked) == 1 {
		// Restore the lone survivor at the front; it stays the oldest.
		q.entries = append([]queueEntry{picked[0]}, q.entries...)
		q.seqs[picked[0].id] = picked[0].seq
	}
	return "", "", false
}
