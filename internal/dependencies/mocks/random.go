package mocks

import (
	"github.com/uygun9544/slipperduel/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// TokenResults is a queue of results to return from Token
	TokenResults []string
	tokenIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Token returns the next queued result, or a deterministic fallback token
// if none remaining. Tokens must stay unique: room and session ids derived
// from them are map keys.
func (r *MockRandom) Token(bytes int) string {
	if r.tokenIndex >= len(r.TokenResults) {
		r.tokenIndex++
		return mockToken(r.tokenIndex)
	}
	result := r.TokenResults[r.tokenIndex]
	r.tokenIndex++
	return result
}

// Shuffle consumes one Intn result per swap, matching CryptoRandom's
// Fisher-Yates order so tests can steer the permutation.
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		if j > i {
			j = i
		}
		swap(i, j)
	}
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueToken adds values to the Token result queue
func (r *MockRandom) QueueToken(values ...string) {
	r.TokenResults = append(r.TokenResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.TokenResults = nil
	r.tokenIndex = 0
}

func mockToken(n int) string {
	const digits = "0123456789abcdef"
	buf := [8]byte{'m', 'o', 'c', 'k', '0', '0', '0', '0'}
	for i := 7; i >= 4 && n > 0; i-- {
		buf[i] = digits[n%16]
		n /= 16
	}
	return string(buf[:])
}
