package mocks

import (
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
)

// MockRandom is a deterministic Random for tests.
// Shuffle keeps tiles in their original order unless Reverse is set, so
// tests can predict every draw from the bag.
type MockRandom struct {
	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int

	// Reverse makes Shuffle reverse the order
	Reverse bool

	// ShuffleCalls counts calls to Shuffle
	ShuffleCalls int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Shuffle leaves the order unchanged, or reverses it when Reverse is set
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	r.ShuffleCalls++
	if !r.Reverse {
		return
	}
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
