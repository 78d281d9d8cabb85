package random

import (
	"lukechampine.com/frand"
)

// Random is the source of randomness for bag shuffles and game IDs
type Random interface {
	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// FastRandom implements Random using frand's CSPRNG
type FastRandom struct{}

// New creates a new FastRandom
func New() *FastRandom {
	return &FastRandom{}
}

// Shuffle performs a uniform Fisher-Yates shuffle
func (r *FastRandom) Shuffle(n int, swap func(i, j int)) {
	frand.Shuffle(n, swap)
}

// String generates a random string of the given length from the given alphabet
func (r *FastRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[frand.Intn(len(alphabet))]
	}
	return string(result)
}
