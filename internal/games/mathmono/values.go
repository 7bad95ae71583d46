package mathmono

import "golang.org/x/exp/rand"

// ValueSource produces uniform random integers in [0, n).
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type ValueSource interface {
	Intn(n int) int
}

// NewValueSource returns a PCG-backed source seeded for reproducible boards.
func NewValueSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(uint64(seed)))
}

// valueIn returns a uniform value in [lo, hi].
func valueIn(src ValueSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
