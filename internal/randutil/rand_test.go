package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, Seed(a), Seed(b))
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	t.Parallel()

	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if Seed(a) == Seed(b) {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestMixSpreadsAdjacentInputs(t *testing.T) {
	t.Parallel()

	seen := map[uint64]bool{}
	for i := uint64(0); i < 1000; i++ {
		seen[mix(i)] = true
	}
	assert.Len(t, seen, 1000)
	assert.NotEqual(t, uint64(0), mix(goldenRatio64))
}
