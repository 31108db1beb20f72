package bingo

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	t.Parallel()

	ls := Lines()
	assert.Len(t, ls, 12)
	assert.Equal(t, Line{0, 1, 2, 3, 4}, ls[0])
	assert.Equal(t, Line{0, 5, 10, 15, 20}, ls[5])
	assert.Equal(t, Line{0, 6, 12, 18, 24}, ls[10])
	assert.Equal(t, Line{4, 8, 12, 16, 20}, ls[11])
}

func TestNeighbours(t *testing.T) {
	t.Parallel()

	t.Run("sizes", func(t *testing.T) {
		for cell := 0; cell < Cells; cell++ {
			want := 8
			switch cell {
			case 12:
				want = 16
			case 0, 4, 6, 8, 16, 18, 20, 24:
				want = 12
			}
			assert.Len(t, Neighbours(cell), want, "cell %d", cell)
		}
	})

	t.Run("symmetric and irreflexive", func(t *testing.T) {
		for cell := 0; cell < Cells; cell++ {
			for _, n := range Neighbours(cell) {
				assert.NotEqual(t, cell, n)
				assert.Contains(t, Neighbours(n), cell)
			}
		}
	})

	t.Run("corner", func(t *testing.T) {
		got := Neighbours(0)
		sort.Ints(got)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 10, 12, 15, 18, 20, 24}, got)
	})

	t.Run("copies", func(t *testing.T) {
		n := Neighbours(3)
		n[0] = 99
		assert.NotContains(t, Neighbours(3), 99)
	})
}
