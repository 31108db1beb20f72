package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func placedAt(cell int, types ...string) []PlacedCell {
	placed := make([]PlacedCell, cell+1)
	placed[cell] = PlacedCell{Goal: &Goal{Name: "placed", Types: types}}
	return placed
}

func TestSynergy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		placed    []PlacedCell
		cell      int
		want      int
	}{
		{"nothing placed", []string{"A"}, nil, 1, 0},
		{"both main types", []string{"A", "B"}, placedAt(0, "A"), 1, 3},
		{"candidate main only", []string{"A"}, placedAt(0, "C", "A"), 1, 2},
		{"neighbour main only", []string{"B", "A"}, placedAt(0, "A", "C"), 1, 2},
		{"secondary types", []string{"B", "A"}, placedAt(0, "C", "A"), 1, 1},
		{"several matches", []string{"A", "B"}, placedAt(0, "B", "A"), 1, 4},
		{"not on a shared line", []string{"A"}, placedAt(0, "A"), 7, 0},
		{"diagonal neighbour", []string{"A"}, placedAt(0, "A"), 6, 3},
		{"no types", nil, placedAt(0, "A"), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synergy(&Goal{Types: tt.candidate}, tt.cell, tt.placed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynergySumsNeighbours(t *testing.T) {
	t.Parallel()

	placed := []PlacedCell{
		{Goal: &Goal{Types: []string{"A"}}},
		{Goal: &Goal{Types: []string{"B", "A"}}},
		{Goal: &Goal{Types: []string{"A"}}},
	}
	// Cell 3 shares row 0 with all three.
	got := Synergy(&Goal{Types: []string{"A"}}, 3, placed)
	assert.Equal(t, 3+2+3, got)
}

func TestSelectGoal(t *testing.T) {
	t.Parallel()

	placed := placedAt(0, "X")
	pool := []Goal{
		{Name: "g0", Types: []string{"X"}},      // 3
		{Name: "g1", Types: []string{"Y", "X"}}, // 2
		{Name: "g2", Types: []string{"X"}},      // 3
		{Name: "g3", Types: []string{"Z"}},      // 0
	}

	tests := []struct {
		name        string
		offset      int
		wantName    string
		wantSynergy int
		wantScanned int
	}{
		{"full scan ending on zero", 0, "g3", 0, 4},
		{"zero first stops immediately", 3, "g3", 0, 1},
		{"stops at zero mid scan", 1, "g3", 0, 3},
		{"wraps around", 2, "g3", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scanned := selectGoal(pool, tt.offset, 1, placed)
			assert.Equal(t, tt.wantName, got.Goal.Name)
			assert.Equal(t, tt.wantSynergy, got.Synergy)
			assert.Equal(t, tt.wantScanned, scanned)
		})
	}
}

func TestSelectGoalKeepsFirstOfEqualScores(t *testing.T) {
	t.Parallel()

	placed := placedAt(0, "X")
	pool := []Goal{
		{Name: "a", Types: []string{"X"}},
		{Name: "b", Types: []string{"X"}},
		{Name: "c", Types: []string{"Y", "X"}},
		{Name: "d", Types: []string{"Y", "X"}},
	}

	got, scanned := selectGoal(pool, 3, 1, placed)
	assert.Equal(t, "d", got.Goal.Name, "d is seen before c when starting at offset 3")
	assert.Equal(t, 2, got.Synergy)
	assert.Equal(t, len(pool), scanned)

	got, _ = selectGoal(pool, 0, 1, placed)
	assert.Equal(t, "c", got.Goal.Name)
}

func TestSelectGoalReferencesPool(t *testing.T) {
	t.Parallel()

	pool := []Goal{{Name: "only", Types: []string{"A"}}}
	got, scanned := selectGoal(pool, 0, 0, nil)
	assert.Same(t, &pool[0], got.Goal)
	assert.Equal(t, 1, scanned)
}
