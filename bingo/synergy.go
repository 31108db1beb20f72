package bingo

// PlacedCell is a resolved board position.
type PlacedCell struct {
	Goal    *Goal
	Synergy int
	Tier    int
}

// Synergy scores how much a candidate's types repeat those of goals already
// placed on its lines. cell is 0-based; placed holds the cells resolved so
// far in row-major order. Each equal pair of types scores 1, plus 1 for each
// side on which the matching type is the main type.
func Synergy(candidate *Goal, cell int, placed []PlacedCell) int {
	score := 0
	for _, n := range neighbours[cell] {
		if n >= len(placed) || placed[n].Goal == nil {
			continue
		}
		other := placed[n].Goal.Types
		for k, a := range candidate.Types {
			for l, b := range other {
				if a != b {
					continue
				}
				score++
				if k == 0 {
					score++
				}
				if l == 0 {
					score++
				}
			}
		}
	}
	return score
}

// selectGoal scans pool from offset, wrapping around, and keeps the first
// goal with the lowest synergy. The scan stops at the first goal scoring 0.
// It returns the winner and how many goals were examined.
func selectGoal(pool []Goal, offset, cell int, placed []PlacedCell) (PlacedCell, int) {
	var best PlacedCell
	scanned := 0
	for scanned < len(pool) {
		candidate := &pool[(scanned+offset)%len(pool)]
		score := Synergy(candidate, cell, placed)
		if best.Goal == nil || score < best.Synergy {
			best = PlacedCell{Goal: candidate, Synergy: score}
		}
		scanned++
		if score == 0 {
			break
		}
	}
	return best, scanned
}
