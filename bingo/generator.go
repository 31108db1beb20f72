package bingo

import "github.com/lox/speedbingo/internal/seedrandom"

// Generate builds the board for a seed and mode. It returns a *TierError
// wrapping ErrTierMissing when a cell needs a tier the catalog lacks.
func Generate(seed uint32, mode Mode, catalog Catalog) (Board, error) {
	board, _, err := GenerateCells(seed, mode, catalog)
	return board, err
}

// GenerateCells is Generate that also returns the 25 placed cells, with the
// tier and synergy that won each one.
func GenerateCells(seed uint32, mode Mode, catalog Catalog) (Board, []PlacedCell, error) {
	random := seedrandom.New(seed)
	placed := make([]PlacedCell, 0, Cells)

	for cell := 1; cell <= Cells; cell++ {
		tier := Difficulty(seed, cell, mode)
		pool, ok := catalog.Tier(tier)
		if !ok {
			return Board{}, nil, &TierError{Cell: cell, Tier: tier, Mode: mode}
		}

		offset := random.Intn(len(pool))
		winner, _ := selectGoal(pool, offset, cell-1, placed)
		winner.Tier = tier
		placed = append(placed, winner)
	}

	var board Board
	for i, pc := range placed {
		board.Cells[i/Size][i%Size] = pc.Goal.Name
	}
	return board, placed, nil
}
