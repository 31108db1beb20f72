// Package bingo generates speedrun bingo boards from a seed.
//
// A board is a 5x5 grid of goals drawn from a Catalog of difficulty tiers.
// Generation is a pure function of (seed, mode, catalog): boards are shared
// by seed alone, so every implementation must produce identical output.
//
// # Basic Usage
//
//	board, err := bingo.Generate(587062, bingo.Normal, catalog)
//	if err != nil {
//	    var tierErr *bingo.TierError
//	    if errors.As(err, &tierErr) {
//	        // the catalog has no goals for tierErr.Tier
//	    }
//	}
//	fmt.Println(board.Cell(2, 2))
//
// # Pipeline
//
// Each cell, in row-major order, goes through three steps:
//   - Difficulty maps (seed, cell, mode) to a tier through a magic square
//     built from the seed's decimal digits, so every line gets a balanced
//     spread of tiers.
//   - A seeded ARC4 stream picks a starting offset into that tier's goals.
//   - The pool is scanned from the offset for the goal with the least
//     synergy (shared type tags) with goals already placed on its lines.
package bingo
