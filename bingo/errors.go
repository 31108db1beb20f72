package bingo

import (
	"errors"
	"fmt"
)

// ErrTierMissing is returned when a cell resolves to a tier the catalog does
// not populate. Substituting another tier would change the board for that
// seed, so generation stops instead.
var ErrTierMissing = errors.New("catalog tier missing")

// TierError records which cell needed the missing tier.
type TierError struct {
	Cell int // 1-based cell index
	Tier int
	Mode Mode
}

func (e *TierError) Error() string {
	return fmt.Sprintf("cell %d: no goals for difficulty tier %d in %s mode", e.Cell, e.Tier, e.Mode)
}

func (e *TierError) Unwrap() error {
	return ErrTierMissing
}
