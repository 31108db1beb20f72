package bingo

// Goal is a single catalog entry. The first type is the goal's main type.
type Goal struct {
	Name  string   `json:"name" toml:"name"`
	Types []string `json:"types" toml:"types"`
}

// MainType returns the first type tag, or "" when the goal has none.
func (g Goal) MainType() string {
	if len(g.Types) == 0 {
		return ""
	}
	return g.Types[0]
}

// Catalog maps a difficulty tier (the slice index) to the goals available at
// that tier. Tier 0 is the easiest. A catalog must not be modified while
// boards are being generated from it.
type Catalog [][]Goal

// Tier returns the goals for a tier and whether the tier has any.
func (c Catalog) Tier(tier int) ([]Goal, bool) {
	if tier < 0 || tier >= len(c) || len(c[tier]) == 0 {
		return nil, false
	}
	return c[tier], true
}

// Len returns the total number of goals across all tiers.
func (c Catalog) Len() int {
	n := 0
	for _, tier := range c {
		n += len(tier)
	}
	return n
}

// MissingTiers lists the tiers in the mode's range that have no goals.
func (c Catalog) MissingTiers(mode Mode) []int {
	lo, hi := mode.TierRange()
	var missing []int
	for tier := lo; tier <= hi; tier++ {
		if _, ok := c.Tier(tier); !ok {
			missing = append(missing, tier)
		}
	}
	return missing
}
