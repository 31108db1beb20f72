// Package seedrandom reproduces the ARC4-based seeded generator that bingo
// boards are shared by. Every float drawn for a given seed must match the
// reference stream exactly, so the arithmetic here deliberately mirrors it:
// outputs are accumulated in float64 and the state is never reused.
package seedrandom

// Arc4 is an ARC4 keystream generator over an alphabet of width symbols.
type Arc4 struct {
	i, j  int
	width int
	s     []int
}

// NewArc4 schedules a key into a fresh permutation of [0, width) and discards
// the first width outputs. Key elements should lie in [0, width); an empty key
// is treated as [0]. width must be a power of two.
func NewArc4(key []int, width int) *Arc4 {
	if len(key) == 0 {
		key = []int{0}
	}

	s := make([]int, width)
	for i := range s {
		s[i] = i
	}

	mask := width - 1
	j := 0
	for i := 0; i < width; i++ {
		t := s[i]
		j = (j + t + key[i%len(key)]) & mask
		s[i], s[j] = s[j], t
	}

	a := &Arc4{width: width, s: s}

	// Drop the initial keystream; the reference stream starts after it.
	a.Generate(width)

	return a
}

// Generate advances the generator count steps and returns the outputs
// concatenated as a base-width number, most significant output first.
func (a *Arc4) Generate(count int) float64 {
	mask := a.width - 1
	w := float64(a.width)
	i, j := a.i, a.j

	var r float64
	for n := 0; n < count; n++ {
		i = (i + 1) & mask
		t := a.s[i]
		j = (j + t) & mask
		u := a.s[j]
		a.s[i], a.s[j] = u, t
		r = r*w + float64(a.s[(t+u)&mask])
	}

	a.i, a.j = i, j
	return r
}

// State returns a copy of the permutation and the two cursors.
func (a *Arc4) State() (s []int, i, j int) {
	s = make([]int, len(a.s))
	copy(s, a.s)
	return s, a.i, a.j
}
