package bingo

import "fmt"

// permutation orders 0..4 by inserting 1, 2, 3 and 4 at positions taken from
// g mod 2, 3, 4 and 5. The remainders are independent, so each of the 120
// orderings is equally likely across consecutive g.
func permutation(g uint32) [Size]int {
	rem8 := g % 8
	positions := [4]uint32{rem8 % 2, g % 3, rem8 / 2, g % 5}

	var table [Size]int
	n := 1
	for v, pos := range positions {
		copy(table[pos+1:n+1], table[pos:n])
		table[pos] = v + 1
		n++
	}
	return table
}

// RawDifficulty returns the magic-square value in [0, 24] for a 1-based cell
// index, before mode scaling. Every row, column and main diagonal of the
// resulting grid sums to 60.
func RawDifficulty(seed uint32, cell int) int {
	if cell < 1 || cell > Cells {
		panic(fmt.Sprintf("bingo: cell index %d out of range [1, %d]", cell, Cells))
	}

	lowDigits := seed % 1000
	highDigits := seed / 1000 % 1000

	tens := permutation(lowDigits)
	ones := permutation(highDigits)

	// Shifting x moves an arbitrary diagonal of the square onto the main one.
	shift := int(((lowDigits/120)*8 + highDigits/120) % Size)

	i := cell - 1
	x := (i + shift) % Size
	y := i / Size

	return Size*tens[(x+3*y)%Size] + ones[(3*x+y)%Size]
}

// Difficulty returns the catalog tier for a 1-based cell index.
func Difficulty(seed uint32, cell int, mode Mode) int {
	return mode.scale(RawDifficulty(seed, cell))
}
