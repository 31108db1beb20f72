package seedrandom

import (
	"math"
	"strconv"
)

const (
	width  = 256
	chunks = 6
)

var (
	startDenom   = math.Pow(width, chunks)
	significance = math.Pow(2, 52)
	overflow     = 2 * significance
)

// Source produces floats in [0, 1) from a bingo seed.
//
// A Source owns its keystream; it must not be shared between goroutines or
// reused for another seed.
type Source struct {
	arc4 *Arc4
}

// New keys a Source with the bytes of the seed's decimal representation.
func New(seed uint32) *Source {
	return NewFromKey([]byte(strconv.FormatUint(uint64(seed), 10)))
}

// NewFromKey keys a Source with arbitrary bytes.
func NewFromKey(key []byte) *Source {
	k := make([]int, len(key))
	for i, b := range key {
		k[i] = int(b)
	}
	return &Source{arc4: NewArc4(k, width)}
}

// Next returns the next float in [0, 1) with a fully populated mantissa.
func (s *Source) Next() float64 {
	n := s.arc4.Generate(chunks)
	d := startDenom
	x := 0.0

	// Extend until the numerator covers the 52-bit mantissa.
	for n < significance {
		n = (n + x) * width
		d *= width
		x = s.arc4.Generate(1)
	}

	// Trim back so that n + x never rounds up to d.
	for n >= overflow {
		n /= 2
		d /= 2
		x = float64(uint64(x) >> 1)
	}

	return (n + x) / d
}

// Intn returns floor(n * Next()), the index form the board generator uses.
func (s *Source) Intn(n int) int {
	return int(float64(n) * s.Next())
}
