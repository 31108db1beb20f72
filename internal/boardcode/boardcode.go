// Package boardcode turns a (seed, mode) pair into a short code players can
// read out or paste, and back.
//
// A code is 8 characters of Crockford base32. The first character is a
// checksum of the other seven, which carry 35 bits: the mode in the top
// three and the seed in the low 32.
package boardcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/speedbingo/bingo"
)

// Crockford's base32 alphabet, lowercase, without i, l, o and u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in a board code.
const Length = 8

const payloadChars = Length - 1

// ErrInvalidCode is wrapped by every decoding failure.
var ErrInvalidCode = errors.New("invalid board code")

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = int8(i)
		if c >= 'a' && c <= 'z' {
			t[c-'a'+'A'] = int8(i)
		}
	}
	// Characters commonly misread for digits.
	for _, alias := range []struct {
		from byte
		to   int8
	}{{'o', 0}, {'O', 0}, {'i', 1}, {'I', 1}, {'l', 1}, {'L', 1}} {
		t[alias.from] = alias.to
	}
	return t
}

func checksum(digits []int) int {
	sum := 0
	for i, d := range digits {
		sum += (i + 1) * d
	}
	return sum % len(alphabet)
}

// Encode returns the code for a seed and mode.
func Encode(seed uint32, mode bingo.Mode) string {
	value := uint64(mode&0x7)<<32 | uint64(seed)

	digits := make([]int, payloadChars)
	for i := payloadChars - 1; i >= 0; i-- {
		digits[i] = int(value & 0x1f)
		value >>= 5
	}

	var sb strings.Builder
	sb.Grow(Length)
	sb.WriteByte(alphabet[checksum(digits)])
	for _, d := range digits {
		sb.WriteByte(alphabet[d])
	}
	return sb.String()
}

// Decode parses a code. Case is ignored, as are hyphens and spaces used to
// group characters.
func Decode(code string) (uint32, bingo.Mode, error) {
	clean := strings.NewReplacer("-", "", " ", "").Replace(code)
	if len(clean) != Length {
		return 0, 0, fmt.Errorf("%w: must be %d characters, got %d", ErrInvalidCode, Length, len(clean))
	}

	digits := make([]int, Length)
	for i := 0; i < Length; i++ {
		d := decodeTable[clean[i]]
		if d < 0 {
			return 0, 0, fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidCode, clean[i], i)
		}
		digits[i] = int(d)
	}

	if checksum(digits[1:]) != digits[0] {
		return 0, 0, fmt.Errorf("%w: checksum mismatch", ErrInvalidCode)
	}

	var value uint64
	for _, d := range digits[1:] {
		value = value<<5 | uint64(d)
	}

	mode := bingo.Mode(value >> 32)
	if !mode.Valid() {
		return 0, 0, fmt.Errorf("%w: unknown mode %d", ErrInvalidCode, int(mode))
	}
	return uint32(value), mode, nil
}

// Validate reports whether code decodes.
func Validate(code string) error {
	_, _, err := Decode(code)
	return err
}

// Format groups a code as "xxxx-xxxx" for display.
func Format(code string) string {
	if len(code) != Length {
		return code
	}
	return code[:4] + "-" + code[4:]
}
