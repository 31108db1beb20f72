package bingo

import (
	"fmt"
	"strings"
)

// Mode scales the difficulty tiers a board draws from.
type Mode int

const (
	Normal Mode = iota
	Short
	Long
	Special
)

var modeNames = map[Mode]string{
	Normal:  "normal",
	Short:   "short",
	Long:    "long",
	Special: "special",
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{Normal, Short, Long, Special}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode converts a case-insensitive mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == key {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("unknown mode %q (want short, normal, long or special)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// TierRange returns the lowest and highest tier Difficulty can produce
// for the mode.
func (m Mode) TierRange() (lo, hi int) {
	return m.scale(0), m.scale(Cells - 1)
}

func (m Mode) scale(value int) int {
	switch m {
	case Short:
		return value / 2
	case Long, Special:
		return (value + Cells) / 2
	default:
		return value
	}
}
