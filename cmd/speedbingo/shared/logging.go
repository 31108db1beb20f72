package shared

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Log formats accepted by NewLogger.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// SetupLogger configures zerolog with pretty console output
func SetupLogger(w io.Writer, debug bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(w io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(w).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// NewLogger picks a logger by format name.
func NewLogger(w io.Writer, format string, debug bool) (zerolog.Logger, error) {
	switch format {
	case "", FormatConsole:
		return SetupLogger(w, debug), nil
	case FormatJSON:
		return SetupStructuredLogger(w, debug), nil
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
}
