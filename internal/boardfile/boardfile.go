// Package boardfile reads and writes boards as TOML records.
//
// A record carries everything needed to check a board later: the seed and
// mode it claims to come from, the share code, and the cells as rows.
package boardfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/internal/boardcode"
)

// Record is one board in TOML form.
type Record struct {
	Seed        uint32     `toml:"seed"`
	Mode        bingo.Mode `toml:"mode"`
	Code        string     `toml:"code,omitempty"`
	Catalog     string     `toml:"catalog,omitempty"`
	GeneratedAt string     `toml:"generated_at,omitempty"`
	Rows        [][]string `toml:"rows"`
}

// NewRecord builds a record for a generated board.
func NewRecord(seed uint32, mode bingo.Mode, board bingo.Board, catalog string) Record {
	return Record{
		Seed:    seed,
		Mode:    mode,
		Code:    boardcode.Encode(seed, mode),
		Catalog: catalog,
		Rows:    board.Rows(),
	}
}

// Board converts the record's rows back into a Board.
func (r Record) Board() (bingo.Board, error) {
	b, ok := bingo.BoardFromRows(r.Rows)
	if !ok {
		return bingo.Board{}, fmt.Errorf("boardfile: board for seed %d is not %dx%d", r.Seed, bingo.Size, bingo.Size)
	}
	return b, nil
}

// Check confirms that the code, when present, matches seed and mode.
func (r Record) Check() error {
	if r.Code == "" {
		return nil
	}
	seed, mode, err := boardcode.Decode(r.Code)
	if err != nil {
		return err
	}
	if seed != r.Seed || mode != r.Mode {
		return fmt.Errorf("boardfile: code %s is for seed %d (%s), record says %d (%s)", r.Code, seed, mode, r.Seed, r.Mode)
	}
	return nil
}

type stream struct {
	Boards []Record `toml:"board"`
}

// Encode writes a single record.
func Encode(w io.Writer, r *Record) error {
	if r == nil {
		return fmt.Errorf("boardfile: record is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// EncodeAll writes records as an array of [[board]] tables.
func EncodeAll(w io.Writer, records []Record) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(stream{Boards: records})
}

// EncodeToBytes encodes a single record and returns the bytes.
func EncodeToBytes(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads either a single record or a [[board]] stream. A stream yields
// every record; a single record yields a slice of one.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var s stream
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("boardfile: %w", err)
	}
	if md.IsDefined("board") {
		return s.Boards, nil
	}

	var single Record
	if _, err := toml.Decode(string(data), &single); err != nil {
		return nil, fmt.Errorf("boardfile: %w", err)
	}
	return []Record{single}, nil
}
