// Package catalog loads, validates and writes goal catalogs.
//
// Catalogs are stored either as JSON (an array of tiers, each an array of
// {"name", "types"} objects) or as TOML ([[tier]] tables holding
// [[tier.goal]] entries). Everything that could make generation fail later
// is checked here, before any board is built.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lox/speedbingo/bingo"
)

// Format identifies a catalog encoding.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("cannot tell catalog format of %q (want .json or .toml)", path)
	}
}

type document struct {
	Tiers []tier `toml:"tier"`
}

type tier struct {
	Goals []bingo.Goal `toml:"goal"`
}

// Load reads and validates a catalog file.
func Load(path string, limits Limits) (bingo.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, format, limits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte, format Format, limits Limits) (bingo.Catalog, error) {
	var c bingo.Catalog
	switch format {
	case JSON:
		if err := validateSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, malformed("", err.Error())
		}
	case TOML:
		var doc document
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, malformed("", err.Error())
		}
		c = make(bingo.Catalog, len(doc.Tiers))
		for i, t := range doc.Tiers {
			c[i] = t.Goals
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	c = normalize(c)
	if err := Validate(c, limits); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal encodes a catalog in the given format with indentation.
func Marshal(c bingo.Catalog, format Format) ([]byte, error) {
	c = normalize(c)
	switch format {
	case JSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case TOML:
		doc := document{Tiers: make([]tier, len(c))}
		for i, goals := range c {
			doc.Tiers[i] = tier{Goals: goals}
		}
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.Indent = "\t"
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}

// normalize replaces nil slices with empty ones so that both formats decode
// to identical values and JSON never encodes null.
func normalize(c bingo.Catalog) bingo.Catalog {
	out := make(bingo.Catalog, len(c))
	for i, goals := range c {
		out[i] = make([]bingo.Goal, len(goals))
		for j, g := range goals {
			types := g.Types
			if types == nil {
				types = []string{}
			}
			out[i][j] = bingo.Goal{Name: g.Name, Types: types}
		}
	}
	return out
}
