package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/internal/boardfile"
)

// VerifyCmd regenerates saved boards and compares them cell by cell.
type VerifyCmd struct {
	File    string  `kong:"arg,name='file',help='Board file written by generate --format toml or batch --toml; - reads stdin'"`
	Seed    *uint32 `kong:"help='Override the seed recorded in the file'"`
	Mode    string  `kong:"help='Override the mode recorded in the file'"`
	Catalog string  `kong:"help='Embedded catalog name or catalog file (default: recorded catalog, then config)'"`

	in  io.Reader
	out io.Writer
}

func (c *VerifyCmd) open() (io.ReadCloser, error) {
	if c.in != nil {
		return io.NopCloser(c.in), nil
	}
	if c.File == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(filepath.Clean(c.File))
}

// mismatch describes the first differing cell between two boards.
func mismatch(want, got bingo.Board) string {
	i := want.FirstDifference(got)
	if i < 0 {
		return ""
	}
	return fmt.Sprintf("cell %d (row %d, col %d): file has %q, seed gives %q",
		i+1, i/bingo.Size+1, i%bingo.Size+1, got.At(i), want.At(i))
}

func (c *VerifyCmd) Run(g *Globals) error {
	logger := g.Logger()
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}

	f, err := c.open()
	if err != nil {
		return err
	}
	records, err := boardfile.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no boards found in %s", c.File)
	}

	var override *bingo.Mode
	if c.Mode != "" {
		m, err := bingo.ParseMode(c.Mode)
		if err != nil {
			return err
		}
		override = &m
	}

	catalogs := map[string]bingo.Catalog{}
	out := stdout(c.out)
	failed := 0
	for _, rec := range records {
		if c.Seed != nil {
			rec.Seed = *c.Seed
			rec.Code = ""
		}
		if override != nil {
			rec.Mode = *override
			rec.Code = ""
		}
		if err := rec.Check(); err != nil {
			return err
		}

		name := c.Catalog
		if name == "" {
			name = rec.Catalog
		}
		if name == "" {
			name = cfg.Generator.Catalog
		}
		cat, ok := catalogs[name]
		if !ok {
			cat, err = loadCatalog(name, cfg.CatalogLimits())
			if err != nil {
				return err
			}
			catalogs[name] = cat
		}

		saved, err := rec.Board()
		if err != nil {
			return err
		}
		want, err := bingo.Generate(rec.Seed, rec.Mode, cat)
		if err != nil {
			return err
		}

		if diff := mismatch(want, saved); diff != "" {
			failed++
			fmt.Fprintf(out, "FAIL seed %d %s: %s\n", rec.Seed, rec.Mode, diff)
			logger.Debug().Uint32("seed", rec.Seed).Str("diff", diff).Msg("Board mismatch")
			continue
		}
		fmt.Fprintf(out, "ok   seed %d %s\n", rec.Seed, rec.Mode)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d boards do not match their seeds", failed, len(records))
	}
	logger.Info().Int("boards", len(records)).Msg("All boards verified")
	return nil
}
