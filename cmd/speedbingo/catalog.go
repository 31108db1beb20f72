package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/catalogs"
	"github.com/lox/speedbingo/internal/catalog"
	"github.com/lox/speedbingo/internal/fileutil"
)

// CatalogCmd groups the catalog maintenance commands.
type CatalogCmd struct {
	Validate CatalogValidateCmd `cmd:"" help:"Validate catalog files"`
	Fmt      CatalogFmtCmd      `cmd:"" help:"Reformat a catalog or convert between JSON and TOML"`
	Lint     CatalogLintCmd     `cmd:"" help:"Report likely mistakes such as misspelled type tags"`
	Schema   CatalogSchemaCmd   `cmd:"" help:"Print the JSON Schema for catalog files"`
	List     CatalogListCmd     `cmd:"" help:"List embedded catalogs"`
}

// CatalogValidateCmd checks catalogs against the schema, limits and modes.
type CatalogValidateCmd struct {
	Files   []string `kong:"arg,name='file',help='Catalog files or embedded catalog names'"`
	Bounded bool     `kong:"help='Apply the fixed-capacity limits (32 tiers, 10 goals per tier, ...)'"`

	out io.Writer
}

func (c *CatalogValidateCmd) Run(g *Globals) error {
	logger := g.Logger()
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	limits := cfg.CatalogLimits()
	if c.Bounded {
		limits = catalog.BoundedLimits()
	}

	out := stdout(c.out)
	failed := 0
	for _, name := range c.Files {
		cat, err := loadCatalog(name, limits)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n", name)
			var ve *catalog.ValidationError
			if errors.As(err, &ve) {
				for _, p := range ve.Problems {
					fmt.Fprintf(out, "  %s\n", p)
				}
			} else {
				fmt.Fprintf(out, "  %v\n", err)
			}
			continue
		}

		goals := 0
		for _, tier := range cat {
			goals += len(tier)
		}
		fmt.Fprintf(out, "ok   %s (%d tiers, %d goals)\n", name, len(cat), goals)
		for _, mode := range bingo.Modes() {
			if err := catalog.CheckCoverage(cat, mode); err != nil {
				fmt.Fprintf(out, "  cannot build %s boards: missing tiers %v\n", mode, cat.MissingTiers(mode))
			}
		}
		logger.Debug().Str("catalog", name).Int("tiers", len(cat)).Int("goals", goals).Msg("Catalog valid")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d catalogs are invalid", failed, len(c.Files))
	}
	return nil
}

// CatalogFmtCmd rewrites a catalog in canonical form.
type CatalogFmtCmd struct {
	File  string `kong:"arg,name='file',help='Catalog file or embedded catalog name'"`
	To    string `kong:"help='Output format, json or toml (default: same as input)'"`
	Write bool   `kong:"short='w',help='Write the result to the output file instead of stdout'"`
	Out   string `kong:"name='output',short='o',help='Output path for --write (default: input file)'"`

	out io.Writer
}

func (c *CatalogFmtCmd) inputFormat() catalog.Format {
	if format, err := catalog.FormatFromPath(c.File); err == nil {
		return format
	}
	return catalog.JSON
}

func (c *CatalogFmtCmd) Run(g *Globals) error {
	logger := g.Logger()
	cat, err := loadCatalog(c.File, catalog.Limits{})
	if err != nil {
		return err
	}

	format := c.inputFormat()
	if c.To != "" {
		format = catalog.Format(c.To)
	}
	data, err := catalog.Marshal(cat, format)
	if err != nil {
		return err
	}

	if !c.Write {
		_, err := stdout(c.out).Write(data)
		return err
	}

	path := c.Out
	if path == "" {
		path = c.File
		if c.To != "" {
			ext := filepath.Ext(path)
			path = path[:len(path)-len(ext)] + "." + c.To
		}
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return err
	}
	logger.Info().Str("path", path).Str("format", string(format)).Msg("Wrote catalog")
	return nil
}

// CatalogLintCmd prints lint findings.
type CatalogLintCmd struct {
	File   string `kong:"arg,name='file',help='Catalog file or embedded catalog name'"`
	Strict bool   `kong:"help='Exit non-zero when there are findings'"`

	out io.Writer
}

func (c *CatalogLintCmd) Run() error {
	cat, err := loadCatalog(c.File, catalog.Limits{})
	if err != nil {
		return err
	}

	findings := catalog.Lint(cat)
	out := stdout(c.out)
	for _, f := range findings {
		fmt.Fprintln(out, f)
	}
	if len(findings) == 0 {
		fmt.Fprintf(out, "%s: no findings\n", c.File)
		return nil
	}
	if c.Strict {
		return fmt.Errorf("%s: %d lint findings", c.File, len(findings))
	}
	return nil
}

// CatalogSchemaCmd prints the embedded JSON Schema.
type CatalogSchemaCmd struct {
	out io.Writer
}

func (c *CatalogSchemaCmd) Run() error {
	_, err := stdout(c.out).Write(catalog.Schema())
	return err
}

// CatalogListCmd lists embedded catalogs.
type CatalogListCmd struct {
	out io.Writer
}

func (c *CatalogListCmd) Run() error {
	out := stdout(c.out)
	for _, name := range catalogs.Names() {
		fmt.Fprintln(out, name)
	}
	return nil
}
