// Package config loads speedbingo settings from an HCL file, a .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/catalogs"
	"github.com/lox/speedbingo/internal/catalog"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "speedbingo.hcl"

// Environment variables that override file settings.
const (
	EnvCatalog = "SPEEDBINGO_CATALOG"
	EnvMode    = "SPEEDBINGO_MODE"
	EnvWorkers = "SPEEDBINGO_WORKERS"
)

// Render styles.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleColor = "color"
)

// Config is the complete configuration.
type Config struct {
	Generator GeneratorSettings
	Render    RenderSettings
	Batch     BatchSettings
	Limits    LimitSettings
}

// GeneratorSettings picks what boards are built from.
type GeneratorSettings struct {
	Mode    string `hcl:"mode,optional"`
	Catalog string `hcl:"catalog,optional"` // embedded catalog name or file path
}

// RenderSettings controls terminal output.
type RenderSettings struct {
	CellWidth int    `hcl:"cell_width,optional"`
	Padding   int    `hcl:"padding,optional"`
	Style     string `hcl:"style,optional"`
}

// BatchSettings controls parallel generation.
type BatchSettings struct {
	Workers int `hcl:"workers,optional"`
}

// LimitSettings bounds accepted catalogs. Zero means unlimited.
type LimitSettings struct {
	MaxTiers        int `hcl:"max_tiers,optional"`
	MaxGoalsPerTier int `hcl:"max_goals_per_tier,optional"`
	MaxNameBytes    int `hcl:"max_name_bytes,optional"`
	MaxTypes        int `hcl:"max_types,optional"`
	MaxTypeBytes    int `hcl:"max_type_bytes,optional"`
}

// file mirrors Config with optional blocks.
type file struct {
	Generator *GeneratorSettings `hcl:"generator,block"`
	Render    *RenderSettings    `hcl:"render,block"`
	Batch     *BatchSettings     `hcl:"batch,block"`
	Limits    *LimitSettings     `hcl:"limits,block"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generator: GeneratorSettings{
			Mode:    bingo.Normal.String(),
			Catalog: catalogs.DefaultName,
		},
		Render: RenderSettings{
			CellWidth: 18,
			Padding:   1,
			Style:     StyleAuto,
		},
		Batch: BatchSettings{
			Workers: runtime.NumCPU(),
		},
	}
}

// Load reads an HCL configuration file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. Settings the source leaves out keep their
// defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if g := raw.Generator; g != nil {
		if g.Mode != "" {
			cfg.Generator.Mode = g.Mode
		}
		if g.Catalog != "" {
			cfg.Generator.Catalog = g.Catalog
		}
	}
	if r := raw.Render; r != nil {
		if r.CellWidth != 0 {
			cfg.Render.CellWidth = r.CellWidth
		}
		if r.Padding != 0 {
			cfg.Render.Padding = r.Padding
		}
		if r.Style != "" {
			cfg.Render.Style = r.Style
		}
	}
	if b := raw.Batch; b != nil && b.Workers != 0 {
		cfg.Batch.Workers = b.Workers
	}
	if l := raw.Limits; l != nil {
		cfg.Limits = *l
	}
	return cfg, nil
}

// Environ merges a .env file under the process environment. The process
// environment wins. A missing .env file is not an error.
func Environ(dotenv string) (map[string]string, error) {
	env := map[string]string{}
	if dotenv != "" {
		vars, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", dotenv, err)
		}
		for k, v := range vars {
			env[k] = v
		}
	}
	for _, key := range []string{EnvCatalog, EnvMode, EnvWorkers} {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v := env[EnvCatalog]; v != "" {
		c.Generator.Catalog = v
	}
	if v := env[EnvMode]; v != "" {
		c.Generator.Mode = v
	}
	if v := env[EnvWorkers]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Batch.Workers = n
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := bingo.ParseMode(c.Generator.Mode); err != nil {
		return err
	}
	if c.Generator.Catalog == "" {
		return fmt.Errorf("generator: catalog must be set")
	}
	if c.Render.CellWidth < 4 {
		return fmt.Errorf("render: cell_width must be at least 4, got %d", c.Render.CellWidth)
	}
	if c.Render.Padding < 0 || 2*c.Render.Padding >= c.Render.CellWidth {
		return fmt.Errorf("render: padding %d leaves no room in a %d wide cell", c.Render.Padding, c.Render.CellWidth)
	}
	switch c.Render.Style {
	case StyleAuto, StylePlain, StyleColor:
	default:
		return fmt.Errorf("render: invalid style %q", c.Render.Style)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch: workers must be positive, got %d", c.Batch.Workers)
	}
	l := c.Limits
	for name, v := range map[string]int{
		"max_tiers":          l.MaxTiers,
		"max_goals_per_tier": l.MaxGoalsPerTier,
		"max_name_bytes":     l.MaxNameBytes,
		"max_types":          l.MaxTypes,
		"max_type_bytes":     l.MaxTypeBytes,
	} {
		if v < 0 {
			return fmt.Errorf("limits: %s must not be negative", name)
		}
	}
	return nil
}

// Mode returns the parsed generator mode.
func (c *Config) Mode() (bingo.Mode, error) {
	return bingo.ParseMode(c.Generator.Mode)
}

// CatalogLimits converts the limits block for the catalog loader.
func (c *Config) CatalogLimits() catalog.Limits {
	return catalog.Limits{
		MaxTiers:        c.Limits.MaxTiers,
		MaxGoalsPerTier: c.Limits.MaxGoalsPerTier,
		MaxNameBytes:    c.Limits.MaxNameBytes,
		MaxTypes:        c.Limits.MaxTypes,
		MaxTypeBytes:    c.Limits.MaxTypeBytes,
	}
}
