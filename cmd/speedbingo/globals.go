package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/catalogs"
	"github.com/lox/speedbingo/cmd/speedbingo/shared"
	"github.com/lox/speedbingo/internal/catalog"
	"github.com/lox/speedbingo/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Config    string `kong:"default='speedbingo.hcl',help='Path to HCL config file',type='path'"`
	EnvFile   string `kong:"name='env-file',default='.env',help='Dotenv file with SPEEDBINGO_* overrides'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
	LogFormat string `kong:"name='log-format',default='console',enum='console,json',help='Log output format'"`
}

// Logger builds the command logger on stderr.
func (g *Globals) Logger() zerolog.Logger {
	logger, err := shared.NewLogger(os.Stderr, g.LogFormat, g.Debug)
	if err != nil {
		return shared.SetupLogger(os.Stderr, g.Debug)
	}
	return logger
}

// LoadConfig reads the config file and applies environment overrides.
func (g *Globals) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	env, err := config.Environ(g.EnvFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", g.Config, err)
	}
	return cfg, nil
}

// loadCatalog resolves name as an embedded catalog first and a file path
// second.
func loadCatalog(name string, limits catalog.Limits) (bingo.Catalog, error) {
	if data, err := catalogs.Read(name); err == nil {
		return catalog.Parse(data, catalog.JSON, limits)
	}
	return catalog.Load(name, limits)
}

// GeneratorFlags are shared by commands that build boards.
type GeneratorFlags struct {
	Mode    string `kong:"help='Board mode: short, normal, long or special (default from config)'"`
	Catalog string `kong:"help='Embedded catalog name or catalog file (default from config)'"`
}

// resolve merges the flags over the config and loads the catalog.
func (f GeneratorFlags) resolve(cfg *config.Config) (bingo.Mode, bingo.Catalog, string, error) {
	modeName := cfg.Generator.Mode
	if f.Mode != "" {
		modeName = f.Mode
	}
	mode, err := bingo.ParseMode(modeName)
	if err != nil {
		return 0, nil, "", err
	}

	name := cfg.Generator.Catalog
	if f.Catalog != "" {
		name = f.Catalog
	}
	c, err := loadCatalog(name, cfg.CatalogLimits())
	if err != nil {
		return 0, nil, "", err
	}
	return mode, c, name, nil
}

// catalogCovers fails early when no board of mode can be built from c.
func catalogCovers(c bingo.Catalog, name string, mode bingo.Mode) error {
	if err := catalog.CheckCoverage(c, mode); err != nil {
		return fmt.Errorf("catalog %s: %w", name, err)
	}
	return nil
}
