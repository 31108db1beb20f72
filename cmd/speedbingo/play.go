package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/speedbingo/cmd/speedbingo/shared"
	"github.com/lox/speedbingo/internal/randutil"
	"github.com/lox/speedbingo/internal/tui"
)

// PlayCmd opens the interactive board.
type PlayCmd struct {
	GeneratorFlags `embed:""`

	Seed    *uint32 `kong:"help='Board seed (random when omitted)'"`
	LogFile string  `kong:"name='log-file',help='Write TUI logs to this file'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger := g.Logger()
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	mode, cat, catalogName, err := c.resolve(cfg)
	if err != nil {
		return err
	}
	if err := catalogCovers(cat, catalogName, mode); err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}
	tuiLogger := log.NewWithOptions(logOut, log.Options{Level: level, ReportTimestamp: true})

	seed := randutil.NewSeed()
	if c.Seed != nil {
		seed = *c.Seed
	}

	model, err := tui.New(tuiLogger, quartz.NewReal(), tui.Options{
		Catalog: cat,
		Mode:    mode,
		Seed:    seed,
		Render:  renderOptions(cfg, 0, nil),
	})
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()
	return tui.Run(ctx, model)
}
