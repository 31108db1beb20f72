package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/speedbingo/cmd/speedbingo/shared"
	"github.com/lox/speedbingo/internal/batch"
	"github.com/lox/speedbingo/internal/export"
)

// BatchCmd generates many boards in parallel and reports synergy statistics.
type BatchCmd struct {
	GeneratorFlags `embed:""`

	From    uint32 `kong:"default='1',help='First seed'"`
	Count   int    `kong:"default='100',help='Number of consecutive seeds'"`
	Workers int    `kong:"help='Parallel workers (default from config)'"`
	XLSX    string `kong:"name='xlsx',help='Write boards and summary to an XLSX workbook'"`
	TOML    string `kong:"name='toml',help='Write boards as TOML records'"`
	Top     int    `kong:"default='5',help='Most used goals to list'"`

	out io.Writer
}

func (c *BatchCmd) Run(g *Globals) error {
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

	workers := cfg.Batch.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	report, err := batch.Run(ctx, logger, batch.Request{
		From:    c.From,
		Count:   c.Count,
		Mode:    mode,
		Catalog: cat,
		Workers: workers,
	})
	if err != nil {
		return err
	}
	summary, err := batch.Summarize(report.Results)
	if err != nil {
		return err
	}

	if c.XLSX != "" {
		if err := export.WriteXLSX(logger, c.XLSX, report, summary); err != nil {
			return err
		}
	}
	if c.TOML != "" {
		if err := export.WriteTOML(logger, c.TOML, report, catalogName, time.Now()); err != nil {
			return err
		}
	}

	printSummary(stdout(c.out), report, summary, c.Top)
	return nil
}

func printSummary(w io.Writer, report *batch.Report, s batch.Summary, top int) {
	fmt.Fprintf(w, "run %s: %d %s boards in %s\n", report.ID, s.Boards, report.Mode, report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "synergy  mean %.2f  median %.2f  stddev %.2f  p95 %.2f  min %.0f  max %.0f\n",
		s.SynergyMean, s.SynergyMedian, s.SynergyStdDev, s.SynergyP95, s.SynergyMin, s.SynergyMax)
	if top > 0 {
		fmt.Fprintln(w, "most used goals:")
		for _, gc := range s.TopGoals(top) {
			fmt.Fprintf(w, "  %5d  %s\n", gc.Count, gc.Name)
		}
	}
}
