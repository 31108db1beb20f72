// Package batch generates boards for ranges of seeds in parallel.
package batch

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/speedbingo/bingo"
)

// Request describes a run over Count consecutive seeds starting at From.
type Request struct {
	From    uint32
	Count   int
	Mode    bingo.Mode
	Catalog bingo.Catalog
	Workers int // defaults to runtime.NumCPU()
}

// Result is one generated board.
type Result struct {
	Seed  uint32
	Board bingo.Board
	Cells []bingo.PlacedCell
}

// TotalSynergy sums the synergy of every placed cell.
func (r Result) TotalSynergy() int {
	total := 0
	for _, c := range r.Cells {
		total += c.Synergy
	}
	return total
}

// Report is the outcome of a run. Results are in seed order.
type Report struct {
	ID      string
	Mode    bingo.Mode
	Results []Result
	Elapsed time.Duration
}

func (req Request) validate() error {
	if req.Count < 1 {
		return fmt.Errorf("batch: count must be positive, got %d", req.Count)
	}
	if uint64(req.From)+uint64(req.Count)-1 > math.MaxUint32 {
		return fmt.Errorf("batch: %d seeds from %d runs past %d", req.Count, req.From, uint32(math.MaxUint32))
	}
	if !req.Mode.Valid() {
		return fmt.Errorf("batch: invalid mode %s", req.Mode)
	}
	return nil
}

// Run generates every board in the request. Workers take interleaved seeds
// and write into disjoint result slots, so no locking is needed. The first
// generation error cancels the remaining work.
func Run(ctx context.Context, logger zerolog.Logger, req Request) (*Report, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, req.Count)

	report := &Report{
		ID:      uuid.NewString()[:8],
		Mode:    req.Mode,
		Results: make([]Result, req.Count),
	}
	logger = logger.With().Str("run", report.ID).Logger()
	logger.Info().
		Uint32("from", req.From).
		Int("count", req.Count).
		Str("mode", req.Mode.String()).
		Int("workers", workers).
		Msg("Starting batch")

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			generated := 0
			for i := w; i < req.Count; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				seed := req.From + uint32(i)
				board, cells, err := bingo.GenerateCells(seed, req.Mode, req.Catalog)
				if err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
				report.Results[i] = Result{Seed: seed, Board: board, Cells: cells}
				generated++
			}
			logger.Debug().Int("worker", w).Int("boards", generated).Msg("Worker finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Batch failed")
		return nil, err
	}

	report.Elapsed = time.Since(start)
	logger.Info().
		Int("boards", len(report.Results)).
		Dur("elapsed", report.Elapsed).
		Msg("Batch complete")
	return report, nil
}
