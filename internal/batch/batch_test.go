package batch

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/catalogs"
	"github.com/lox/speedbingo/internal/catalog"
)

func sample(t *testing.T) bingo.Catalog {
	t.Helper()
	data, err := catalogs.Read(catalogs.DefaultName)
	require.NoError(t, err)
	c, err := catalog.Parse(data, catalog.JSON, catalog.Limits{})
	require.NoError(t, err)
	return c
}

func TestRunMatchesSequentialGeneration(t *testing.T) {
	t.Parallel()

	c := sample(t)
	for _, workers := range []int{1, 3, 8} {
		report, err := Run(context.Background(), zerolog.Nop(), Request{
			From:    1000,
			Count:   40,
			Mode:    bingo.Normal,
			Catalog: c,
			Workers: workers,
		})
		require.NoError(t, err)
		require.Len(t, report.Results, 40)
		assert.Len(t, report.ID, 8)
		assert.Equal(t, bingo.Normal, report.Mode)

		for i, r := range report.Results {
			assert.Equal(t, uint32(1000+i), r.Seed)
			want, err := bingo.Generate(r.Seed, bingo.Normal, c)
			require.NoError(t, err)
			assert.Equal(t, want, r.Board, "seed %d with %d workers", r.Seed, workers)
			assert.Len(t, r.Cells, bingo.Cells)
		}
	}
}

func TestRunMoreWorkersThanSeeds(t *testing.T) {
	t.Parallel()

	report, err := Run(context.Background(), zerolog.Nop(), Request{
		From: 7, Count: 2, Catalog: sample(t), Workers: 16,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), report.Results[0].Seed)
	assert.Equal(t, uint32(8), report.Results[1].Seed)
}

func TestRunInvalidRequests(t *testing.T) {
	t.Parallel()

	c := sample(t)
	tests := []struct {
		name string
		req  Request
	}{
		{"zero count", Request{Count: 0, Catalog: c}},
		{"seed overflow", Request{From: math.MaxUint32, Count: 2, Catalog: c}},
		{"bad mode", Request{Count: 1, Mode: bingo.Mode(9), Catalog: c}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Run(context.Background(), zerolog.Nop(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestRunLastSeed(t *testing.T) {
	t.Parallel()

	report, err := Run(context.Background(), zerolog.Nop(), Request{
		From: math.MaxUint32, Count: 1, Catalog: sample(t),
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), report.Results[0].Seed)
}

func TestRunMissingTier(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), zerolog.Nop(), Request{
		From: 1, Count: 20, Mode: bingo.Long, Catalog: sample(t)[:10], Workers: 4,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, bingo.ErrTierMissing))

	var tierErr *bingo.TierError
	require.True(t, errors.As(err, &tierErr))
	assert.Equal(t, bingo.Long, tierErr.Mode)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, zerolog.Nop(), Request{From: 1, Count: 100, Catalog: sample(t), Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
