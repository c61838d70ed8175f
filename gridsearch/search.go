// Package gridsearch exhaustively evaluates a scorer over a discretized parameter lattice and
// keeps the point with the minimum finite score.
package gridsearch

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
)

// Scorer evaluates a single grid point. Implementations may keep scratch state between calls and
// are only ever used from one goroutine.
type Scorer[T any] interface {
	// Score returns the RMSE of params. Non-finite values are excluded from selection.
	Score(params []float64) (float64, error)

	// Snapshot captures the last scored point. It is only called when that point becomes the
	// incumbent.
	Snapshot() T
}

// Result is the outcome of a search. When no point produced a finite score Found is false, RMSE
// is math.MaxFloat64, Params is the first grid point and Best is the zero value.
type Result[T any] struct {
	Params []float64 `json:"params"`
	RMSE   float64   `json:"rmse"`
	Best   T         `json:"best"`
	Found  bool      `json:"found"`
	Trials int       `json:"trials"`
}

type incumbent[T any] struct {
	params []float64
	rmse   float64
	best   T
	found  bool
	trials int
}

// Search scores every point of the grid. A candidate replaces the incumbent only when its score
// is finite and strictly lower, so the first enumerated minimizer wins ties. Workers own
// contiguous index ranges and are combined in enumeration order which makes the result
// independent of the parallelism. A scorer error aborts the search.
func Search[T any](ctx context.Context, grid *Grid, newScorer func() (Scorer[T], error), opt *Options) (*Result[T], error) {
	if grid == nil || grid.Size() == 0 {
		return nil, ErrEmptyGrid
	}
	if newScorer == nil {
		return nil, ErrNoScorer
	}
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	rows := grid.counts[0]
	rowSize := grid.rowSize()
	workers := min(opt.Parallelism, rows)

	locals := make([]incumbent[T], workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		startRow := w * rows / workers
		endRow := (w + 1) * rows / workers
		g.Go(func() error {
			scorer, err := newScorer()
			if err != nil {
				return fmt.Errorf("unable to create scorer, %w", err)
			}
			local, err := scan(gctx, grid, scorer, startRow*rowSize, endRow*rowSize, rowSize)
			if err != nil {
				return err
			}
			locals[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result[T]{
		Params: grid.At(0, nil),
		RMSE:   math.MaxFloat64,
	}
	for _, local := range locals {
		res.Trials += local.trials
		if local.found && local.rmse < res.RMSE {
			res.Params = local.params
			res.RMSE = local.rmse
			res.Best = local.best
			res.Found = true
		}
	}

	slog.Debug("grid search complete",
		"dims", grid.Dims(),
		"trials", res.Trials,
		"workers", workers,
		"found", res.Found,
		"rmse", res.RMSE,
	)
	return res, nil
}

func scan[T any](ctx context.Context, grid *Grid, scorer Scorer[T], start, end, rowSize int) (incumbent[T], error) {
	local := incumbent[T]{rmse: math.MaxFloat64}
	params := make([]float64, grid.Dims())

	for idx := start; idx < end; idx++ {
		if (idx-start)%rowSize == 0 {
			if err := ctx.Err(); err != nil {
				return local, err
			}
		}

		grid.At(idx, params)
		rmse, err := scorer.Score(params)
		if err != nil {
			return local, fmt.Errorf("unable to score %v, %w", params, err)
		}
		local.trials++

		if math.IsNaN(rmse) || math.IsInf(rmse, 0) {
			continue
		}
		if rmse < local.rmse {
			local.rmse = rmse
			local.params = append(local.params[:0], params...)
			local.best = scorer.Snapshot()
			local.found = true
		}
	}
	return local, nil
}
