package gridsearch

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errScore = errors.New("score failure")

// funcScorer scores a point with fn and snapshots the last scored params
type funcScorer struct {
	fn   func(p []float64) (float64, error)
	last []float64
}

func (s *funcScorer) Score(params []float64) (float64, error) {
	s.last = append(s.last[:0], params...)
	return s.fn(params)
}

func (s *funcScorer) Snapshot() []float64 {
	out := make([]float64, len(s.last))
	copy(out, s.last)
	return out
}

func newFuncScorer(fn func(p []float64) (float64, error)) func() (Scorer[[]float64], error) {
	return func() (Scorer[[]float64], error) {
		return &funcScorer{fn: fn}, nil
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSearch(t *testing.T) {
	grid, err := Uniform(2, 0.1, 1)
	require.Nil(t, err)

	testData := map[string]struct {
		fn       func(p []float64) (float64, error)
		expected []float64
		rmse     float64
		found    bool
	}{
		"bowl": {
			fn: func(p []float64) (float64, error) {
				return math.Sqrt((p[0]-0.3)*(p[0]-0.3) + (p[1]-0.6)*(p[1]-0.6)), nil
			},
			expected: []float64{0.3, 0.6},
			rmse:     0,
			found:    true,
		},
		"constant keeps first point": {
			fn: func(p []float64) (float64, error) {
				return 1, nil
			},
			expected: []float64{0.1, 0.1},
			rmse:     1,
			found:    true,
		},
		"tie keeps first enumerated": {
			fn: func(p []float64) (float64, error) {
				if near(p[1], 0.3) && (near(p[0], 0.2) || near(p[0], 0.7)) {
					return 0.5, nil
				}
				return 1, nil
			},
			expected: []float64{0.2, 0.3},
			rmse:     0.5,
			found:    true,
		},
		"non finite never selected": {
			fn: func(p []float64) (float64, error) {
				switch {
				case near(p[0], 0.1):
					return math.NaN(), nil
				case near(p[0], 0.2):
					return math.Inf(-1), nil
				case near(p[0], 0.3):
					return math.Inf(1), nil
				}
				return p[0] + p[1], nil
			},
			expected: []float64{0.4, 0.1},
			rmse:     0.5,
			found:    true,
		},
		"no finite candidate": {
			fn: func(p []float64) (float64, error) {
				return math.NaN(), nil
			},
			expected: []float64{0.1, 0.1},
			rmse:     math.MaxFloat64,
			found:    false,
		},
	}

	for name, td := range testData {
		for _, parallelism := range []int{1, 2, 3, 4, 9, 16} {
			t.Run(name, func(t *testing.T) {
				res, err := Search(context.Background(), grid, newFuncScorer(td.fn), &Options{Parallelism: parallelism})
				require.Nil(t, err)

				assert.Equal(t, grid.Size(), res.Trials)
				assert.Equal(t, td.found, res.Found)
				assert.InDeltaSlice(t, td.expected, res.Params, 1e-9)
				assert.InDelta(t, td.rmse, res.RMSE, 1e-9)
				if td.found {
					assert.InDeltaSlice(t, td.expected, res.Best, 1e-9)
				} else {
					assert.Nil(t, res.Best)
				}
			})
		}
	}
}

func TestSearchParallelMatchesSequential(t *testing.T) {
	grid, err := Uniform(3, 0.05, 1)
	require.Nil(t, err)

	fn := func(p []float64) (float64, error) {
		// rounded so that many distinct points share the same score
		v := math.Sin(7*p[0]) + math.Cos(5*p[1]) + math.Sin(3*p[2])
		return math.Round(v*10) / 10, nil
	}

	seq, err := Search(context.Background(), grid, newFuncScorer(fn), &Options{Parallelism: 1})
	require.Nil(t, err)

	for _, parallelism := range []int{2, 5, 7, 19, 64} {
		par, err := Search(context.Background(), grid, newFuncScorer(fn), &Options{Parallelism: parallelism})
		require.Nil(t, err)
		assert.Equal(t, seq, par, "parallelism %d", parallelism)
	}
}

func TestSearchScorerError(t *testing.T) {
	grid, err := Uniform(2, 0.1, 1)
	require.Nil(t, err)

	fn := func(p []float64) (float64, error) {
		if near(p[0], 0.5) {
			return 0, errScore
		}
		return 1, nil
	}
	for _, parallelism := range []int{1, 4} {
		_, err := Search(context.Background(), grid, newFuncScorer(fn), &Options{Parallelism: parallelism})
		assert.ErrorIs(t, err, errScore)
	}

	_, err = Search(context.Background(), grid, func() (Scorer[[]float64], error) {
		return nil, errScore
	}, nil)
	assert.ErrorIs(t, err, errScore)
}

func TestSearchInvalidInput(t *testing.T) {
	grid, err := Uniform(2, 0.1, 1)
	require.Nil(t, err)

	_, err = Search[[]float64](context.Background(), nil, newFuncScorer(nil), nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Search[[]float64](context.Background(), grid, nil, nil)
	assert.ErrorIs(t, err, ErrNoScorer)
}

func TestSearchCancelled(t *testing.T) {
	grid, err := Uniform(2, 0.1, 1)
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fn := func(p []float64) (float64, error) {
		return 1, nil
	}
	_, err = Search(ctx, grid, newFuncScorer(fn), &Options{Parallelism: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
