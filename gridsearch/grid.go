package gridsearch

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyGrid   = errors.New("grid has no points")
	ErrInvalidAxis = errors.New("axis step must be positive and below the upper bound")
	ErrNoScorer    = errors.New("no scorer constructor")
)

// Axis enumerates Step·k for k = 1, 2, ... while the value stays below Upper. Values are derived
// from the integer counter so no error accumulates across the axis.
type Axis struct {
	Step  float64 `json:"step"`
	Upper float64 `json:"upper"`
}

// Validate checks that the axis enumerates at least one value
func (a Axis) Validate() error {
	if math.IsNaN(a.Step) || math.IsInf(a.Step, 0) || math.IsNaN(a.Upper) || math.IsInf(a.Upper, 0) {
		return fmt.Errorf("step %v, upper %v, %w", a.Step, a.Upper, ErrInvalidAxis)
	}
	if a.Step <= 0 || a.Step >= a.Upper {
		return fmt.Errorf("step %v, upper %v, %w", a.Step, a.Upper, ErrInvalidAxis)
	}
	return nil
}

// Count returns the number of values on the axis
func (a Axis) Count() int {
	if a.Validate() != nil {
		return 0
	}
	var n int
	for a.Value(n) < a.Upper {
		n++
	}
	return n
}

// Value returns the k-th (zero based) value of the axis
func (a Axis) Value(k int) float64 {
	return a.Step * float64(k+1)
}

// Grid is the cartesian product of its axes enumerated lexicographically with the first axis
// outermost and the last axis varying fastest.
type Grid struct {
	axes   []Axis
	counts []int
	size   int
}

// NewGrid creates a grid over the provided axes
func NewGrid(axes ...Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		axes:   make([]Axis, len(axes)),
		counts: make([]int, len(axes)),
		size:   1,
	}
	copy(g.axes, axes)
	for i, a := range axes {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("axis %d, %w", i, err)
		}
		g.counts[i] = a.Count()
		g.size *= g.counts[i]
	}
	return g, nil
}

// Uniform creates a grid of dims axes sharing the same step and upper bound
func Uniform(dims int, step, upper float64) (*Grid, error) {
	axes := make([]Axis, dims)
	for i := range axes {
		axes[i] = Axis{Step: step, Upper: upper}
	}
	return NewGrid(axes...)
}

func (g *Grid) Dims() int {
	return len(g.axes)
}

func (g *Grid) Size() int {
	return g.size
}

// Axes returns a copy of the grid axes
func (g *Grid) Axes() []Axis {
	axes := make([]Axis, len(g.axes))
	copy(axes, g.axes)
	return axes
}

// rowSize is the number of points sharing the same outermost axis value
func (g *Grid) rowSize() int {
	return g.size / g.counts[0]
}

// At stores the parameters of the index-th point in enumeration order into dst. dst is allocated
// when nil and must otherwise have length Dims().
func (g *Grid) At(index int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(g.axes))
	}
	for i := len(g.axes) - 1; i >= 0; i-- {
		dst[i] = g.axes[i].Value(index % g.counts[i])
		index /= g.counts[i]
	}
	return dst
}
