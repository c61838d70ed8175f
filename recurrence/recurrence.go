// Package recurrence implements the exponential smoothing state updates used to fit and project a
// univariate series. Every model owns its state; a fresh instance is needed per parameter set.
package recurrence

import (
	"errors"
	"fmt"
)

var ErrParamCount = errors.New("unexpected number of smoothing parameters")

// Model is a stateful one-step smoothing recurrence
type Model interface {
	// Update observes y, advances the state and returns the fitted value. The first observation
	// initializes the state and is returned unchanged.
	Update(y float64) float64

	// Forecast projects n points beyond the last observation without changing the state
	Forecast(n int) []float64

	// Params returns the smoothing weights of the model
	Params() []float64
}

// Factory creates a new model from a parameter tuple
type Factory func(params []float64) (Model, error)

// Smooth feeds every value of y through m and stores the fitted values in dst. dst is allocated
// when nil and must otherwise have the same length as y.
func Smooth(m Model, y, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(y))
	}
	for i, v := range y {
		dst[i] = m.Update(v)
	}
	return dst
}

func checkParams(params []float64, n int) error {
	if len(params) != n {
		return fmt.Errorf("expected %d, but got %d, %w", n, len(params), ErrParamCount)
	}
	return nil
}
