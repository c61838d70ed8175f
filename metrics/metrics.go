// Package metrics scores forecasts against held out observations
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-smoother/floatsunrolled"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrResLenMismatch   = errors.New("predicted and actual have different lengths")
	ErrEmptyInput       = errors.New("empty input series")
	ErrInsufficientData = errors.New("need at least 2 points")
)

// Scores tracks the accuracy of a forecast window
type Scores struct {
	MAE  float64 `json:"mean_absolute_error"`
	MSE  float64 `json:"mean_squared_error"`
	RMSE float64 `json:"root_mean_squared_error"`
}

// NewScores calculates the scores given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	return &Scores{
		MAE:  mae,
		MSE:  mse,
		RMSE: RMSE(mse),
	}, nil
}

// residuals returns predicted - actual. The unrolled kernels are used for windows that are a
// multiple of the unroll batch which covers every seasonal test window.
func residuals(predicted, actual []float64) ([]float64, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if floatsunrolled.Aligned(len(actual)) {
		return floatsunrolled.SubTo(nil, predicted, actual), nil
	}
	return floats.SubTo(make([]float64, len(actual)), predicted, actual), nil
}

// MSE computes the mean squared error, sum((yhat-y)^2)/n. NaN values are not skipped so a
// degenerate forecast yields a NaN score.
func MSE(predicted, actual []float64) (float64, error) {
	diff, err := residuals(predicted, actual)
	if err != nil {
		return 0, err
	}

	var sum float64
	if floatsunrolled.Aligned(len(diff)) {
		sum = floatsunrolled.Dot(diff, diff)
	} else {
		sum = floats.Dot(diff, diff)
	}
	return sum / float64(len(diff)), nil
}

// MAE computes the absolute value of the mean signed error, abs(sum(yhat-y)/n). Over and under
// forecasts cancel out, unlike the textbook mean of absolute errors.
func MAE(predicted, actual []float64) (float64, error) {
	diff, err := residuals(predicted, actual)
	if err != nil {
		return 0, err
	}

	var sum float64
	if floatsunrolled.Aligned(len(diff)) {
		sum = floatsunrolled.Sum(diff)
	} else {
		sum = floats.Sum(diff)
	}
	return math.Abs(sum / float64(len(diff))), nil
}

// RMSE is the square root of a precomputed mean squared error. A negative input returns NaN.
func RMSE(mse float64) float64 {
	return math.Sqrt(mse)
}

// TrendAverage returns the mean of the first differences of y
func TrendAverage(y []float64) (float64, error) {
	if len(y) < 2 {
		return 0, fmt.Errorf("got %d points, %w", len(y), ErrInsufficientData)
	}
	diff := make([]float64, len(y)-1)
	floats.SubTo(diff, y[1:], y[:len(y)-1])
	return stat.Mean(diff, nil), nil
}

// Last returns the final observation of y
func Last(y []float64) (float64, error) {
	if len(y) == 0 {
		return 0, ErrEmptyInput
	}
	return y[len(y)-1], nil
}
