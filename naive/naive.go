// Package naive provides baseline forecasts used to judge whether smoothing adds anything over
// trivially repeating the history.
package naive

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-smoother/metrics"
	"github.com/aouyang1/go-smoother/timedataset"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoPredictor = errors.New("no predictor")
	ErrNoSplit     = errors.New("no train/test split")
)

// Predictor forecasts the next point from the history observed so far
type Predictor func(history []float64) (float64, error)

// Method is a named baseline predictor
type Method struct {
	Name    string
	Predict Predictor
}

// Methods returns the baselines in reporting order
func Methods() []Method {
	return []Method{
		{Name: "naive_mean", Predict: Mean},
		{Name: "naive_last", Predict: Last},
		{Name: "naive_last_season", Predict: LastSeason},
	}
}

// Mean predicts the average of the whole history
func Mean(history []float64) (float64, error) {
	if len(history) == 0 {
		return 0, metrics.ErrEmptyInput
	}
	return stat.Mean(history, nil), nil
}

// Last predicts the latest observation
func Last(history []float64) (float64, error) {
	return metrics.Last(history)
}

// LastSeason predicts the observation one season back
func LastSeason(history []float64) (float64, error) {
	if len(history) < timedataset.SeasonLen {
		return 0, fmt.Errorf("got %d points for season of %d, %w",
			len(history), timedataset.SeasonLen, metrics.ErrInsufficientData)
	}
	return history[len(history)-timedataset.SeasonLen], nil
}

// Result is the rolling evaluation of a baseline over the test window
type Result struct {
	Name      string    `json:"name"`
	Predicted []float64 `json:"predicted"`
	MAE       float64   `json:"mae"`
	RMSE      float64   `json:"rmse"`
}

// Evaluate predicts each test point one step ahead and then appends the true value to the
// history before predicting the next.
func Evaluate(m Method, split *timedataset.Split) (*Result, error) {
	if m.Predict == nil {
		return nil, ErrNoPredictor
	}
	if split == nil || split.Train == nil || split.Test == nil {
		return nil, ErrNoSplit
	}

	history := split.Train.Values()
	test := split.Test.Values()
	predicted := make([]float64, 0, len(test))
	for _, actual := range test {
		p, err := m.Predict(history)
		if err != nil {
			return nil, fmt.Errorf("unable to predict with %s, %w", m.Name, err)
		}
		predicted = append(predicted, p)
		history = append(history, actual)
	}

	scores, err := metrics.NewScores(predicted, test)
	if err != nil {
		return nil, fmt.Errorf("unable to score %s, %w", m.Name, err)
	}
	return &Result{
		Name:      m.Name,
		Predicted: predicted,
		MAE:       scores.MAE,
		RMSE:      scores.RMSE,
	}, nil
}

// Project extends y by n points, feeding each prediction back as history. The returned slice
// holds y followed by the projection and y itself is left untouched.
func Project(m Method, y []float64, n int) ([]float64, error) {
	if m.Predict == nil {
		return nil, ErrNoPredictor
	}
	out := make([]float64, len(y), len(y)+n)
	copy(out, y)
	for i := 0; i < n; i++ {
		p, err := m.Predict(out)
		if err != nil {
			return nil, fmt.Errorf("unable to project with %s, %w", m.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}
