// Package evaluate drives a smoothing recurrence across a training window, projects it over the
// test window without feeding back the true test values and scores the projection.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-smoother/metrics"
	"github.com/aouyang1/go-smoother/recurrence"
	"github.com/aouyang1/go-smoother/timedataset"
)

var (
	ErrNoFactory      = errors.New("no model factory")
	ErrNoSplit        = errors.New("no train/test split")
	ErrInvalidHorizon = errors.New("forecast horizon must be positive")
)

// Result is the outcome of a single parameter evaluation
type Result struct {
	MAE       float64   `json:"mae"`
	RMSE      float64   `json:"rmse"`
	Params    []float64 `json:"params"`
	Smoothed  []float64 `json:"smoothed"`
	Predicted []float64 `json:"predicted"`
}

// Combined joins the smoothed training values with the predicted test values
func (r *Result) Combined() []float64 {
	out := make([]float64, 0, len(r.Smoothed)+len(r.Predicted))
	out = append(out, r.Smoothed...)
	return append(out, r.Predicted...)
}

// Evaluator scores parameter tuples for one recurrence against a fixed split. The smoothed and
// predicted buffers are reused between calls so an Evaluator must not be shared across goroutines.
type Evaluator struct {
	newModel recurrence.Factory

	train []float64
	test  []float64

	params    []float64
	smoothed  []float64
	predicted []float64
	mae       float64
	rmse      float64
}

// New creates an evaluator over a copy of the split's observations
func New(newModel recurrence.Factory, split *timedataset.Split) (*Evaluator, error) {
	if newModel == nil {
		return nil, ErrNoFactory
	}
	if split == nil || split.Train == nil || split.Test == nil {
		return nil, ErrNoSplit
	}
	return &Evaluator{
		newModel: newModel,
		train:    split.Train.Values(),
		test:     split.Test.Values(),
		smoothed: make([]float64, split.Train.Len()),
	}, nil
}

// Score fits a fresh model with params over the training window, projects it over the test
// window and returns the RMSE. A non-finite RMSE is returned as is.
func (e *Evaluator) Score(params []float64) (float64, error) {
	m, err := e.newModel(params)
	if err != nil {
		return 0, fmt.Errorf("unable to create model, %w", err)
	}
	recurrence.Smooth(m, e.train, e.smoothed)
	e.predicted = m.Forecast(len(e.test))

	mae, err := metrics.MAE(e.predicted, e.test)
	if err != nil {
		return 0, fmt.Errorf("unable to score forecast, %w", err)
	}
	mse, err := metrics.MSE(e.predicted, e.test)
	if err != nil {
		return 0, fmt.Errorf("unable to score forecast, %w", err)
	}

	e.params = params
	e.mae = mae
	e.rmse = metrics.RMSE(mse)
	return e.rmse, nil
}

// Snapshot returns a deep copy of the last scored evaluation
func (e *Evaluator) Snapshot() *Result {
	r := &Result{
		MAE:       e.mae,
		RMSE:      e.rmse,
		Params:    make([]float64, len(e.params)),
		Smoothed:  make([]float64, len(e.smoothed)),
		Predicted: make([]float64, len(e.predicted)),
	}
	copy(r.Params, e.params)
	copy(r.Smoothed, e.smoothed)
	copy(r.Predicted, e.predicted)
	return r
}

// Evaluate scores params and returns the full result
func (e *Evaluator) Evaluate(params []float64) (*Result, error) {
	if _, err := e.Score(params); err != nil {
		return nil, err
	}
	return e.Snapshot(), nil
}

// Projection is a smoothing run over an entire series followed by a forecast past its end
type Projection struct {
	Smoothed []float64 `json:"smoothed"`
	Forecast []float64 `json:"forecast"`
}

// Combined joins the smoothed series with the forecast
func (p *Projection) Combined() []float64 {
	out := make([]float64, 0, len(p.Smoothed)+len(p.Forecast))
	out = append(out, p.Smoothed...)
	return append(out, p.Forecast...)
}

// Future smooths all of y, ignoring any train/test split, and forecasts horizon points beyond it.
// y is not modified.
func Future(newModel recurrence.Factory, params []float64, y []float64, horizon int) (*Projection, error) {
	if newModel == nil {
		return nil, ErrNoFactory
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("got %d, %w", horizon, ErrInvalidHorizon)
	}
	if len(y) == 0 {
		return nil, metrics.ErrEmptyInput
	}
	m, err := newModel(params)
	if err != nil {
		return nil, fmt.Errorf("unable to create model, %w", err)
	}
	return &Projection{
		Smoothed: recurrence.Smooth(m, y, nil),
		Forecast: m.Forecast(horizon),
	}, nil
}
