package smoother

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-smoother/evaluate"
	"github.com/aouyang1/go-smoother/gridsearch"
	"github.com/aouyang1/go-smoother/naive"
	"github.com/aouyang1/go-smoother/timedataset"
)

var (
	ErrNoMethod      = errors.New("no smoothing method")
	ErrUnknownMethod = errors.New("unknown smoothing method")
)

// Smoother searches smoothing parameters for a fixed dataset and reports the best fit
type Smoother struct {
	opt *Options

	data  *timedataset.TimeDataset
	split *timedataset.Split
}

// New creates a Smoother over a copy of data. A nil dataset uses the embedded sales series and
// nil options use the defaults.
func New(data *timedataset.TimeDataset, opt *Options) (*Smoother, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to validate options, %w", err)
	}
	if data == nil {
		data = timedataset.Sales()
	}
	data = data.Copy()

	split, err := data.Split(opt.TestLen)
	if err != nil {
		return nil, fmt.Errorf("unable to split dataset, %w", err)
	}
	return &Smoother{
		opt:   opt,
		data:  data,
		split: split,
	}, nil
}

// Data returns a copy of the dataset being analyzed
func (s *Smoother) Data() *timedataset.TimeDataset {
	return s.data.Copy()
}

// Search runs the grid search of a method against the train/test split
func (s *Smoother) Search(ctx context.Context, m *Method) (*gridsearch.Result[*evaluate.Result], error) {
	if m == nil {
		return nil, ErrNoMethod
	}
	newScorer := func() (gridsearch.Scorer[*evaluate.Result], error) {
		e, err := evaluate.New(m.New, s.split)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	res, err := gridsearch.Search(ctx, m.Grid, newScorer, s.opt.SearchOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to search %s parameters, %w", m.Name, err)
	}
	return res, nil
}

// Analyze finds the best parameters of a method, projects the full series past its end with them
// and renders both the training fit and the future forecast. Rendering failures are logged and
// do not fail the analysis.
func (s *Smoother) Analyze(ctx context.Context, m *Method) (*Report, error) {
	res, err := s.Search(ctx, m)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Method:  m.Name,
		RMSE:    res.RMSE,
		Params:  namedParams(m.ParamNames, res.Params),
		Trials:  res.Trials,
		Found:   res.Found,
		Start:   timedataset.TimeSlice(s.data.T).StartTime(),
		End:     timedataset.TimeSlice(s.data.T).EndTime(),
		Horizon: s.opt.Horizon,
	}
	if !res.Found {
		slog.Warn("no finite score in grid", "method", m.Name, "trials", res.Trials)
		return r, nil
	}
	r.MAE = res.Best.MAE
	r.Training = res.Best.Combined()

	proj, err := evaluate.Future(m.New, res.Params, s.data.Values(), s.opt.Horizon)
	if err != nil {
		return nil, fmt.Errorf("unable to forecast %s, %w", m.Name, err)
	}
	r.Forecast = proj.Combined()

	s.render(r.Training, false, TrainingDir, m.Label+"_training")
	s.render(r.Forecast, false, TrainingDir, m.Label+"_forecast")

	slog.Info("analysis complete",
		"method", m.Name,
		"rmse", r.RMSE,
		"mae", r.MAE,
		"params", res.Params,
		"trials", r.Trials,
	)
	return r, nil
}

// AnalyzeAll runs Analyze for every method in order
func (s *Smoother) AnalyzeAll(ctx context.Context, methods []*Method) ([]*Report, error) {
	reports := make([]*Report, 0, len(methods))
	for _, m := range methods {
		r, err := s.Analyze(ctx, m)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Naive evaluates the baseline methods and renders the input data, its seasons and each baseline
// projected over several seasons.
func (s *Smoother) Naive() (*NaiveReport, error) {
	nr := &NaiveReport{}
	for _, m := range naive.Methods() {
		res, err := naive.Evaluate(m, s.split)
		if err != nil {
			return nil, err
		}
		nr.Results = append(nr.Results, res)
	}

	y := s.data.Values()
	s.render(y, false, "", "starting_data")
	s.render(y, true, "", "seasonal_dynamics")
	for _, m := range naive.Methods() {
		proj, err := naive.Project(m, y, timedataset.SeasonLen*BaselineSeasons)
		if err != nil {
			return nil, err
		}
		s.render(proj, true, BaselineDir, m.Name)
	}
	return nr, nil
}

func (s *Smoother) render(values []float64, seasonal bool, dir, name string) {
	if err := s.opt.Renderer.Render(values, seasonal, dir, name); err != nil {
		slog.Error("unable to render graph", "name", name, "dir", dir, "error", err)
	}
}
