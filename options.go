package smoother

import (
	"github.com/aouyang1/go-smoother/gridsearch"
	"github.com/aouyang1/go-smoother/timedataset"
)

const (
	// TrainingDir is the chart sub-directory for smoothing methods
	TrainingDir = "lab_2"

	// BaselineDir is the chart sub-directory for naive baselines
	BaselineDir = "lab_1"

	// BaselineSeasons is how many seasons the baselines are projected for charting
	BaselineSeasons = 3
)

// Options configures a Smoother. A nil Renderer renders echarts html files under OutputDir
// unless DisableRender is set.
type Options struct {
	OutputDir     string              `json:"output_dir"`
	DisableRender bool                `json:"disable_render"`
	TestLen       int                 `json:"test_len"`
	Horizon       int                 `json:"horizon"`
	SearchOptions *gridsearch.Options `json:"search_options"`

	Renderer Renderer `json:"-"`
}

func NewDefaultOptions() *Options {
	return &Options{
		OutputDir:     ".",
		TestLen:       timedataset.TestLen,
		Horizon:       timedataset.SeasonLen,
		SearchOptions: gridsearch.NewDefaultOptions(),
	}
}

// Validate returns a copy of the options with defaults filled in
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	opt := *o
	if opt.OutputDir == "" {
		opt.OutputDir = "."
	}
	if opt.TestLen <= 0 {
		opt.TestLen = timedataset.TestLen
	}
	if opt.Horizon <= 0 {
		opt.Horizon = timedataset.SeasonLen
	}
	searchOpt, err := opt.SearchOptions.Validate()
	if err != nil {
		return nil, err
	}
	opt.SearchOptions = searchOpt

	switch {
	case opt.DisableRender:
		opt.Renderer = NopRenderer{}
	case opt.Renderer == nil:
		opt.Renderer = NewEChartsRenderer(opt.OutputDir)
	}
	return &opt, nil
}
