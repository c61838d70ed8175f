package gridsearch

import "runtime"

// Options configures the search. Parallelism is the number of workers scanning disjoint
// contiguous ranges of the grid.
type Options struct {
	Parallelism int `json:"parallelism"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// Validate returns a copy of the options with defaults filled in
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	opt := *o
	if opt.Parallelism <= 0 {
		opt.Parallelism = runtime.GOMAXPROCS(0)
	}
	return &opt, nil
}
