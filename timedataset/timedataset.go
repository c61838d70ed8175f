package timedataset

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMontonic        = errors.New("time feature is not monotonic")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrInvalidSplit       = errors.New("invalid train/test split")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length.
type TimeDataset struct {
	T []time.Time
	Y []float64
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
// Inputs are copied so later changes to t or y do not leak into the dataset.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMontonic)
		}
		lastT = currT
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	td := &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}

	return td, nil
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

func (td *TimeDataset) Len() int {
	return len(td.Y)
}

// Values returns a copy of the observations
func (td *TimeDataset) Values() []float64 {
	y := make([]float64, len(td.Y))
	copy(y, td.Y)
	return y
}

// Split holds contiguous and disjoint train and test windows covering the whole dataset
type Split struct {
	Train *TimeDataset
	Test  *TimeDataset
}

// Split partitions the dataset into the leading train window and the trailing testLen points.
func (td *TimeDataset) Split(testLen int) (*Split, error) {
	if testLen <= 0 || testLen >= td.Len() {
		return nil, fmt.Errorf("test length %d with %d points, %w", testLen, td.Len(), ErrInvalidSplit)
	}
	n := td.Len() - testLen
	train, err := NewUnivariateDataset(td.T[:n], td.Y[:n])
	if err != nil {
		return nil, fmt.Errorf("unable to create train window, %w", err)
	}
	test, err := NewUnivariateDataset(td.T[n:], td.Y[n:])
	if err != nil {
		return nil, fmt.Errorf("unable to create test window, %w", err)
	}
	return &Split{Train: train, Test: test}, nil
}
