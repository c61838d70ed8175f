package naive

import (
	"math"
	"testing"

	"github.com/aouyang1/go-smoother/metrics"
	"github.com/aouyang1/go-smoother/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictors(t *testing.T) {
	season := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

	testData := map[string]struct {
		predict  Predictor
		history  []float64
		expected float64
		err      error
	}{
		"mean empty":        {Mean, nil, 0, metrics.ErrEmptyInput},
		"mean":              {Mean, []float64{1, 2, 6}, 3, nil},
		"last empty":        {Last, []float64{}, 0, metrics.ErrEmptyInput},
		"last":              {Last, []float64{1, 2, 6}, 6, nil},
		"last season short": {LastSeason, []float64{1, 2, 3}, 0, metrics.ErrInsufficientData},
		"last season":       {LastSeason, season, 2, nil},
		"last season exact": {LastSeason, season[:12], 1, nil},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := td.predict(td.history)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected, res, 1e-12)
		})
	}
}

func TestEvaluate(t *testing.T) {
	ds := timedataset.Sales()
	split, err := ds.Split(timedataset.TestLen)
	require.Nil(t, err)

	for _, m := range Methods() {
		t.Run(m.Name, func(t *testing.T) {
			res, err := Evaluate(m, split)
			require.Nil(t, err)
			assert.Equal(t, m.Name, res.Name)
			require.Len(t, res.Predicted, timedataset.TestLen)
			assert.False(t, math.IsNaN(res.RMSE))
			assert.GreaterOrEqual(t, res.RMSE, res.MAE)
		})
	}

	// last season repeats the final training season then rolls onto the truth
	res, err := Evaluate(Method{Name: "season", Predict: LastSeason}, split)
	require.Nil(t, err)
	assert.Equal(t, ds.Y[timedataset.TrainLen-timedataset.SeasonLen:timedataset.TrainLen], res.Predicted)

	// last value sees each true test value after predicting it
	res, err = Evaluate(Method{Name: "last", Predict: Last}, split)
	require.Nil(t, err)
	assert.Equal(t, ds.Y[timedataset.TrainLen-1:len(ds.Y)-1], res.Predicted)

	assert.Equal(t, timedataset.Sales().Y, ds.Y)
}

func TestEvaluateInvalid(t *testing.T) {
	_, err := Evaluate(Method{Name: "nil"}, nil)
	assert.ErrorIs(t, err, ErrNoPredictor)

	_, err = Evaluate(Method{Name: "mean", Predict: Mean}, nil)
	assert.ErrorIs(t, err, ErrNoSplit)
}

func TestProject(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	res, err := Project(Method{Name: "mean", Predict: Mean}, y, 3)
	require.Nil(t, err)
	assert.InDeltaSlice(t, append(append([]float64{}, y...), 6.5, 6.5, 6.5), res, 1e-12)

	res, err = Project(Method{Name: "last", Predict: Last}, y, 2)
	require.Nil(t, err)
	assert.Equal(t, append(append([]float64{}, y...), 12, 12), res)

	res, err = Project(Method{Name: "season", Predict: LastSeason}, y, 24)
	require.Nil(t, err)
	assert.Equal(t, append(append(append([]float64{}, y...), y...), y...), res)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, y)

	_, err = Project(Method{Name: "season", Predict: LastSeason}, y[:3], 1)
	assert.ErrorIs(t, err, metrics.ErrInsufficientData)
}
