package timedataset

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateMonthlyT returns n consecutive month starts beginning at start
func GenerateMonthlyT(n int, start time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		t = append(t, ct.AddDate(0, i, 0))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) Mul(src Series) Series {
	floats.Mul(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateGrowthY returns a compounding series base*rate^i
func GenerateGrowthY(n int, base, rate float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, base*math.Pow(rate, float64(i)))
	}
	return Series(y)
}

// GenerateSeasonalY returns a multiplicative seasonal profile centered on 1 repeating every period
func GenerateSeasonalY(n, period int, amp float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, 1.0+amp*math.Sin(2.0*math.Pi*float64(i%period)/float64(period)))
	}
	return Series(y)
}
