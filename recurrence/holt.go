package recurrence

import "math"

// Holt is the two parameter multiplicative trend model (M-N).
//
//	l = α·y + (1−α)·l'·b'
//	b = β·(l/l') + (1−β)·b'
//	ŷ = l·b^h
type Holt struct {
	alpha float64
	beta  float64

	level  float64
	trend  float64
	fitted float64
	count  int
}

// NewHolt creates a Holt model with level weight alpha and trend weight beta
func NewHolt(alpha, beta float64) *Holt {
	return &Holt{alpha: alpha, beta: beta}
}

// NewHoltFromParams creates a Holt model from an (alpha, beta) tuple
func NewHoltFromParams(params []float64) (Model, error) {
	if err := checkParams(params, 2); err != nil {
		return nil, err
	}
	return NewHolt(params[0], params[1]), nil
}

// step applies the recurrence to observation y at horizon h against the current state. A zero
// level is not guarded against and yields a non-finite trend.
func (m *Holt) step(y, h float64) (float64, float64, float64) {
	l := m.alpha*y + (1.0-m.alpha)*m.level*m.trend
	b := m.beta*(l/m.level) + (1.0-m.beta)*m.trend
	return l, b, l * math.Pow(b, h)
}

func (m *Holt) Update(y float64) float64 {
	if m.count == 0 {
		m.level = y
		m.trend = 1.0
		m.fitted = y
		m.count++
		return y
	}
	m.level, m.trend, m.fitted = m.step(y, 1.0)
	m.count++
	return m.fitted
}

// Forecast uses the last fitted value as the only pseudo-observation and extrapolates its
// level and trend over increasing horizons.
func (m *Holt) Forecast(n int) []float64 {
	out := make([]float64, n)
	if m.count == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	for i := 0; i < n; i++ {
		_, _, out[i] = m.step(m.fitted, float64(i+1))
	}
	return out
}

func (m *Holt) Params() []float64 {
	return []float64{m.alpha, m.beta}
}

func (m *Holt) Level() float64 {
	return m.level
}

func (m *Holt) Trend() float64 {
	return m.trend
}
