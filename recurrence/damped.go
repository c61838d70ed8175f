package recurrence

import "math"

const (
	// SeasonLen is the number of seasonal phases tracked by the damped model
	SeasonLen = 12

	// Damping is the fixed exponent applied to the trend multiplier
	Damping = 1.1
)

// Damped is the damped multiplicative trend model with multiplicative seasonality (Md-M).
//
//	l = α·(y/s') + (1−α)·l'·b'^φ
//	b = β·(l/l') + (1−β)·b'^φ
//	s = γ·(y/(l'·b'^φ)) + (1−γ)·s'
//	ŷ = l·b^(φh)·s' + ((h−1) mod 12 + 1)
//
// Seasonal indices lag by a full season: s' for phase p during season k is the value finalized
// for p during season k-1.
type Damped struct {
	alpha float64
	beta  float64
	gamma float64
	phi   float64

	level  float64
	trend  float64
	fitted float64
	count  int

	reference [SeasonLen]float64 // read during the current season
	current   [SeasonLen]float64 // written during the current season
}

// NewDamped creates a Damped model with level, trend and seasonal weights
func NewDamped(alpha, beta, gamma float64) *Damped {
	m := &Damped{
		alpha: alpha,
		beta:  beta,
		gamma: gamma,
		phi:   Damping,
	}
	for i := 0; i < SeasonLen; i++ {
		m.reference[i] = 1.0
		m.current[i] = 1.0
	}
	return m
}

// NewDampedFromParams creates a Damped model from an (alpha, beta, gamma) tuple
func NewDampedFromParams(params []float64) (Model, error) {
	if err := checkParams(params, 3); err != nil {
		return nil, err
	}
	return NewDamped(params[0], params[1], params[2]), nil
}

func (m *Damped) step(y, sPrev, h float64) (float64, float64, float64, float64) {
	dampedTrend := math.Pow(m.trend, m.phi)
	l := m.alpha*(y/sPrev) + (1.0-m.alpha)*m.level*dampedTrend
	b := m.beta*(l/m.level) + (1.0-m.beta)*dampedTrend
	s := m.gamma*(y/(m.level*dampedTrend)) + (1.0-m.gamma)*sPrev
	phase := math.Mod(h-1.0, SeasonLen) + 1.0
	return l, b, s, l*math.Pow(b, m.phi*h)*sPrev + phase
}

func (m *Damped) Update(y float64) float64 {
	i := m.count
	m.count++
	if i == 0 {
		m.level = y
		m.trend = 1.0
		m.fitted = y
		return y
	}

	if i%SeasonLen == 0 {
		m.reference = m.current
	}
	phase := i % SeasonLen

	var s float64
	m.level, m.trend, s, m.fitted = m.step(y, m.reference[phase], 1.0)
	m.current[phase] = s
	return m.fitted
}

// Forecast holds the last finalized seasonal indices constant and extrapolates from the last
// fitted value with increasing horizons.
func (m *Damped) Forecast(n int) []float64 {
	out := make([]float64, n)
	if m.count == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	for i := 0; i < n; i++ {
		sPrev := m.current[(m.count+i)%SeasonLen]
		_, _, _, out[i] = m.step(m.fitted, sPrev, float64(i+1))
	}
	return out
}

func (m *Damped) Params() []float64 {
	return []float64{m.alpha, m.beta, m.gamma}
}

func (m *Damped) Level() float64 {
	return m.level
}

func (m *Damped) Trend() float64 {
	return m.trend
}

// Seasonal returns the indices finalized so far in the current season
func (m *Damped) Seasonal() []float64 {
	s := make([]float64, SeasonLen)
	copy(s, m.current[:])
	return s
}

// Reference returns the indices read by the recurrence during the current season
func (m *Damped) Reference() []float64 {
	s := make([]float64, SeasonLen)
	copy(s, m.reference[:])
	return s
}
