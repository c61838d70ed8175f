package timedataset

import "time"

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// NextMonths returns n month starts following the last time in the slice
func (t TimeSlice) NextMonths(n int) []time.Time {
	end := t.EndTime()
	next := make([]time.Time, 0, n)
	for i := 1; i <= n; i++ {
		next = append(next, end.AddDate(0, i, 0))
	}
	return next
}
