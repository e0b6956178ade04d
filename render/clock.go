package render

import "time"

// Clock abstracts monotonic time so the scheduler's deadline behavior can be
// driven by a synthetic clock in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the process wall clock.
func SystemClock() Clock {
	return systemClock{}
}
