package engine

import "time"

// Clock provides time readings and the blocking pause used between ticks
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicClock provides the real system time with monotonic clock readings
type MonotonicClock struct{}

// NewMonotonicClock creates a new real-time clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (c *MonotonicClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
