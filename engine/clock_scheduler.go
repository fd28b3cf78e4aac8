package engine

import "time"

// ClockScheduler paces the game loop on a fixed tick
// Wait is a plain blocking pause on the injected clock, no drift correction
type ClockScheduler struct {
	clock        Clock
	tickInterval time.Duration
	tickCount    uint64
}

// NewClockScheduler creates a scheduler pausing tickInterval per tick
func NewClockScheduler(clock Clock, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
	}
}

// Wait blocks for one tick interval and counts the tick
func (cs *ClockScheduler) Wait() {
	cs.clock.Sleep(cs.tickInterval)
	cs.tickCount++
}

// TickCount returns the number of completed waits
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// TickInterval returns the configured pause
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// Clock returns the underlying clock
func (cs *ClockScheduler) Clock() Clock {
	return cs.clock
}
