// Package clock converts wall-clock frame timestamps into a whole number of
// fixed simulation steps.
package clock

import "time"

// DefaultTickRate is the number of simulation steps per second.
const DefaultTickRate = 60

// Accumulator carries wall-clock time that has not yet been consumed by a
// fixed step. The simulation only ever advances by Step.
//
// Time is kept in integer units of 1/(tickRate * 1e9) seconds, so one step is
// exactly 1e9 units and the step count for a frame is exactly
// floor((carry + elapsed) / step) at nanosecond resolution.
//
// With MaxFrameTime == 0 a long stall (a minimized window, a debugger
// pause) is repaid in full on the next frame, which can mean thousands of
// steps before anything is drawn. Setting MaxFrameTime caps the elapsed
// time credited per frame; the excess is discarded.
type Accumulator struct {
	MaxFrameTime time.Duration // 0 = unbounded

	rate    int64 // steps per second
	acc     int64 // nanoseconds * rate, always < unitsPerStep
	last    time.Duration
	started bool
	steps   uint64
}

// unitsPerStep is one step in accumulator units: (1/rate s) * 1e9 ns/s * rate.
const unitsPerStep = int64(time.Second)

// New creates an accumulator stepping tickRate times per second.
// A non-positive tickRate falls back to DefaultTickRate.
func New(tickRate int) *Accumulator {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Accumulator{rate: int64(tickRate)}
}

// Step returns the fixed step size in seconds.
func (a *Accumulator) Step() float64 {
	return 1 / float64(a.rate)
}

// Advance credits the time since the previous call and returns how many
// fixed steps are now due. The first call only records the timestamp.
// Timestamps that go backwards count as zero elapsed time.
func (a *Accumulator) Advance(now time.Duration) int {
	if !a.started {
		a.started = true
		a.last = now
		return 0
	}

	elapsed := now - a.last
	a.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if a.MaxFrameTime > 0 && elapsed > a.MaxFrameTime {
		elapsed = a.MaxFrameTime
	}

	a.acc += int64(elapsed) * a.rate
	n := a.acc / unitsPerStep
	a.acc %= unitsPerStep
	a.steps += uint64(n)
	return int(n)
}

// Remainder returns the unconsumed time in seconds; always < Step.
func (a *Accumulator) Remainder() float64 {
	return float64(a.acc) / float64(a.rate) / float64(time.Second)
}

// TotalSteps returns the number of steps produced since creation.
func (a *Accumulator) TotalSteps() uint64 {
	return a.steps
}

// Reset forgets accumulated time and the last timestamp.
func (a *Accumulator) Reset() {
	a.acc = 0
	a.last = 0
	a.started = false
}
