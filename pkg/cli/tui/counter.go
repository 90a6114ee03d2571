package tui

import "time"

// counterDuration is how long a summary counter takes to count up to
// its target.
const counterDuration = 900 * time.Millisecond

// Counter animates a value counting up from zero to a target. The
// current value is a pure function of the clock, so redraw ticks carry
// no state and a dropped frame can never corrupt the final value.
type Counter struct {
	target int
	start  time.Time
	dur    time.Duration
}

// NewCounter starts a count-up toward target at now.
func NewCounter(target int, now time.Time) Counter {
	return Counter{target: target, start: now, dur: counterDuration}
}

// ValueAt returns the linearly interpolated value at now, clamped to
// zero before the start and to the target once the duration elapsed.
func (c Counter) ValueAt(now time.Time) int {
	if c.target <= 0 || c.dur <= 0 {
		return c.target
	}
	elapsed := now.Sub(c.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= c.dur {
		return c.target
	}
	return int(float64(c.target) * float64(elapsed) / float64(c.dur))
}

// Done reports whether the counter has reached its target at now.
func (c Counter) Done(now time.Time) bool {
	return c.target <= 0 || now.Sub(c.start) >= c.dur
}

// Target returns the final value the counter is heading to.
func (c Counter) Target() int {
	return c.target
}
