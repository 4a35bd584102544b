package core

import "time"

// FixedStep paces simulation updates so at most one step runs per interval.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that allows one step per interval. A
// non-positive interval lets every call step.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.interval
	return fs
}

// SetInterval changes the pacing interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.interval = interval
}

// Interval returns the current pacing interval.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.interval == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		// Long stalls (window drags, breakpoints) must not trigger a burst of steps.
		if f.accumulator > f.interval {
			f.accumulator = f.interval
		}
		return true
	}
	return false
}
