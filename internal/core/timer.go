package core

import "time"

// SpeedInterval maps a speed setting to the delay between generations.
// Speed 1 waits 450ms; speed 10 advances on every frame.
func SpeedInterval(speed int) time.Duration {
	s := int(SpeedControl.Clamp(float64(speed)))
	millis := (50.0-500.0)/9.0*float64(s) + 500.0
	return time.Duration(millis * float64(time.Millisecond))
}

// FixedStep decides when an auto-running session should advance.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep for the given speed. The first call to
// ShouldStep fires immediately.
func NewFixedStep(speed int) *FixedStep {
	fs := &FixedStep{}
	fs.SetSpeed(speed)
	fs.Restart()
	return fs
}

// SetSpeed changes the interval without losing accumulated time.
func (f *FixedStep) SetSpeed(speed int) {
	f.step = SpeedInterval(speed)
}

// Interval returns the current delay between generations.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart makes the next ShouldStep call fire and measures time afresh.
func (f *FixedStep) Restart() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether the session should advance by one generation at
// time now. It fires at most once per call.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Don't replay a backlog after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
