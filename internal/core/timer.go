package core

import "time"

// FixedStep paces a host loop at a steady ticks-per-second rate. A zero or
// negative rate disables pacing.
type FixedStep struct {
	step time.Duration
	next time.Time
	now  func() time.Time
	wait func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, wait: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval reports the current tick length; zero means unpaced.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Wait blocks until the next tick is due. Ticks missed while the caller was
// busy are dropped rather than replayed.
func (f *FixedStep) Wait() {
	if f.step == 0 {
		return
	}
	now := f.now()
	if f.next.IsZero() || now.After(f.next) {
		f.next = now.Add(f.step)
		return
	}
	f.wait(f.next.Sub(now))
	f.next = f.next.Add(f.step)
}
