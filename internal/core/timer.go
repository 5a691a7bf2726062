package core

import "time"

const (
	// maxCatchUp bounds how many steps Due reports after a long stall.
	maxCatchUp = 64
	// MaxRate is the fastest step rate SetRate accepts.
	MaxRate = 10_000
)

// FixedStep paces machine steps at a steady rate independent of how often the
// caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given steps per
// second. The first poll always yields one step.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(sps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60 and
// rates above MaxRate are capped.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	sps = min(sps, MaxRate)
	f.step = time.Second / time.Duration(sps)
}

// Rate returns the current steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due reports how many steps have elapsed since the previous poll at now.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == maxCatchUp {
		f.accumulator = 0
	}
	return n
}
