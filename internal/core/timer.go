package core

import (
	"math"
	"time"
)

// FixedStep describes a steady ticks-per-second simulation clock.
type FixedStep struct {
	tps  int
	step time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// DT returns the length of one tick in seconds.
func (f *FixedStep) DT() float64 { return f.step.Seconds() }

// Ticks returns how many ticks are needed to cover d.
func (f *FixedStep) Ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()*float64(f.tps) - 1e-9))
}
