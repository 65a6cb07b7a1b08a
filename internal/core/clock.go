package core

import "time"

// StepClock runs simulation updates at a steady ticks-per-second rate and
// keeps a measured rate for status displays.
type StepClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	rateMark  time.Time
	rateCount int
	measured  float64
}

// NewStepClock constructs a clock targeting the given TPS.
func NewStepClock(tps int) *StepClock {
	if tps <= 0 {
		tps = 60
	}
	c := &StepClock{}
	c.SetTPS(tps)
	c.accumulator = c.step
	return c
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (c *StepClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	c.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
// Calling it repeatedly drains any backlog one step at a time.
func (c *StepClock) ShouldStep() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		c.rateMark = now
	}
	delta := now.Sub(c.last)
	c.last = now
	c.accumulator += delta
	if c.accumulator < c.step {
		return false
	}
	c.accumulator -= c.step
	c.rateCount++
	if elapsed := now.Sub(c.rateMark); elapsed >= time.Second {
		c.measured = float64(c.rateCount) / elapsed.Seconds()
		c.rateCount = 0
		c.rateMark = now
	}
	return true
}

// Settle drops any accumulated backlog, for resuming after a pause.
func (c *StepClock) Settle() {
	c.accumulator = 0
	c.last = time.Now()
}

// MeasuredTPS returns the recent granted-step rate, refreshed about once
// per second.
func (c *StepClock) MeasuredTPS() float64 { return c.measured }
