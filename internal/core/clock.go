package core

import "time"

// TickDuration is the simulated length of one tick.
const TickDuration = 16 * time.Millisecond

// FixedStep converts variable wall-clock frame times into a whole number of
// fixed simulation ticks. Leftover time carries over to the next frame, so
// a fast host may run zero ticks between two renders and a slow one several.
type FixedStep struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStep creates an accumulator draining in steps of the given length.
// maxSteps caps the ticks returned by a single Advance call; 0 means no cap.
func NewFixedStep(step time.Duration, maxSteps int) *FixedStep {
	if step <= 0 {
		step = TickDuration
	}
	return &FixedStep{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed wall-clock time and returns how many ticks to run now.
// When the cap is hit the backlog is dropped instead of carried forward.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.acc += elapsed
	}

	n := 0
	for f.acc >= f.step {
		f.acc -= f.step
		n++
		if f.maxSteps > 0 && n == f.maxSteps {
			f.acc %= f.step
			break
		}
	}
	return n
}

// Reset discards any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
