package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	tests := []struct {
		name     string
		frames   []time.Duration
		ticks    []int
		leftover time.Duration // Carried into the next frame
	}{
		{
			name:     "exact multiples",
			frames:   []time.Duration{16 * time.Millisecond, 32 * time.Millisecond},
			ticks:    []int{1, 2},
			leftover: 0,
		},
		{
			name:     "fast frames accumulate",
			frames:   []time.Duration{7 * time.Millisecond, 7 * time.Millisecond, 7 * time.Millisecond},
			ticks:    []int{0, 0, 1},
			leftover: 5 * time.Millisecond,
		},
		{
			name:     "slow frame runs several ticks",
			frames:   []time.Duration{50 * time.Millisecond},
			ticks:    []int{3},
			leftover: 2 * time.Millisecond,
		},
		{
			name:     "negative elapsed ignored",
			frames:   []time.Duration{-time.Second, 16 * time.Millisecond},
			ticks:    []int{0, 1},
			leftover: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := NewFixedStep(TickDuration, 0)
			for i, d := range tc.frames {
				if got := fs.Advance(d); got != tc.ticks[i] {
					t.Errorf("frame %d: Advance(%v) = %d, expected %d", i, d, got, tc.ticks[i])
				}
			}

			// The leftover plus just under one more tick must not be enough.
			short := TickDuration - tc.leftover - time.Nanosecond
			if got := fs.Advance(short); got != 0 {
				t.Errorf("Advance(%v) after frames = %d, expected 0", short, got)
			}
			if got := fs.Advance(time.Nanosecond); got != 1 {
				t.Errorf("leftover should complete a tick, got %d", got)
			}
		})
	}
}

func TestFixedStepCap(t *testing.T) {
	fs := NewFixedStep(TickDuration, 4)

	// A long stall must not produce a burst of catch-up ticks.
	if got := fs.Advance(time.Second + 3*time.Millisecond); got != 4 {
		t.Errorf("Advance after stall = %d, expected 4", got)
	}
	// 1003ms - 4 ticks leaves 11ms once the backlog is dropped.
	if got := fs.Advance(4 * time.Millisecond); got != 0 {
		t.Errorf("backlog should be dropped, Advance = %d", got)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs := NewFixedStep(TickDuration, 0)
	fs.Advance(15 * time.Millisecond)

	fs.Reset()
	if got := fs.Advance(15 * time.Millisecond); got != 0 {
		t.Errorf("Reset should discard accumulated time, Advance = %d", got)
	}
	if got := fs.Advance(time.Millisecond); got != 1 {
		t.Errorf("Advance after refill = %d, expected 1", got)
	}
}
