package tetris

import "time"

// DefaultBaseTimeout is the fall delay at level 1.
const DefaultBaseTimeout = time.Second

// FallTimer converts wall-clock time into automatic fall signals. It is
// polled once per tick; nothing is scheduled.
type FallTimer struct {
	base       time.Duration
	now        func() time.Time
	lastUpdate time.Time
	threshold  time.Duration
}

// NewFallTimer creates a timer whose first window starts now and lasts half
// of base. Later windows last base divided by the level.
func NewFallTimer(base time.Duration, now func() time.Time) *FallTimer {
	if base <= 0 {
		base = DefaultBaseTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &FallTimer{
		base:       base,
		now:        now,
		lastUpdate: now(),
		threshold:  base / 2,
	}
}

// Poll reports whether the current fall window has elapsed and, if so,
// starts a new one. The threshold for the next poll is always recomputed
// from level, so a level change applies immediately.
func (t *FallTimer) Poll(level int) bool {
	now := t.now()
	fired := false
	if now.Sub(t.lastUpdate) >= t.threshold {
		t.lastUpdate = now
		fired = true
	}
	t.threshold = DelayFor(t.base, level)
	return fired
}

// Threshold returns the current fall delay.
func (t *FallTimer) Threshold() time.Duration {
	return t.threshold
}

// Base returns the level 1 fall delay.
func (t *FallTimer) Base() time.Duration {
	return t.base
}

// DelayFor returns the fall delay for a level.
func DelayFor(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return base / time.Duration(level)
}
