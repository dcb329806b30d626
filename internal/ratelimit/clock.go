package ratelimit

import "time"

// Clock provides the current time; pluggable so limiter behavior can be
// tested without sleeping.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a settable time for tests.
type FixedClock struct {
	now time.Time
}

// NewFixedClock creates a FixedClock pinned at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (f *FixedClock) Now() time.Time {
	return f.now
}

// SetTime pins the clock at t.
func (f *FixedClock) SetTime(t time.Time) {
	f.now = t
}

// Advance moves the clock forward by d.
func (f *FixedClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
