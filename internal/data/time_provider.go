package data

import "time"

// TimeProvider supplies timestamps for writes so tests can pin them.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider uses system time.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider returns a settable fixed time for tests.
type FixedTimeProvider struct {
	fixed time.Time
}

// NewFixedTimeProvider creates a FixedTimeProvider pinned at t.
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{fixed: t}
}

func (f *FixedTimeProvider) Now() time.Time {
	return f.fixed
}

// SetTime pins the provider at t.
func (f *FixedTimeProvider) SetTime(t time.Time) {
	f.fixed = t
}

// AddTime advances the fixed time by d.
func (f *FixedTimeProvider) AddTime(d time.Duration) {
	f.fixed = f.fixed.Add(d)
}
