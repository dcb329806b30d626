// Package ratelimit implements a fixed-window request limiter keyed by
// caller identity. State is process-local; each instance counts
// independently.
package ratelimit

import (
	"sync"
	"time"
)

// Policy names a window size and the number of requests allowed within it.
type Policy struct {
	Window time.Duration
	Max    int
}

// Result reports the outcome of a limiter check. RetryAfter is the
// whole seconds until the window resets, rounded up and never below 1,
// measured against the limiter's own clock; it is only set on a denied
// result.
type Result struct {
	Allowed    bool
	Remaining  int
	ResetAt    time.Time
	RetryAfter int
}

func retryAfterSeconds(resetAt, now time.Time) int {
	d := resetAt.Sub(now)
	if d <= 0 {
		return 1
	}
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per key in fixed windows. A key's first request
// opens a window; the request that lands at or after the window's reset
// time opens a fresh one. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]window
	clock   Clock
}

// New creates a Limiter backed by the system clock.
func New() *Limiter {
	return NewWithClock(RealClock{})
}

// NewWithClock creates a Limiter with a custom clock.
func NewWithClock(clock Clock) *Limiter {
	return &Limiter{
		windows: make(map[string]window),
		clock:   clock,
	}
}

// Check records one request for key under the given policy and reports
// whether it is allowed. Expired windows for other keys are swept on
// every call so the map only holds live entries.
func (l *Limiter) Check(key string, p Policy) Result {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
		}
	}

	w, ok := l.windows[key]
	if !ok {
		w = window{count: 1, resetAt: now.Add(p.Window)}
		l.windows[key] = w
		return Result{Allowed: true, Remaining: p.Max - 1, ResetAt: w.resetAt}
	}

	if w.count >= p.Max {
		return Result{
			Allowed:    false,
			Remaining:  0,
			ResetAt:    w.resetAt,
			RetryAfter: retryAfterSeconds(w.resetAt, now),
		}
	}

	w.count++
	l.windows[key] = w
	return Result{Allowed: true, Remaining: p.Max - w.count, ResetAt: w.resetAt}
}

// Len reports the number of live windows. Exposed for tests.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
