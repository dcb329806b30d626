package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = Policy{Window: time.Minute, Max: 5}

func newTestLimiter() (*Limiter, *FixedClock) {
	clock := NewFixedClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	return NewWithClock(clock), clock
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter()

	for i := range 5 {
		res := l.Check("1.2.3.4", testPolicy)
		require.True(t, res.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 4-i, res.Remaining)
	}

	res := l.Check("1.2.3.4", testPolicy)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()

	for range 5 {
		l.Check("1.2.3.4", testPolicy)
	}
	require.False(t, l.Check("1.2.3.4", testPolicy).Allowed)

	res := l.Check("5.6.7.8", testPolicy)
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
}

func TestLimiterWindowReset(t *testing.T) {
	l, clock := newTestLimiter()

	for range 6 {
		l.Check("1.2.3.4", testPolicy)
	}
	require.False(t, l.Check("1.2.3.4", testPolicy).Allowed)

	// A request landing exactly at the reset instant opens a new window.
	clock.Advance(time.Minute)
	res := l.Check("1.2.3.4", testPolicy)
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
	assert.Equal(t, clock.Now().Add(time.Minute), res.ResetAt)
}

func TestLimiterDenialKeepsResetTime(t *testing.T) {
	l, clock := newTestLimiter()
	start := clock.Now()

	for range 5 {
		l.Check("1.2.3.4", testPolicy)
	}

	clock.Advance(30 * time.Second)
	res := l.Check("1.2.3.4", testPolicy)
	require.False(t, res.Allowed)
	assert.Equal(t, start.Add(time.Minute), res.ResetAt)
	assert.Equal(t, 30, res.RetryAfter)
}

func TestLimiterSweepsExpiredWindows(t *testing.T) {
	l, clock := newTestLimiter()

	for i := range 10 {
		l.Check(fmt.Sprintf("10.0.0.%d", i), testPolicy)
	}
	assert.Equal(t, 10, l.Len())

	clock.Advance(2 * time.Minute)
	l.Check("fresh", testPolicy)
	assert.Equal(t, 1, l.Len())
}

func TestLimiterRetryAfterNeverBelowOne(t *testing.T) {
	l, clock := newTestLimiter()
	for range testPolicy.Max {
		l.Check("1.2.3.4", testPolicy)
	}

	// 200ms left in the window still rounds up to a full second.
	clock.Advance(testPolicy.Window - 200*time.Millisecond)
	res := l.Check("1.2.3.4", testPolicy)
	require.False(t, res.Allowed)
	assert.Equal(t, 1, res.RetryAfter)
}

func TestLimiterConcurrentAccess(t *testing.T) {
	l := New()
	policy := Policy{Window: time.Minute, Max: 1000}

	var wg sync.WaitGroup
	allowed := make([]int, 8)
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if l.Check("shared", policy).Allowed {
					allowed[g]++
				}
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, n := range allowed {
		total += n
	}
	assert.Equal(t, 400, total)
}
