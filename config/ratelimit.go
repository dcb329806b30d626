package config

import (
	"time"

	"github.com/dataetica/dataetica-api/internal/ratelimit"
)

// RateLimitConfig contains the fixed-window policies applied per route
// group. Counters live in process memory, so limits apply per instance.
type RateLimitConfig struct {
	// LoginWindow/LoginMax guard credential attempts per client IP.
	LoginWindow time.Duration `env:"RATE_LIMIT_LOGIN_WINDOW" envDefault:"15m"`
	LoginMax    int           `env:"RATE_LIMIT_LOGIN_MAX"    envDefault:"5"`

	// ContentWindow/ContentMax guard admin content writes.
	ContentWindow time.Duration `env:"RATE_LIMIT_CONTENT_WINDOW" envDefault:"5m"`
	ContentMax    int           `env:"RATE_LIMIT_CONTENT_MAX"    envDefault:"3"`

	// DefaultWindow/DefaultMax guard the remaining public API surface.
	DefaultWindow time.Duration `env:"RATE_LIMIT_DEFAULT_WINDOW" envDefault:"60s"`
	DefaultMax    int           `env:"RATE_LIMIT_DEFAULT_MAX"    envDefault:"10"`
}

// Sanitize applies guardrails to rate limit configuration values.
func (r *RateLimitConfig) Sanitize() {
	if r.LoginWindow <= 0 {
		r.LoginWindow = 15 * time.Minute
	}
	if r.LoginMax <= 0 {
		r.LoginMax = 5
	}
	if r.ContentWindow <= 0 {
		r.ContentWindow = 5 * time.Minute
	}
	if r.ContentMax <= 0 {
		r.ContentMax = 3
	}
	if r.DefaultWindow <= 0 {
		r.DefaultWindow = time.Minute
	}
	if r.DefaultMax <= 0 {
		r.DefaultMax = 10
	}
}

// LoginPolicy returns the policy guarding credential attempts.
func (r RateLimitConfig) LoginPolicy() ratelimit.Policy {
	return ratelimit.Policy{Window: r.LoginWindow, Max: r.LoginMax}
}

// ContentPolicy returns the policy guarding admin content writes.
func (r RateLimitConfig) ContentPolicy() ratelimit.Policy {
	return ratelimit.Policy{Window: r.ContentWindow, Max: r.ContentMax}
}

// DefaultPolicy returns the policy guarding the public API surface.
func (r RateLimitConfig) DefaultPolicy() ratelimit.Policy {
	return ratelimit.Policy{Window: r.DefaultWindow, Max: r.DefaultMax}
}
