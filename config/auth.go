package config

import "time"

// AuthConfig groups authentication and session cookie configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens. Must be at least 32 bytes.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is how long a session token stays valid.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"168h"`

	// CookieSecure marks the session cookie Secure. Forced on outside
	// development so tokens never travel over plain HTTP in production.
	CookieSecure bool `env:"AUTH_COOKIE_SECURE" envDefault:"true"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize(isDev bool) {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 168 * time.Hour
	}
	if !isDev {
		a.CookieSecure = true
	}
}
