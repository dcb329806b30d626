package config

import (
	"os"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.PostTTL)
	assert.Equal(t, time.Minute, cfg.Cache.PageTTL)
}

func TestAppConfigRequiresJWTSecret(t *testing.T) {
	if prev, ok := os.LookupEnv("JWT_SECRET"); ok {
		require.NoError(t, os.Unsetenv("JWT_SECRET"))
		t.Cleanup(func() { _ = os.Setenv("JWT_SECRET", prev) })
	}

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestDBConfigDSN(t *testing.T) {
	d := DBConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "api",
		Password: "pw",
		Name:     "blog",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=api password=pw dbname=blog sslmode=require",
		d.DSN())
}

func TestRateLimitPolicies(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	login := cfg.RateLimit.LoginPolicy()
	assert.Equal(t, 15*time.Minute, login.Window)
	assert.Equal(t, 5, login.Max)

	content := cfg.RateLimit.ContentPolicy()
	assert.Equal(t, 5*time.Minute, content.Window)
	assert.Equal(t, 3, content.Max)

	def := cfg.RateLimit.DefaultPolicy()
	assert.Equal(t, time.Minute, def.Window)
	assert.Equal(t, 10, def.Max)
}

func TestRateLimitSanitizeClampsBadValues(t *testing.T) {
	r := RateLimitConfig{LoginMax: -1, DefaultWindow: -time.Second}
	r.Sanitize()

	assert.Equal(t, 5, r.LoginMax)
	assert.Equal(t, time.Minute, r.DefaultWindow)
	assert.Equal(t, 3, r.ContentMax)
}

func TestSanitizeForcesSecureCookieOutsideDev(t *testing.T) {
	cfg := AppConfig{IsDev: false}
	cfg.Auth.CookieSecure = false
	cfg.Sanitize()
	assert.True(t, cfg.Auth.CookieSecure)

	dev := AppConfig{IsDev: true}
	dev.Auth.CookieSecure = false
	dev.Sanitize()
	assert.False(t, dev.Auth.CookieSecure)
}

func TestDetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}
