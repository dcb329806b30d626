package config

import (
	"fmt"
	"time"
)

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"dataetica"`
	Password string `env:"PASSWORD" envDefault:"dataetica"`
	Name     string `env:"NAME"     envDefault:"dataetica"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// DSN builds a connection string for the pgx stdlib driver.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
	// Enabled toggles the Redis-backed content cache. The API serves
	// straight from Postgres when disabled.
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// CacheConfig contains TTLs for the Redis content cache.
type CacheConfig struct {
	// PostTTL is the TTL for individual published posts.
	PostTTL time.Duration `env:"CACHE_POST_TTL" envDefault:"5m"`

	// PageTTL is the TTL for cached listing pages.
	PageTTL time.Duration `env:"CACHE_PAGE_TTL" envDefault:"1m"`
}
