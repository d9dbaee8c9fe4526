package main

import (
	"time"

	"github.com/dmitrymomot/emailguess/pkg/deliverability"
	"github.com/dmitrymomot/emailguess/pkg/httpserver"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/ratelimiter"
	"github.com/dmitrymomot/emailguess/pkg/redis"
)

// Config is the environment driven application configuration.
type Config struct {
	Log    logger.Config
	HTTP   httpserver.Config
	Redis  redis.Config
	API    deliverability.APIConfig
	MX     deliverability.MXConfig
	Finder FinderConfig
	Cache  CacheConfig

	// Throttle limits calls to the remote API per domain.
	Throttle ratelimiter.Config `envPrefix:"EMAILGUESS_THROTTLE_"`
	// RateLimit limits HTTP requests per client IP.
	RateLimit ratelimiter.Config `envPrefix:"HTTP_RATE_LIMIT_"`
}

type FinderConfig struct {
	Checker      string        `env:"EMAILGUESS_CHECKER" envDefault:"mx"`
	Concurrency  int           `env:"EMAILGUESS_CONCURRENCY" envDefault:"4"`
	CheckTimeout time.Duration `env:"EMAILGUESS_CHECK_TIMEOUT" envDefault:"5s"`
	Unavailable  string        `env:"EMAILGUESS_UNAVAILABLE_POLICY" envDefault:"invalid"`
	FallbackMX   bool          `env:"EMAILGUESS_FALLBACK_MX" envDefault:"true"`
	MaxNames     int           `env:"EMAILGUESS_MAX_NAMES" envDefault:"100"`
}

// CacheConfig sizes the in-process result cache used when Redis is not
// configured. TTL applies to both stores.
type CacheConfig struct {
	Size int           `env:"EMAILGUESS_CACHE_SIZE" envDefault:"4096"`
	TTL  time.Duration `env:"EMAILGUESS_CACHE_TTL" envDefault:"24h"`
}
