// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		return err
//	}
//
//	type Config struct {
//		Domain      string `env:"EMAILGUESS_DOMAIN"`
//		Concurrency int    `env:"EMAILGUESS_CONCURRENCY" envDefault:"4"`
//	}
//
//	cfg, err := config.Parse[Config]()
//
// Load caches the parsed value per type for the process lifetime; Parse does
// not. ResetCache clears the cache between tests.
package config
