package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var globalCache = &configCache{values: make(map[reflect.Type]any)}

// LoadEnv reads the given .env files into the process environment.
// Variables already set in the environment win over file values, and earlier
// files win over later ones. Without arguments it reads ./.env and ignores a
// missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Parse fills a new T from the environment without touching the cache.
func Parse[T any](opts ...env.Options) (T, error) {
	var v T
	if err := parse(&v, opts...); err != nil {
		return v, err
	}
	return v, nil
}

// Load fills v from the environment. The first successful parse of each type
// is cached and returned by later calls until ResetCache.
//
// Example:
//
//	type CheckerConfig struct {
//		Endpoint string        `env:"EMAILGUESS_API_ENDPOINT,required"`
//		Timeout  time.Duration `env:"EMAILGUESS_API_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg CheckerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed it while we waited.
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := parse(&parsed); err != nil {
		return err
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration. Handy in tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[reflect.Type]any)
}

func parse[T any](v *T, opts ...env.Options) error {
	var err error
	if len(opts) > 0 {
		err = env.ParseWithOptions(v, opts[0])
	} else {
		err = env.Parse(v)
	}
	if err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
