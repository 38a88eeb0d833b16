package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilConfig = errors.New("config: nil destination")
	ErrParse     = errors.New("config: failed to parse environment")
)

var (
	dotenvOnce sync.Once

	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)
)

// Load fills cfg from environment variables using `env` struct tags.
// The first call for a type parses the environment; later calls for the same
// type copy the cached value. A .env file in the working directory is loaded
// once, before the first parse, without overriding variables already set.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	typ := reflect.TypeFor[T]()

	mu.RLock()
	cached, ok := cache[typ]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	dotenvOnce.Do(loadDotEnv)

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock.
	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	cache[typ] = loaded
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

func loadDotEnv() {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()
}

// reset drops cached values. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
