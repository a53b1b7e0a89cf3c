package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache        sync.Map // reflect.Type -> *entry
	dotenvLoaded sync.Once
)

func loadDotenv() {
	dotenvLoaded.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})
}

// LoadDotenv reads the given files into the process environment without
// overriding variables that are already set. Unlike the implicit .env read
// done by Load, a missing file is an error.
func LoadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load dotenv: %w", err)
	}
	return nil
}

// Load fills v from the environment. Each type T is parsed once; later calls
// copy the cached value. A failed parse is cached too.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	key := reflect.TypeFor[T]()
	actual, _ := cache.LoadOrStore(key, &entry{})
	e := actual.(*entry)

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// Parse fills v from the environment without caching.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
