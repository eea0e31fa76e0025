package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

type loadOptions struct {
	prefix   string
	envFiles []string
	environ  map[string]string
}

// Option configures Load.
type Option func(*loadOptions)

// WithPrefix parses only variables carrying the prefix, e.g. "STATETOOLS_".
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// an error. Without this option the default .env is loaded when present.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithEnviron parses the given map instead of the process environment.
// Mostly useful in tests.
func WithEnviron(environ map[string]string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// Load parses environment variables into a new T using `env` and
// `envDefault` struct tags.
//
//	type Config struct {
//		Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//		TTL  time.Duration `env:"SESSION_TTL" envDefault:"1h"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...Option) (T, error) {
	var (
		cfg T
		o   loadOptions
	)
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return cfg, errors.Join(ErrLoadingEnvFile, err)
		}
	} else if o.environ == nil {
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional.
			_ = godotenv.Load()
		})
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
