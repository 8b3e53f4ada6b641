package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load parses environment variables into the provided configuration struct
// based on its `env:` field tags. A .env file in the working directory is
// loaded once per process if present; a missing file is not an error.
//
// Example:
//
//	type MongoConfig struct {
//		URL string `env:"MONGODB_URL,required"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// The .env file is a development convenience only.
		_ = godotenv.Load()
	})

	if cfg == nil {
		return ErrNilPointer
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
