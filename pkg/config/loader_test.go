package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("loads values from environment", func(t *testing.T) {
		type testConfig struct {
			Name    string        `env:"TEST_CFG_NAME"`
			Port    int           `env:"TEST_CFG_PORT" envDefault:"8080"`
			Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"5s"`
		}

		t.Setenv("TEST_CFG_NAME", "launchbase")
		t.Setenv("TEST_CFG_TIMEOUT", "30s")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "launchbase", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"TEST_CFG_MISSING_SECRET,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[struct{}](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
