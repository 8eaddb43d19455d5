package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/config"
)

type upstreamConfig struct {
	BaseURL string        `env:"TEST_UPSTREAM_URL" envDefault:"http://localhost:8000/api"`
	Timeout time.Duration `env:"TEST_UPSTREAM_TIMEOUT" envDefault:"10s"`
	Retries uint64        `env:"TEST_UPSTREAM_RETRIES" envDefault:"2"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	FromFile string `env:"TEST_FROM_ENV_FILE"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		var cfg upstreamConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, uint64(2), cfg.Retries)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("TEST_UPSTREAM_URL", "https://api.example.com")
		t.Setenv("TEST_UPSTREAM_TIMEOUT", "250ms")

		var cfg upstreamConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *upstreamConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("TEST_REQUIRED_VALUE", "now set")
	require.NoError(t, config.Load(&cfg), "a failed load can be retried")
	assert.Equal(t, "now set", cfg.Required)

	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FROM_ENV_FILE=from file\n"), 0o600))
	t.Setenv("TEST_FROM_ENV_FILE", "")
	os.Unsetenv("TEST_FROM_ENV_FILE")

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from file", cfg.FromFile)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadEnv())
}
