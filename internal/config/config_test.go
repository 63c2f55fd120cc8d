package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(map[string]string{
		config.EnvAddr:          "127.0.0.1:9000",
		config.EnvLogLevel:      "DEBUG",
		config.EnvLogFormat:     "json",
		config.EnvGinMode:       "test",
		config.EnvSearchTimeout: "250ms",
		config.EnvMaxCells:      "4096",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Addr:          "127.0.0.1:9000",
		LogLevel:      "debug",
		LogFormat:     "json",
		GinMode:       "test",
		SearchTimeout: 250 * time.Millisecond,
		MaxCells:      4096,
	}, cfg)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]string{
		config.EnvLogLevel:      "loud",
		config.EnvLogFormat:     "xml",
		config.EnvGinMode:       "prod",
		config.EnvSearchTimeout: "soon",
		config.EnvMaxCells:      "-1",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := config.FromLookup(lookupFrom(map[string]string{key: val}))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), key)
		})
	}
	_, err := config.FromLookup(lookupFrom(map[string]string{config.EnvSearchTimeout: "0s"}))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_MAX_CELLS=77\nGRIDPATH_ADDR=:7070\n"), 0o600))
	t.Setenv(config.EnvAddr, ":6060") // the process environment wins
	t.Cleanup(func() { os.Unsetenv(config.EnvMaxCells) })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.MaxCells)
	assert.Equal(t, ":6060", cfg.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := config.Load()
	assert.NoError(t, err)
}
