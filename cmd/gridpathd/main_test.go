package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "loud")
	var logs bytes.Buffer

	err := run(context.Background(), &logs, []string{"-env", filepath.Join(t.TempDir(), "absent.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")

	t.Chdir(t.TempDir())
	err = run(context.Background(), &logs, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_BadFlag(t *testing.T) {
	var logs bytes.Buffer
	require.Error(t, run(context.Background(), &logs, []string{"-port", "1"}))
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvAddr, "127.0.0.1:0")
	t.Setenv(config.EnvGinMode, "test")
	var logs bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, run(ctx, &logs, nil))
	assert.Contains(t, logs.String(), "Configuration loaded.")
}
