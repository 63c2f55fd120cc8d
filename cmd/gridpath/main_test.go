package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/cli"
)

const passing = `
grid "hall" {
  rows = [
    "S.#",
    "..G",
  ]
  search "direct" {}
}

graph "pair" {
  matrix  = [[0, 2], [0, 0]]
  targets = [1]
}
`

const failing = `
grid "hall" {
  rows = ["S.G"]
  search "off" {
    start = [0, 0]
    goal  = [9, 0]
  }
}
`

// writeScenario stores src in a temporary .hcl file and returns its path.
func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

// exitCode extracts the code of an *cli.ExitError.
func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "want *cli.ExitError, got %v", err)

	return exitErr.Code
}

func TestRun_Help(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer

	require.NoError(t, run(&out, &logs, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{"--no-such-flag"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, exitCode(t, err))
	assert.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRun_Passing(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer
	path := writeScenario(t, passing)

	require.NoError(t, run(&out, &logs, []string{"-log-level", "debug", path}))
	assert.Contains(t, out.String(), "== "+path)
	assert.Contains(t, out.String(), "search hall/direct: cost 3, 4 cells")
	assert.Contains(t, out.String(), "graph pair: source 0")
	assert.Contains(t, out.String(), "path to 1: [0 1]")
	assert.NotEmpty(t, logs.String())
}

func TestRun_FailingItem(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer
	path := writeScenario(t, failing)

	err := run(&out, &logs, []string{path})
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
	assert.Contains(t, out.String(), "search hall/off: error:")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{filepath.Join(t.TempDir(), "absent.hcl")})
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
}
