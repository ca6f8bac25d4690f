package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/forkliftgo/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

func TestRun_LayoutFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "warehouse.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0600), "failed to set up test file")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{"-log-format", "json", path})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "floor \"warehouse\":\n - reachable: 13\n - removed: 43\n", out.String())
	assert.Contains(t, logs.String(), `"msg":"Removal finished."`, "logs go to the log writer only")
	assert.Contains(t, logs.String(), `"floor":"warehouse"`)
	assert.NotContains(t, out.String(), "msg")
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.txt"), []byte(sampleLayout), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "floors.hcl"), []byte(`
floor "east" {
  layout = file("sample.txt")
}
`), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-c", dir})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "floor \"east\":\n - reachable: 13\n - removed: 43\n", out.String())
}

func TestRun_AppError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error fails while loading the floors.
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(`floor "a" {`), 0600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", filePath})

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "application errors map to exit code 1, not a usage error")
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
