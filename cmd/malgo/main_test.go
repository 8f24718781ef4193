package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.mal")
	require.NoError(t, os.WriteFile(path, []byte(`(def! x (+ 1 2)) (prn x)`), 0o644))

	code := run([]string{path})
	assert.Equal(t, ExitSuccess, code)
}

func TestRunScriptMissingFileIsFailure(t *testing.T) {
	code := run([]string{filepath.Join(t.TempDir(), "nope.mal")})
	assert.Equal(t, ExitFailure, code)
}

func TestRunScriptUncaughtThrowIsFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "throws.mal")
	require.NoError(t, os.WriteFile(path, []byte(`(throw "boom")`), 0o644))

	code := run([]string{path})
	assert.Equal(t, ExitFailure, code)
}

func TestRunScriptBindsArgv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "argv.mal")
	require.NoError(t, os.WriteFile(path, []byte(`(prn (count *ARGV*))`), 0o644))

	code := run([]string{path, "a", "b"})
	assert.Equal(t, ExitSuccess, code)
}
