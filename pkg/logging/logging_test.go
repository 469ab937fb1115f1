package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestNew_SplitsByLevel(t *testing.T) {
	dir := t.TempDir()
	log, closeFn, err := New(Options{Dir: dir, Debug: true})
	require.NoError(t, err)

	log.Debug("debug line")
	log.Info("info line")
	log.Error("error line")
	require.NoError(t, closeFn())

	debug := readFile(t, filepath.Join(dir, "debug.log"))
	info := readFile(t, filepath.Join(dir, "info.log"))
	errs := readFile(t, filepath.Join(dir, "error.log"))

	assert.Contains(t, debug, "debug line")
	assert.Contains(t, debug, "error line")
	assert.NotContains(t, info, "debug line")
	assert.Contains(t, info, "info line")
	assert.NotContains(t, errs, "info line")
	assert.Contains(t, errs, "error line")
}

func TestNew_DebugOff(t *testing.T) {
	dir := t.TempDir()
	_, closeFn, err := New(Options{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, closeFn())

	_, err = os.Stat(filepath.Join(dir, "debug.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestNew_Disabled(t *testing.T) {
	dir := t.TempDir()
	log, closeFn, err := New(Options{Dir: dir, Disabled: true})
	require.NoError(t, err)
	log.Error("dropped")
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
