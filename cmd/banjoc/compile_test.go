package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banjo-lang/banjoc/internal/config"
)

func TestParseOptLevel(t *testing.T) {
	lvl, ok := parseOptLevel("aggressive")
	assert.True(t, ok)
	assert.Equal(t, config.OptAggressive, lvl)

	_, ok = parseOptLevel("bogus")
	assert.False(t, ok)
}

func TestAddSearchPathsAndEntryPointsDerivesModuleNameAndDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.bnj")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o644))

	cfg := config.Default()
	entryPoints, err := addSearchPathsAndEntryPoints(cfg, []string{file})
	require.NoError(t, err)
	require.Len(t, entryPoints, 1)
	assert.Equal(t, "main", entryPoints[0].String())
	assert.Contains(t, cfg.SearchPaths, dir)
}

func TestAddSearchPathsAndEntryPointsDedupsSearchPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bnj")
	b := filepath.Join(dir, "b.bnj")
	require.NoError(t, os.WriteFile(a, []byte(""), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(""), 0o644))

	cfg := config.Default()
	before := len(cfg.SearchPaths)
	_, err := addSearchPathsAndEntryPoints(cfg, []string{a, b})
	require.NoError(t, err)
	assert.Equal(t, before+1, len(cfg.SearchPaths))
}
