package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAlwaysApply(t *testing.T) {
	dir := t.TempDir()

	m, err := NewMatcher(dir, ".ritignore", ".rit", ".git")
	require.NoError(t, err)

	assert.True(t, m.Match(".rit", true))
	assert.True(t, m.Match(".git", true))
	assert.False(t, m.Match("main.go", false))
}

func TestIgnoreFilePatterns(t *testing.T) {
	dir := t.TempDir()
	contents := "*.log\nbuild/\n!important.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ritignore"), []byte(contents), 0644))

	m, err := NewMatcher(dir, ".ritignore", ".rit")
	require.NoError(t, err)

	assert.True(t, m.Match("debug.log", false))
	assert.True(t, m.Match("sub/debug.log", false))
	assert.False(t, m.Match("important.log", false))
	assert.True(t, m.Match("build", true), "directory pattern matches the directory itself")
	assert.False(t, m.Match("build", false), "directory pattern does not match a plain file")
	assert.True(t, m.Match(".rit", true), "defaults survive a user ignore file")
}

func TestMissingIgnoreFile(t *testing.T) {
	m, err := NewMatcher(t.TempDir(), ".ritignore", ".rit")
	require.NoError(t, err)
	assert.False(t, m.Match("anything.txt", false))
}
