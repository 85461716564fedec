package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir emulates testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestDiscover_EnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
	t.Setenv("AUDIARR_CONFIG", path)

	found, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("AUDIARR_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	_, err := Discover()
	assert.Error(t, err)
}

func TestDiscover_XDGConfigHome(t *testing.T) {
	t.Setenv("AUDIARR_CONFIG", "")
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	path := filepath.Join(configHome, "audiarr", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	// Run from a directory without a local audiarr.toml.
	chdir(t, t.TempDir())

	found, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestDiscover_CurrentDirectory(t *testing.T) {
	t.Setenv("AUDIARR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "audiarr.toml"), []byte(""), 0644))
	chdir(t, dir)

	found, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./audiarr.toml", found)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "audiarr", "config.toml"), DefaultPath())
}
