package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteDefault(path))

	// The shipped default must itself parse.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "OpenAudible", cfg.Downloads.Program)
}

func TestConfigWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	orig := &Config{
		LogLevel: "debug",
		Server:   ServerConfig{URL: "http://shelf.local", Token: "tok", LibraryID: "lib-1"},
		Library:  LibraryConfig{DestDir: "/library"},
	}
	require.NoError(t, orig.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, "http://shelf.local", loaded.Server.URL)
	assert.Equal(t, "/library", loaded.Library.DestDir)
}
