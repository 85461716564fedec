package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[server]
url = "http://shelf.local:13378"
token = "secret-token"
library_id = "lib-1"
scan_wait_seconds = 30

[downloads]
program = "Libation"
source_dir = "/downloads"
max_age_days = 14
copy_mode = true
libation_cleanup = true

[library]
dest_dir = "/library"

[history]
path = "/var/lib/audiarr/history.db"

[notifications]
desktop = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://shelf.local:13378", cfg.Server.URL)
	assert.Equal(t, "secret-token", cfg.Server.Token)
	assert.Equal(t, "lib-1", cfg.Server.LibraryID)
	assert.Equal(t, 30, cfg.Server.ScanWaitSeconds)
	assert.Equal(t, "Libation", cfg.Downloads.Program)
	assert.Equal(t, "/downloads", cfg.Downloads.SourceDir)
	assert.Equal(t, 14, cfg.Downloads.MaxAgeDays)
	assert.True(t, cfg.Downloads.CopyMode)
	assert.True(t, cfg.Downloads.LibationCleanup)
	assert.Equal(t, "/library", cfg.Library.DestDir)
	assert.Equal(t, "/var/lib/audiarr/history.db", cfg.History.Path)
	assert.True(t, cfg.Notifications.Desktop)
	assert.Nil(t, cfg.AI)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
url = "http://shelf.local"
`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "OpenAudible", cfg.Downloads.Program)
	assert.Equal(t, ".m4b", cfg.Downloads.Extension)
	assert.Equal(t, 7, cfg.Downloads.MaxAgeDays)
	assert.Equal(t, 15, cfg.Server.ScanWaitSeconds)
	assert.Equal(t, 2, cfg.Server.MatchDelaySeconds)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("AUDIARR_TEST_TOKEN", "env-token")

	cfg, err := Load(writeConfig(t, `
[server]
token = "${AUDIARR_TEST_TOKEN}"
url = "${AUDIARR_TEST_UNSET_VAR}"
`))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Server.Token)
	// Unset variables pass through unchanged.
	assert.Equal(t, "${AUDIARR_TEST_UNSET_VAR}", cfg.Server.URL)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, `
[downloads]
source_dir = "~/OpenAudible/books"
`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "OpenAudible", "books"), cfg.Downloads.SourceDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, `[server`))
	assert.Error(t, err)
}

func TestLoad_AISection(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[ai]
provider = "perplexity"
api_key = "pplx-key"
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.AI)
	assert.Equal(t, "perplexity", cfg.AI.Provider)
	assert.Equal(t, "pplx-key", cfg.AI.APIKey)
}
