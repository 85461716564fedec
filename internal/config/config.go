// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	Server        ServerConfig        `toml:"server"`
	Downloads     DownloadsConfig     `toml:"downloads"`
	Library       LibraryConfig       `toml:"library"`
	History       HistoryConfig       `toml:"history"`
	Notifications NotificationsConfig `toml:"notifications"`
	AI            *AIConfig           `toml:"ai"`
}

// ServerConfig points at the AudioBookShelf server.
type ServerConfig struct {
	URL             string `toml:"url"`
	Token           string `toml:"token"`
	LibraryID       string `toml:"library_id"`
	ScanWaitSeconds int    `toml:"scan_wait_seconds"`   // pause after triggering a scan
	MatchDelaySeconds int  `toml:"match_delay_seconds"` // pause before each match request
}

// DownloadsConfig describes the download tool's output.
type DownloadsConfig struct {
	Program           string `toml:"program"` // OpenAudible or Libation
	ManifestPath      string `toml:"manifest_path"`
	SourceDir         string `toml:"source_dir"`
	Extension         string `toml:"extension"`
	MaxAgeDays        int    `toml:"max_age_days"` // 0 places everything
	CopyMode          bool   `toml:"copy_mode"`
	LibationCleanup   bool   `toml:"libation_cleanup"`
	FileLocationsPath string `toml:"file_locations_path"`
}

// LibraryConfig is the organized library destination.
type LibraryConfig struct {
	DestDir string `toml:"dest_dir"`
}

// HistoryConfig controls the placement history database.
type HistoryConfig struct {
	Path string `toml:"path"` // empty disables history
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Desktop bool `toml:"desktop"`
}

// AIConfig configures the optional book lookup provider.
type AIConfig struct {
	Provider string `toml:"provider"` // openai or perplexity
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"` // optional OpenAI-compatible endpoint
	Model    string `toml:"model"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandPaths()
	return &cfg, nil
}

// expandPaths resolves a leading ~/ in every path field.
func (c *Config) expandPaths() {
	for _, p := range []*string{
		&c.LogFile,
		&c.Downloads.ManifestPath,
		&c.Downloads.SourceDir,
		&c.Downloads.FileLocationsPath,
		&c.Library.DestDir,
		&c.History.Path,
	} {
		*p = expandHome(*p)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Downloads.Program == "" {
		c.Downloads.Program = "OpenAudible"
	}
	if c.Downloads.Extension == "" {
		c.Downloads.Extension = ".m4b"
	}
	if c.Downloads.MaxAgeDays == 0 {
		c.Downloads.MaxAgeDays = 7
	}
	if c.Server.ScanWaitSeconds == 0 {
		c.Server.ScanWaitSeconds = 15
	}
	if c.Server.MatchDelaySeconds == 0 {
		c.Server.MatchDelaySeconds = 2
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
