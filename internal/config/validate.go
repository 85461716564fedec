package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validPrograms = map[string]bool{
	"openaudible": true, "libation": true,
}

var validAIProviders = map[string]bool{
	"openai": true, "perplexity": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	// Server validation
	if c.Server.URL == "" {
		errs = append(errs, "server.url: required")
	}
	if c.Server.Token == "" {
		errs = append(errs, "server.token: required")
	}
	if c.Server.LibraryID == "" {
		errs = append(errs, "server.library_id: required")
	}

	// Downloads validation
	program := strings.ToLower(c.Downloads.Program)
	if !validPrograms[program] {
		errs = append(errs, fmt.Sprintf("downloads.program: must be OpenAudible or Libation; got %q", c.Downloads.Program))
	}
	if c.Downloads.SourceDir == "" {
		errs = append(errs, "downloads.source_dir: required")
	}
	if c.Downloads.ManifestPath == "" {
		errs = append(errs, "downloads.manifest_path: required")
	}
	if ext := c.Downloads.Extension; ext != "" && !strings.HasPrefix(ext, ".") {
		errs = append(errs, fmt.Sprintf("downloads.extension: must start with a dot, got %q", ext))
	}
	if c.Downloads.MaxAgeDays < -1 {
		errs = append(errs, fmt.Sprintf("downloads.max_age_days: must be -1 (no filter) or >= 0, got %d", c.Downloads.MaxAgeDays))
	}

	if c.Library.DestDir == "" {
		errs = append(errs, "library.dest_dir: required")
	}

	// AI validation
	if c.AI != nil {
		if !validAIProviders[strings.ToLower(c.AI.Provider)] {
			errs = append(errs, fmt.Sprintf("ai.provider: must be one of openai, perplexity; got %q", c.AI.Provider))
		}
		if c.AI.APIKey == "" {
			errs = append(errs, "ai.api_key: required when ai is configured")
		}
	}

	// Path warnings (non-fatal at load time, surfaced with the rest)
	if c.Downloads.SourceDir != "" {
		if _, err := os.Stat(c.Downloads.SourceDir); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("downloads.source_dir: warning: directory %q does not exist", c.Downloads.SourceDir))
		}
	}
	if c.Library.DestDir != "" {
		if _, err := os.Stat(c.Library.DestDir); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("library.dest_dir: warning: directory %q does not exist", c.Library.DestDir))
		}
	}

	return errs
}
