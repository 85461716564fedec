package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./audiarr.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "audiarr", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. AUDIARR_CONFIG environment variable
//  2. ./audiarr.toml (current directory)
//  3. $XDG_CONFIG_HOME/audiarr/config.toml
//  4. /etc/audiarr/config.toml
func Discover() (string, error) {
	// 1. Check AUDIARR_CONFIG env var
	if envPath := os.Getenv("AUDIARR_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("AUDIARR_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	// Build search paths
	paths := []string{
		"./audiarr.toml",
		DefaultPath(),
		"/etc/audiarr/config.toml",
	}

	// 2-4. Check each path
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
