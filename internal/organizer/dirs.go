package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BookDir ensures root/author[/series]/title exists and returns it.
// Segments must already be sanitized. Idempotent; partial trees are left
// in place on failure.
func BookDir(root, author, series, title string) (string, error) {
	dir := filepath.Join(root, author)
	if series != "" {
		dir = filepath.Join(dir, series)
	}
	dir = filepath.Join(dir, title)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create book directory: %w", err)
	}
	return dir, nil
}

// ValidatePath ensures path stays inside root after cleaning.
func ValidatePath(path, root string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)

	prefix := cleanRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if cleanPath != cleanRoot && !strings.HasPrefix(cleanPath, prefix) {
		return ErrPathTraversal
	}
	return nil
}
