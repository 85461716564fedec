// Package manifest reads the book manifests written by audiobook download
// tools and maps their records into one canonical shape.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Source identifies which download tool produced a manifest.
type Source int

const (
	SourceOpenAudible Source = iota
	SourceLibation
)

func (s Source) String() string {
	switch s {
	case SourceOpenAudible:
		return "OpenAudible"
	case SourceLibation:
		return "Libation"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// ErrUnknownSource is returned for a download program name that is not
// one of the supported tools.
var ErrUnknownSource = errors.New("unknown download program")

// ParseSource maps a configured download program name to a Source.
func ParseSource(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openaudible":
		return SourceOpenAudible, nil
	case "libation":
		return SourceLibation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}

// Record is one raw manifest entry. Keys and value shapes depend on the
// tool that wrote the manifest.
type Record map[string]any

// str returns the record value for key as a string, or "" when absent
// or not a string.
func (r Record) str(key string) string {
	v, ok := r[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Book is the canonical record the rest of the pipeline works with.
type Book struct {
	ASIN         string
	Author       string
	Description  string
	Filename     string // file stem, extension added at placement time
	PurchaseDate string // YYYY-MM-DD
	Series       string
	ShortTitle   string
	Title        string
	VolumeNumber string

	// SourceFolder is the per-book download subfolder, set only for
	// Libation records. Libation truncates the folder name at the first
	// colon of the title while the filename keeps the full title.
	SourceFolder string
}

// Normalizer maps a raw manifest record into a Book.
type Normalizer interface {
	Normalize(raw Record) (Book, error)
}

// NormalizerFor returns the normalizer for the given source tool.
func NormalizerFor(src Source) Normalizer {
	switch src {
	case SourceLibation:
		return libation{}
	default:
		return openAudible{}
	}
}

// Load reads a manifest file: a JSON array of raw records.
// A missing or syntactically invalid file is a whole-run failure.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return records, nil
}
