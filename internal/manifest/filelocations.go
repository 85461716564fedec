package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Libation file type codes in FileLocationsV2.json.
const (
	fileTypeAudio      = 1
	fileTypeInProgress = 2
)

// FileLocations indexes Libation's FileLocationsV2.json, which records the
// real on-disk path of every downloaded book. When available it replaces
// the constructed folder/filename lookup, which can drift from Libation's
// naming across versions.
type FileLocations struct {
	byProduct map[string]string
}

type fileLocationsFile struct {
	Dictionary map[string][]struct {
		ID       string `json:"Id"`
		FileType int    `json:"FileType"`
		Path     struct {
			Path string `json:"Path"`
		} `json:"Path"`
	} `json:"Dictionary"`
}

// LoadFileLocations reads a FileLocationsV2.json file.
func LoadFileLocations(path string) (*FileLocations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file locations: %w", err)
	}

	var parsed fileLocationsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse file locations %s: %w", path, err)
	}

	fl := &FileLocations{byProduct: make(map[string]string, len(parsed.Dictionary))}
	for productID, entries := range parsed.Dictionary {
		for _, entry := range entries {
			if entry.FileType == fileTypeAudio && entry.Path.Path != "" {
				fl.byProduct[productID] = entry.Path.Path
				break
			}
		}
	}
	return fl, nil
}

// AudioPath returns the recorded audio file path for a product id.
func (fl *FileLocations) AudioPath(productID string) (string, bool) {
	if fl == nil {
		return "", false
	}
	path, ok := fl.byProduct[productID]
	return path, ok
}
