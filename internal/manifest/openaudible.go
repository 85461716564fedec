package manifest

import (
	"strings"

	"github.com/vmunix/audiarr/internal/textutil"
)

// openAudible normalizes records from OpenAudible's books.json.
// OpenAudible already writes a usable file stem and a YYYY-MM-DD purchase
// date, so most fields pass through unchanged.
type openAudible struct{}

func (openAudible) Normalize(raw Record) (Book, error) {
	// The author field lists all contributors comma-separated; only the
	// first one names the library directory.
	author, _, _ := strings.Cut(raw.str("author"), ",")

	return Book{
		ASIN:         raw.str("asin"),
		Author:       textutil.SanitizeName(strings.TrimSpace(author)),
		Description:  raw.str("summary"),
		Filename:     raw.str("filename"),
		PurchaseDate: raw.str("purchase_date"),
		Series:       raw.str("series_name"),
		ShortTitle:   raw.str("title_short"),
		Title:        raw.str("title"),
		VolumeNumber: raw.str("series_sequence"),
	}, nil
}
