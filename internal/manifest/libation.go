package manifest

import (
	"fmt"
	"strings"
)

// libation normalizes records exported by Libation. Libation's export does
// not include the downloaded file path, so the stem and the per-book
// download subfolder are reconstructed the way Libation names them.
type libation struct{}

func (libation) Normalize(raw Record) (Book, error) {
	title := raw.str("Title")
	subtitle := raw.str("Subtitle")
	productID := raw.str("AudibleProductId")

	fullTitle := title
	filename := fmt.Sprintf("%s [%s]", title, productID)
	if subtitle != "" {
		fullTitle = title + " - " + subtitle
		filename = fmt.Sprintf("%s: %s [%s]", title, subtitle, productID)
	}

	// Libation truncates the folder name at the first colon of the title
	// but keeps the full title in the filename.
	folderTitle, _, _ := strings.Cut(title, ":")
	folder := fmt.Sprintf("%s [%s]", strings.TrimSpace(folderTitle), productID)

	var volume string
	if fields := strings.Fields(raw.str("SeriesOrder")); len(fields) > 0 {
		volume = fields[0]
	}

	purchaseDate, err := ParseDate(raw.str("DateAdded"))
	if err != nil {
		return Book{}, fmt.Errorf("normalize %q: %w", fullTitle, err)
	}

	return Book{
		ASIN:         productID,
		Author:       raw.str("AuthorNames"),
		Description:  raw.str("Description"),
		Filename:     filename,
		PurchaseDate: purchaseDate,
		Series:       raw.str("SeriesNames"),
		ShortTitle:   title,
		Title:        fullTitle,
		VolumeNumber: volume,
		SourceFolder: folder,
	}, nil
}
