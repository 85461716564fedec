package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibationNormalize(t *testing.T) {
	raw := Record{
		"AudibleProductId": "B0ABCDEF12",
		"AuthorNames":      "Jane Q. Writer",
		"Description":      "A book about things.",
		"DateAdded":        "2024-04-24T14:35:02.123+02:00",
		"SeriesNames":      "Drift Saga",
		"SeriesOrder":      "2 of 5",
		"Title":            "Galactic Drift: A Space Story",
		"Subtitle":         "",
	}

	book, err := NormalizerFor(SourceLibation).Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "B0ABCDEF12", book.ASIN)
	// Author sanitization happens at placement time for Libation records.
	assert.Equal(t, "Jane Q. Writer", book.Author)
	assert.Equal(t, "2024-04-24", book.PurchaseDate)
	assert.Equal(t, "Drift Saga", book.Series)
	assert.Equal(t, "2", book.VolumeNumber)
	assert.Equal(t, "Galactic Drift: A Space Story", book.ShortTitle)
	assert.Equal(t, "Galactic Drift: A Space Story", book.Title)

	// The filename keeps the whole title, the download folder is cut at
	// the first colon.
	assert.Equal(t, "Galactic Drift: A Space Story [B0ABCDEF12]", book.Filename)
	assert.Equal(t, "Galactic Drift [B0ABCDEF12]", book.SourceFolder)
}

func TestLibationNormalize_Subtitle(t *testing.T) {
	book, err := NormalizerFor(SourceLibation).Normalize(Record{
		"AudibleProductId": "B0XYZ",
		"Title":            "Galactic Drift",
		"Subtitle":         "A Space Story",
		"DateAdded":        "2024-02-29T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "Galactic Drift - A Space Story", book.Title)
	assert.Equal(t, "Galactic Drift", book.ShortTitle)
	assert.Equal(t, "Galactic Drift: A Space Story [B0XYZ]", book.Filename)
	assert.Equal(t, "Galactic Drift [B0XYZ]", book.SourceFolder)
	assert.Equal(t, "2024-02-29", book.PurchaseDate)
}

func TestLibationNormalize_NoColonNoSubtitle(t *testing.T) {
	book, err := NormalizerFor(SourceLibation).Normalize(Record{
		"AudibleProductId": "B0XYZ",
		"Title":            "Plain Title",
		"DateAdded":        "2024-04-24T14:35:02.5-05:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "Plain Title [B0XYZ]", book.Filename)
	assert.Equal(t, "Plain Title [B0XYZ]", book.SourceFolder)
}

func TestLibationNormalize_EmptySeriesOrder(t *testing.T) {
	book, err := NormalizerFor(SourceLibation).Normalize(Record{
		"AudibleProductId": "B0XYZ",
		"Title":            "Plain Title",
		"DateAdded":        "2024-04-24T14:35:02Z",
	})
	require.NoError(t, err)
	assert.Empty(t, book.VolumeNumber)
}

func TestLibationNormalize_BadDate(t *testing.T) {
	_, err := NormalizerFor(SourceLibation).Normalize(Record{
		"AudibleProductId": "B0XYZ",
		"Title":            "Plain Title",
		"DateAdded":        "not a date",
	})
	assert.Error(t, err)
}
