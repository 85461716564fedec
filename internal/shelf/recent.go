package shelf

import (
	"strings"
	"time"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/audiarr/internal/manifest"
)

// fuzzyThreshold is the Jaro-Winkler score above which a catalog title is
// accepted when plain containment fails. Set high: the fallback only
// exists to absorb punctuation and accent drift between the manifest and
// the server's scanner, not to guess.
const fuzzyThreshold = 0.95

// RecentItems selects the catalog items worth re-matching. An explicit
// placed-book list takes precedence: each placed book is matched by short
// title against the catalog and the book's ASIN is injected into the
// matched item. Without a placed list, items added within the last
// daysAgo days are returned; daysAgo <= 0 selects nothing.
func RecentItems(items []Item, daysAgo int, placed []manifest.Book) []Item {
	if len(placed) > 0 {
		return itemsForBooks(items, placed)
	}
	if daysAgo <= 0 {
		return nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour)
	var recent []Item
	for _, item := range items {
		added := time.UnixMilli(item.AddedAt).UTC()
		if !added.Before(cutoff) {
			recent = append(recent, item)
		}
	}
	return recent
}

func itemsForBooks(items []Item, placed []manifest.Book) []Item {
	var matched []Item
	for _, book := range placed {
		want := normalizeTitle(book.ShortTitle)
		if want == "" {
			continue
		}
		for _, item := range items {
			if titleMatches(want, normalizeTitle(item.Media.Metadata.Title)) {
				item.Media.Metadata.ASIN = book.ASIN
				matched = append(matched, item)
			}
		}
	}
	return matched
}

// titleMatches accepts containment of the placed short title in the
// catalog title, with a high-confidence fuzzy fallback.
func titleMatches(want, have string) bool {
	if want == "" || have == "" {
		return false
	}
	if strings.Contains(have, want) {
		return true
	}
	return float64(edlib.JaroWinklerSimilarity(want, have)) >= fuzzyThreshold
}

// normalizeTitle lowercases, strips accents, and drops punctuation so
// containment survives the cosmetic edits scanners apply to titles.
func normalizeTitle(s string) string {
	s = strings.ToLower(removeAccents(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
