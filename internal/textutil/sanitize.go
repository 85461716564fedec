// Package textutil holds small text helpers shared by the manifest and
// organizer packages.
package textutil

import (
	"strings"
	"unicode"
)

// SanitizeName maps a display string to a filesystem-safe path segment:
// commas are removed, spaces become underscores, and every remaining rune
// that is not a letter, digit, underscore, or period is dropped. Trailing
// whitespace is trimmed. The empty string maps to itself.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, ",", "")
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
