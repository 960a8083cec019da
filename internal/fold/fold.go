// Package fold normalizes text for tag comparison.
// Item text, tags, queries and highlight needles all go through the same Folder
// so that a tag and a query typed for it compare byte-for-byte.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocale is Turkish: "I" folds to "ı" and "İ" to "i".
const DefaultLocale = "tr"

// Folder lowercases with a fixed locale and trims surrounding whitespace.
// Not safe for concurrent use (cases.Caser keeps state between calls).
type Folder struct {
	caser  cases.Caser
	locale language.Tag
	ok     bool
}

// New returns a Folder for the given BCP 47 locale. An unparsable locale
// falls back to language-neutral lowercasing.
func New(locale string) Folder {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return Folder{caser: cases.Lower(tag), locale: tag, ok: true}
}

// Fold lowercases s and trims it. The zero Folder uses strings.ToLower.
func (f Folder) Fold(s string) string {
	if !f.ok {
		return strings.TrimSpace(strings.ToLower(s))
	}
	return strings.TrimSpace(f.caser.String(s))
}

// Locale returns the locale the Folder was built with.
func (f Folder) Locale() string {
	if !f.ok {
		return language.Und.String()
	}
	return f.locale.String()
}
