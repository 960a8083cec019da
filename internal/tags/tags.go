// Package tags derives the tag vocabulary from catalog items.
// All functions are pure: items in, tags out. No side effects.
package tags

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/abelbrown/tagsift/internal/store"
)

// MaxTagLen is the longest tag kept, in runes.
const MaxTagLen = 24

// Separator splits an item's secondary text into tags.
const Separator = ","

// Valid reports whether tag has between 1 and MaxTagLen runes.
func Valid(tag string) bool {
	n := utf8.RuneCountInString(tag)
	return n > 0 && n <= MaxTagLen
}

// Split returns the valid tags of one secondary text, in order, duplicates kept.
func Split(secondary string) []string {
	parts := strings.Split(secondary, Separator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if Valid(p) {
			out = append(out, p)
		}
	}
	return out
}

// Extract builds the vocabulary of items: every valid tag of every item's
// SecondaryText, first occurrence wins, sorted in byte order.
// Deterministic and idempotent for the same items.
func Extract(items []store.Item) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	vocab := make([]string, 0, len(items))
	for _, item := range items {
		for _, tag := range Split(item.SecondaryText) {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			vocab = append(vocab, tag)
		}
	}

	sort.Strings(vocab)
	return vocab
}

// reserved are the characters stripped from queries before they reach search.
const reserved = `-[]/{}()*+?.\^$|`

// IsReserved reports whether r is one of the query metacharacters.
func IsReserved(r rune) bool {
	return strings.ContainsRune(reserved, r)
}

// SanitizeQuery drops reserved characters from raw keystroke input.
func SanitizeQuery(raw string) string {
	if !strings.ContainsAny(raw, reserved) {
		return raw
	}
	return strings.Map(func(r rune) rune {
		if IsReserved(r) {
			return -1
		}
		return r
	}, raw)
}
