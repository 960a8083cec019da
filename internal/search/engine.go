// Package search answers tag queries against a vocabulary and marks matches
// inside result labels.
package search

import (
	"sort"
	"strings"

	"github.com/abelbrown/tagsift/internal/fold"
)

// Recents supplies the most recently toggled tags for the empty query.
type Recents interface {
	RecentTags(limit int) []string
}

// Engine ranks vocabulary tags for a query: prefix matches first, then
// substring-only matches, each group sorted. Matching is literal; reserved
// characters that slip past the sanitizer are compared as plain bytes.
type Engine struct {
	recents Recents
	folder  fold.Folder
}

// NewEngine creates an Engine. recents may be nil, in which case the empty
// query returns no tags.
func NewEngine(recents Recents, folder fold.Folder) *Engine {
	return &Engine{recents: recents, folder: folder}
}

// Query returns at most limit tags of vocabulary for text.
// An empty (after folding) query browses the recently toggled tags instead.
func (e *Engine) Query(text string, vocabulary []string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	q := e.folder.Fold(text)
	if q == "" {
		if e.recents == nil {
			return []string{}
		}
		return e.recents.RecentTags(limit)
	}

	results := collect(vocabulary, limit, func(tag string) bool {
		return strings.HasPrefix(tag, q)
	})
	sort.Strings(results)

	if len(results) < limit {
		more := collect(vocabulary, limit-len(results), func(tag string) bool {
			return strings.Contains(tag, q)
		})
		sort.Strings(more)

		seen := make(map[string]bool, len(results))
		for _, r := range results {
			seen[r] = true
		}
		for _, m := range more {
			if !seen[m] {
				results = append(results, m)
				seen[m] = true
			}
		}
	}

	return results
}

// collect returns up to budget tags of vocabulary matching match, in
// vocabulary order, without duplicates.
func collect(vocabulary []string, budget int, match func(string) bool) []string {
	out := make([]string, 0, budget)
	seen := make(map[string]bool)
	for _, tag := range vocabulary {
		if len(out) == budget {
			break
		}
		if seen[tag] || !match(tag) {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
