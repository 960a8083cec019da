// Package tagstate owns the marked and hidden tag sets of a session and the
// recency log of toggled tags.
package tagstate

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Set selects one of the two tag classifications.
type Set int

const (
	Marked Set = iota
	Hidden
)

func (s Set) String() string {
	switch s {
	case Marked:
		return "marked"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Store holds the per-session tag state.
//
// Invariant: the recency log contains exactly the tags that are marked or
// hidden, each once, oldest toggle first. A tag may be in both sets.
//
// Not safe for concurrent use; a session has a single writer.
type Store struct {
	marked map[string]struct{}
	hidden map[string]struct{}
	recent *orderedmap.OrderedMap[string, struct{}]
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		marked: make(map[string]struct{}),
		hidden: make(map[string]struct{}),
		recent: orderedmap.New[string, struct{}](),
	}
}

// IsMarked reports whether tag is in the marked set.
func (s *Store) IsMarked(tag string) bool {
	_, ok := s.marked[tag]
	return ok
}

// IsHidden reports whether tag is in the hidden set.
func (s *Store) IsHidden(tag string) bool {
	_, ok := s.hidden[tag]
	return ok
}

// Toggle adds tag to (on) or removes it from (!on) the chosen set, moves it to
// the newest end of the recency log and drops it from the log again if it is
// now in neither set. Tags outside the current vocabulary are accepted.
func (s *Store) Toggle(tag string, set Set, on bool) {
	target := s.marked
	if set == Hidden {
		target = s.hidden
	}
	if on {
		target[tag] = struct{}{}
	} else {
		delete(target, tag)
	}

	if _, present := s.recent.Set(tag, struct{}{}); present {
		_ = s.recent.MoveToBack(tag)
	}
	s.prune(tag)
}

// prune removes tag from the log when it is neutral. Only the toggled tag can
// change state, so checking it alone keeps the whole log consistent.
func (s *Store) prune(tag string) {
	if !s.IsMarked(tag) && !s.IsHidden(tag) {
		s.recent.Delete(tag)
	}
}

// Reset clears both sets and the recency log.
func (s *Store) Reset() {
	*s = Store{
		marked: make(map[string]struct{}),
		hidden: make(map[string]struct{}),
		recent: orderedmap.New[string, struct{}](),
	}
}

// RecentTags returns up to limit tags, most recently toggled first.
func (s *Store) RecentTags(limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	n := s.recent.Len()
	if n > limit {
		n = limit
	}
	out := make([]string, 0, n)
	for p := s.recent.Newest(); p != nil && len(out) < limit; p = p.Prev() {
		out = append(out, p.Key)
	}
	return out
}

// Marked returns the marked tags, sorted.
func (s *Store) Marked() []string { return sortedKeys(s.marked) }

// Hidden returns the hidden tags, sorted.
func (s *Store) Hidden() []string { return sortedKeys(s.hidden) }

// Empty reports whether no tag is marked or hidden.
func (s *Store) Empty() bool {
	return len(s.marked) == 0 && len(s.hidden) == 0
}

// Len returns the number of tags in the recency log.
func (s *Store) Len() int {
	return s.recent.Len()
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
