// Package classify decides, per item, whether the current tag state hides or
// marks it. Functions here only read items and tag sets; applying the
// verdicts is the renderer's job.
package classify

import (
	"strings"

	"github.com/abelbrown/tagsift/internal/store"
)

// TagSets is the read side of a tag state store.
type TagSets interface {
	Marked() []string
	Hidden() []string
}

// Verdict is the classification of one item. Hidden wins over Marked when
// rendering; both may be set.
type Verdict struct {
	Hidden bool
	Marked bool
}

// Classifier runs classifications and counts the ones that scanned items.
type Classifier struct {
	scans int
}

// Classify returns one verdict per item, index-aligned with items.
//
// When no tag is marked or hidden it returns (nil, false): "no change".
// Callers must then leave whatever visual state they hold untouched rather
// than treat it as a clear.
func (c *Classifier) Classify(items []store.Item, sets TagSets) ([]Verdict, bool) {
	hidden := sets.Hidden()
	marked := sets.Marked()
	if len(hidden) == 0 && len(marked) == 0 {
		return nil, false
	}

	c.scans++
	verdicts := make([]Verdict, len(items))
	for i, item := range items {
		verdicts[i] = Verdict{
			Hidden: matchesAny(item, hidden),
			Marked: matchesAny(item, marked),
		}
	}
	return verdicts, true
}

// Scans returns how many Classify calls did not short-circuit.
func (c *Classifier) Scans() int {
	return c.scans
}

// matchesAny reports whether the item's primary or secondary text contains
// any of the tags. Both sides are already folded.
func matchesAny(item store.Item, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(item.PrimaryText, tag) || strings.Contains(item.SecondaryText, tag) {
			return true
		}
	}
	return false
}

// Counts returns the number of hidden items and of marked items that are not
// hidden, the figures shown in the filter header.
func Counts(verdicts []Verdict) (hidden, marked int) {
	for _, v := range verdicts {
		switch {
		case v.Hidden:
			hidden++
		case v.Marked:
			marked++
		}
	}
	return hidden, marked
}

// ScrollTarget picks the item a renderer should scroll to after a mark
// toggle: the first visible marked item, in list order. It returns -1 when no
// visible item is marked, or when one of them is already on screen.
func ScrollTarget(verdicts []Verdict, onScreen func(i int) bool) int {
	target := -1
	for i, v := range verdicts {
		if v.Hidden || !v.Marked {
			continue
		}
		if onScreen != nil && onScreen(i) {
			return -1
		}
		if target == -1 {
			target = i
		}
	}
	return target
}
