package session

import (
	"github.com/abelbrown/tagsift/internal/classify"
	"github.com/abelbrown/tagsift/internal/otel"
	"github.com/abelbrown/tagsift/internal/store"
	"github.com/abelbrown/tagsift/internal/tagstate"
)

// ToggleMark flips the marked state of tag and reports the new state.
// Items are reclassified and the result rows refreshed.
func (s *Session) ToggleMark(tag string) bool {
	on := !s.state.IsMarked(tag)
	s.state.Toggle(tag, tagstate.Marked, on)
	s.apply(false, true)
	s.refresh()
	s.emitToggle(tag, tagstate.Marked, on)
	return on
}

// ToggleHide flips the hidden state of tag and reports the new state. Items
// are reclassified, the vocabulary is rebuilt from the items left visible
// and the result rows refreshed.
func (s *Session) ToggleHide(tag string) bool {
	on := !s.state.IsHidden(tag)
	s.state.Toggle(tag, tagstate.Hidden, on)
	s.apply(true, false)
	s.rebuildVocabulary()
	s.refresh()
	s.emitToggle(tag, tagstate.Hidden, on)
	return on
}

// ToggleMarkActive toggles the mark of the active row. ok is false when no
// row is active, in which case nothing changes.
func (s *Session) ToggleMarkActive() (tag string, on, ok bool) {
	tag, ok = s.sel.Active()
	if !ok {
		return "", false, false
	}
	return tag, s.ToggleMark(tag), true
}

// ToggleHideActive toggles the hidden state of the active row. ok is false
// when no row is active.
func (s *Session) ToggleHideActive() (tag string, on, ok bool) {
	tag, ok = s.sel.Active()
	if !ok {
		return "", false, false
	}
	return tag, s.ToggleHide(tag), true
}

// Reset clears all tag state, the query, the result rows and the selection,
// then rebuilds the vocabulary from every item.
func (s *Session) Reset() {
	s.state.Reset()
	for i := range s.verdicts {
		s.verdicts[i] = classify.Verdict{}
	}
	s.query = ""
	s.results = []string{}
	s.sel.Rebind(s.results)
	s.sel.Reset()
	s.rebuildVocabulary()
	s.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindTagReset, Comp: "session"})
}

func (s *Session) emitToggle(tag string, set tagstate.Set, on bool) {
	s.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindTagToggle, Comp: "session", Tag: tag, Set: set.String(), On: on})
}

// IsMarked reports whether tag is marked.
func (s *Session) IsMarked(tag string) bool { return s.state.IsMarked(tag) }

// IsHidden reports whether tag is hidden.
func (s *Session) IsHidden(tag string) bool { return s.state.IsHidden(tag) }

// RecentTags returns up to limit recently toggled tags, newest first.
func (s *Session) RecentTags(limit int) []string { return s.state.RecentTags(limit) }

// Items returns the collection with folded text fields.
func (s *Session) Items() []store.Item { return s.items }

// Verdicts returns one verdict per item, index-aligned with Items.
func (s *Session) Verdicts() []classify.Verdict { return s.verdicts }

// Vocabulary returns the searchable tags.
func (s *Session) Vocabulary() []string { return s.vocab }

// Scans returns how many classifications actually scanned the items.
func (s *Session) Scans() int { return s.classifier.Scans() }

// ScrollTarget returns the item a renderer should bring into view after a
// mark toggle, or -1.
func (s *Session) ScrollTarget(onScreen func(i int) bool) int {
	return classify.ScrollTarget(s.verdicts, onScreen)
}
