// Package session binds the tag engine to one item collection.
//
// A Session owns the tag state, vocabulary, current query, result rows and
// selection for that collection, and keeps a verdict per item. Every method
// runs to completion on the caller's goroutine; the TUI calls it from
// bubbletea's Update loop only.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abelbrown/tagsift/internal/classify"
	"github.com/abelbrown/tagsift/internal/fold"
	"github.com/abelbrown/tagsift/internal/otel"
	"github.com/abelbrown/tagsift/internal/search"
	"github.com/abelbrown/tagsift/internal/selection"
	"github.com/abelbrown/tagsift/internal/store"
	"github.com/abelbrown/tagsift/internal/tags"
	"github.com/abelbrown/tagsift/internal/tagstate"
)

// DefaultLimit is the number of result rows shown for a query.
const DefaultLimit = 6

// Source supplies the items of a collection. store.Store, fetch.RSS and
// fetch.HTML implement it.
type Source interface {
	Items(ctx context.Context) ([]store.Item, error)
}

// Options configures a Session.
type Options struct {
	Limit  int          // result rows per query; DefaultLimit when zero
	Locale string       // case-folding locale; fold.DefaultLocale when empty
	Events *otel.Logger // optional event log
}

// Row is one search result as the renderer sees it.
type Row struct {
	Tag    string
	Marked bool
	Hidden bool
	Spans  []search.Span // query matches inside Tag
}

// Session is the explicit state of one filtering session.
type Session struct {
	folder     fold.Folder
	state      *tagstate.Store
	engine     *search.Engine
	classifier classify.Classifier
	sel        *selection.Controller
	limit      int
	events     *otel.Logger

	items    []store.Item
	verdicts []classify.Verdict
	vocab    []string
	query    string
	results  []string
}

// New creates an empty Session.
func New(opts Options) *Session {
	if opts.Limit == 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Locale == "" {
		opts.Locale = fold.DefaultLocale
	}
	folder := fold.New(opts.Locale)
	state := tagstate.New()
	return &Session{
		folder:  folder,
		state:   state,
		engine:  search.NewEngine(state, folder),
		sel:     selection.New(),
		limit:   opts.Limit,
		events:  opts.Events,
		vocab:   []string{},
		results: []string{},
	}
}

// Load replaces the collection with the items of src. Tag state survives.
func (s *Session) Load(ctx context.Context, src Source) error {
	start := time.Now()
	items, err := src.Items(ctx)
	if err != nil {
		s.events.Emit(otel.Event{Level: otel.LevelError, Kind: otel.KindSourceError, Comp: "session", Err: err.Error()})
		return fmt.Errorf("load items: %w", err)
	}
	s.SetItems(items)
	s.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindSourceLoad, Comp: "session", Count: len(items), Dur: time.Since(start)})
	return nil
}

// SetItems replaces the collection. Text fields are folded, every item is
// classified against the current tag state, the vocabulary is rebuilt from
// the items left visible and the current query is re-run.
func (s *Session) SetItems(items []store.Item) {
	s.items = make([]store.Item, len(items))
	for i, it := range items {
		it.PrimaryText = s.folder.Fold(it.Name)
		it.SecondaryText = s.folder.Fold(it.Description)
		s.items[i] = it
	}
	s.verdicts = make([]classify.Verdict, len(s.items))
	s.apply(true, true)
	s.rebuildVocabulary()
	s.refresh()
}

// SetQuery sanitizes raw, runs it and rebinds the selection to the new rows.
// It returns the sanitized text so the input can be corrected in place.
func (s *Session) SetQuery(raw string) string {
	s.query = tags.SanitizeQuery(raw)
	s.refresh()
	s.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindSearchQuery, Comp: "session", Query: s.query, Count: len(s.results)})
	return s.query
}

// Query returns the current sanitized query.
func (s *Session) Query() string { return s.query }

// ClearResults empties the result rows without touching the query. Used when
// the input loses focus.
func (s *Session) ClearResults() {
	s.results = []string{}
	s.sel.Rebind(s.results)
}

// Results returns the ranked tags currently listed.
func (s *Session) Results() []string { return s.results }

// Rows returns the current results with tag state and highlight spans.
func (s *Session) Rows() []Row {
	rows := make([]Row, len(s.results))
	for i, tag := range s.results {
		rows[i] = Row{
			Tag:    tag,
			Marked: s.state.IsMarked(tag),
			Hidden: s.state.IsHidden(tag),
			Spans:  s.engine.Spans(tag, s.query),
		}
	}
	return rows
}

// Highlight wraps query matches in label with start and end.
func (s *Session) Highlight(label, start, end string) string {
	return s.engine.Highlight(label, s.query, start, end)
}

// MoveDown selects the next row, stopping at the last one.
func (s *Session) MoveDown() { s.sel.MoveDown() }

// MoveUp selects the previous row; moving above the first row deselects.
func (s *Session) MoveUp() { s.sel.MoveUp() }

// Selected returns the active row index, or selection.None.
func (s *Session) Selected() int { return s.sel.Index() }

// Active returns the tag of the active row.
func (s *Session) Active() (string, bool) { return s.sel.Active() }

// refresh re-runs the current query and rebinds the selection.
func (s *Session) refresh() {
	s.results = s.engine.Query(s.query, s.vocab, s.limit)
	s.sel.Rebind(s.results)
}

// rebuildVocabulary extracts tags from the items not currently hidden.
func (s *Session) rebuildVocabulary() {
	visible := make([]store.Item, 0, len(s.items))
	for i, it := range s.items {
		if !s.verdicts[i].Hidden {
			visible = append(visible, it)
		}
	}
	s.vocab = tags.Extract(visible)
	s.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindVocabRebuild, Comp: "session", Count: len(s.vocab)})
}

// apply clears the selected verdict fields and ORs in a fresh
// classification. A "no change" result from the classifier leaves the
// cleared fields cleared.
func (s *Session) apply(clearHidden, clearMarked bool) {
	for i := range s.verdicts {
		if clearHidden {
			s.verdicts[i].Hidden = false
		}
		if clearMarked {
			s.verdicts[i].Marked = false
		}
	}

	fresh, changed := s.classifier.Classify(s.items, s.state)
	if !changed {
		return
	}
	for i, v := range fresh {
		s.verdicts[i].Hidden = s.verdicts[i].Hidden || v.Hidden
		s.verdicts[i].Marked = s.verdicts[i].Marked || v.Marked
	}
	hidden, marked := classify.Counts(s.verdicts)
	s.events.Emit(otel.Event{
		Level: otel.LevelDebug,
		Kind:  otel.KindClassify,
		Comp:  "session",
		Count: len(s.items),
		Extra: map[string]any{"hidden": hidden, "marked": marked},
	})
}
