// Package otel provides structured observability for tagsift.
//
// Events are typed structs serialized as JSONL lines. The Logger writes each
// event as it is emitted; an optional RingBuffer keeps the latest events in
// memory for the debug overlay.
package otel

import (
	"encoding/json"
	"time"
)

// Level defines event severity for filtering.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind identifies the category of an observability event.
// Dot-delimited: "<subsystem>.<action>".
type EventKind string

const (
	// Tag state events
	KindTagToggle EventKind = "tag.toggle"
	KindTagReset  EventKind = "tag.reset"

	// Engine events
	KindSearchQuery  EventKind = "search.query"
	KindClassify     EventKind = "classify.apply"
	KindVocabRebuild EventKind = "vocab.rebuild"
	KindScrollTarget EventKind = "classify.scroll"

	// Source events
	KindSourceLoad  EventKind = "source.load"
	KindSourceError EventKind = "source.error"
	KindSourceWatch EventKind = "source.watch"

	// UI events
	KindKeyPress EventKind = "ui.key"

	// System events
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"
	KindError    EventKind = "sys.error"
)

// Event is the universal observability record. Every field except Kind and
// Time is optional. Serialized as a single JSONL line.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"`       // component: "session", "ui", "fetch", "main"
	SessionID string         `json:"session_id,omitempty"` // random hex, same for entire app run
	Tag       string         `json:"tag,omitempty"`
	Set       string         `json:"set,omitempty"` // "marked" or "hidden"
	On        bool           `json:"on,omitempty"`
	Query     string         `json:"query,omitempty"`
	Count     int            `json:"count,omitempty"`
	Source    string         `json:"source,omitempty"`
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"`
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON implements json.Marshaler, converting Dur to DurMs.
func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	a := struct {
		Alias
	}{Alias: Alias(e)}
	if e.Dur > 0 {
		a.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(a)
}
