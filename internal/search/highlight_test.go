package search

import (
	"reflect"
	"testing"
)

func TestHighlight(t *testing.T) {
	e := newEngine(nil)

	tests := []struct {
		name  string
		label string
		query string
		want  string
	}{
		{"single", "blue cheese", "che", "blue <em>che</em>ese"},
		{"multiple", "cheese cheese", "ee", "ch<em>ee</em>se ch<em>ee</em>se"},
		{"non-overlapping", "aaaa", "aa", "<em>aa</em><em>aa</em>"},
		{"odd overlap", "aaa", "aa", "<em>aa</em>a"},
		{"no match", "domates", "xyz", "domates"},
		{"empty query", "domates", "", "domates"},
		{"case folded query", "ısırgan", "ISI", "<em>ısı</em>rgan"},
		{"whole label", "sucuk", "sucuk", "<em>sucuk</em>"},
		{"reserved chars literal", "a.b.c", ".", "a<em>.</em>b<em>.</em>c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Highlight(tt.label, tt.query, "<em>", "</em>")
			if got != tt.want {
				t.Errorf("Highlight(%q, %q) = %q, want %q", tt.label, tt.query, got, tt.want)
			}
		})
	}
}

func TestHighlightWhitespaceQuery(t *testing.T) {
	e := newEngine(nil)
	// Folding trims the needle to zero length; the label must come back as is.
	if got := e.Highlight("a b", "   ", "[", "]"); got != "a b" {
		t.Errorf("Highlight with blank needle = %q", got)
	}
}

func TestSpans(t *testing.T) {
	e := newEngine(nil)

	got := e.Spans("kaşar kaşar", "kaşar")
	want := []Span{{0, 6}, {7, 13}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Spans = %v, want %v", got, want)
	}

	if spans := e.Spans("kaşar", ""); spans != nil {
		t.Errorf("Spans with empty query = %v, want nil", spans)
	}
}

func TestApply(t *testing.T) {
	got := Apply("abcabc", []Span{{1, 2}, {4, 5}}, func(s string) string { return "(" + s + ")" })
	if got != "a(b)ca(b)c" {
		t.Errorf("Apply = %q", got)
	}
}
