package search

import "strings"

// Span is a half-open byte range [Start, End) of a label.
type Span struct {
	Start int
	End   int
}

// Spans returns every non-overlapping occurrence of the folded query in label,
// left to right. Labels are tags, so they are already folded.
func (e *Engine) Spans(label, query string) []Span {
	needle := e.folder.Fold(query)
	if needle == "" {
		return nil
	}

	var spans []Span
	offset := 0
	for offset <= len(label) {
		i := strings.Index(label[offset:], needle)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(needle)
		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}
	return spans
}

// Highlight wraps every occurrence of query in label with start and end.
// An empty query returns label unchanged; text between matches is kept verbatim.
func (e *Engine) Highlight(label, query, start, end string) string {
	if query == "" {
		return label
	}
	spans := e.Spans(label, query)
	if len(spans) == 0 {
		return label
	}
	return Apply(label, spans, func(s string) string { return start + s + end })
}

// Apply rebuilds label with wrap applied to each span. Spans must be sorted
// and non-overlapping, as returned by Spans.
func Apply(label string, spans []Span, wrap func(string) string) string {
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(label[prev:sp.Start])
		b.WriteString(wrap(label[sp.Start:sp.End]))
		prev = sp.End
	}
	b.WriteString(label[prev:])
	return b.String()
}
