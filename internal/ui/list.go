package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/abelbrown/tagsift/internal/classify"
	"github.com/abelbrown/tagsift/internal/store"
	"github.com/charmbracelet/lipgloss"
)

// visibleRows maps list rows to item indices, skipping hidden items.
func visibleRows(verdicts []classify.Verdict) []int {
	rows := make([]int, 0, len(verdicts))
	for i, v := range verdicts {
		if !v.Hidden {
			rows = append(rows, i)
		}
	}
	return rows
}

// rowOf returns the list row showing item i, or -1 if it is hidden.
func rowOf(rows []int, item int) int {
	for r, i := range rows {
		if i == item {
			return r
		}
		if i > item {
			break
		}
	}
	return -1
}

// RenderItems renders the visible items starting at list row offset.
func RenderItems(items []store.Item, verdicts []classify.Verdict, rows []int, offset, width, height int) string {
	if len(items) == 0 {
		return HelpStyle.Render("No items loaded. Import a source or press ctrl+l to reload.")
	}
	if len(rows) == 0 {
		return HelpStyle.Render("Every item is hidden. Press ctrl+r to reset.")
	}
	if height < 1 {
		height = 1
	}
	offset = max(0, min(offset, len(rows)-1))

	var b strings.Builder
	for r := offset; r < len(rows) && r < offset+height; r++ {
		i := rows[r]
		b.WriteString(renderItemLine(items[i], verdicts[i].Marked, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderItemLine renders one item: its name, then its description dimmed.
func renderItemLine(item store.Item, marked bool, width int) string {
	style := NormalItem
	if marked {
		style = MarkedItem
	}
	name := style.Render(item.Name)
	if item.Description == "" {
		return name
	}

	room := width - lipgloss.Width(name) - 2
	if room < 8 {
		return name
	}
	return name + "  " + ItemDescription.Render(truncateRunes(item.Description, room))
}

// truncateRunes shortens s to at most n runes, marking the cut with "…".
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
