package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/tagsift/internal/search"
	"github.com/abelbrown/tagsift/internal/session"
	"github.com/charmbracelet/lipgloss"
)

// Row state icons.
const (
	iconMarked   = "★"
	iconUnmarked = "☆"
	iconHidden   = "⊘"
	iconVisible  = "○"
)

// RenderHeader renders the title line with the filter summary. The reset
// hint only appears when there is something to reset.
func RenderHeader(summary, resetKey string, width int) string {
	title := HeaderStyle.Render("FILTER")
	if summary == "" {
		return lipgloss.NewStyle().Width(width).Render(title)
	}
	left := title + HeaderCount.Render(summary)
	hint := StatusBarKey.Render(resetKey) + StatusBarText.Render(":reset")
	pad := max(1, width-lipgloss.Width(left)-lipgloss.Width(hint)-1)
	return left + strings.Repeat(" ", pad) + hint
}

// RenderResults renders the ranked tags under the input, the active one
// selected.
func RenderResults(rows []session.Row, selected, width int) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	for i, row := range rows {
		b.WriteString(renderResultRow(row, i == selected, width))
		b.WriteString("\n")
	}
	return b.String()
}

func renderResultRow(row session.Row, selected bool, width int) string {
	label := search.Apply(row.Tag, row.Spans, func(s string) string {
		return MatchStyle.Render(s)
	})
	icons := markIcon(row.Marked) + " " + hideIcon(row.Hidden)

	style := ResultRow
	if selected {
		style = SelectedRow
	}
	pad := max(1, width-lipgloss.Width(label)-lipgloss.Width(icons)-4)
	return style.Render(label + strings.Repeat(" ", pad) + icons)
}

func markIcon(on bool) string {
	if on {
		return MarkIconOn.Render(iconMarked)
	}
	return MarkIconOff.Render(iconUnmarked)
}

func hideIcon(on bool) string {
	if on {
		return HideIconOn.Render(iconHidden)
	}
	return HideIconOff.Render(iconVisible)
}

// RenderStatusBar renders the bottom status bar with key hints and item
// counts.
func RenderStatusBar(visible, total int, focused, loading bool, keys KeyOptions, width int) string {
	var position string
	if loading {
		position = " Loading... "
	} else {
		position = fmt.Sprintf(" %d/%d items ", visible, total)
	}

	var hints []string
	if focused {
		hints = []string{
			StatusBarKey.Render("↑↓") + StatusBarText.Render(":select"),
			StatusBarKey.Render(keys.Mark) + StatusBarText.Render(":mark"),
			StatusBarKey.Render(keys.Hide) + StatusBarText.Render(":hide"),
			StatusBarKey.Render("esc") + StatusBarText.Render(":close"),
		}
	} else {
		hints = []string{
			StatusBarKey.Render("/") + StatusBarText.Render(":filter"),
			StatusBarKey.Render("j/k") + StatusBarText.Render(":scroll"),
			StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
		}
	}
	hints = append(hints, StatusBarKey.Render(keys.Debug)+StatusBarText.Render(":debug"))
	keyHints := strings.Join(hints, " ")

	padding := max(0, width-lipgloss.Width(position)-lipgloss.Width(keyHints))
	return StatusBar.Width(width).Render(position + strings.Repeat(" ", padding) + keyHints)
}
