package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/tagsift/internal/otel"
)

// debugPanelChrome is the number of terminal lines consumed by DebugPanel's
// border (top + bottom = 2) and vertical padding (top + bottom = 2).
// Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders session stats and recent events. Returns empty
// string if ring is nil.
func debugOverlay(ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()
	recent := ring.Last(20)

	var lines []string
	lines = append(lines, DebugHeaderStyle.Render("Session Stats"))
	lines = append(lines, fmt.Sprintf("  Tags:       %d toggles, %d resets",
		stats[otel.KindTagToggle], stats[otel.KindTagReset]))
	lines = append(lines, fmt.Sprintf("  Queries:    %d", stats[otel.KindSearchQuery]))
	lines = append(lines, fmt.Sprintf("  Classify:   %d passes, %d vocabulary rebuilds",
		stats[otel.KindClassify], stats[otel.KindVocabRebuild]))
	lines = append(lines, fmt.Sprintf("  Sources:    %d loads, %d errors",
		stats[otel.KindSourceLoad], stats[otel.KindSourceError]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, DebugHeaderStyle.Render("Recent Events"))
	for _, e := range recent {
		lines = append(lines, formatEvent(e))
	}

	maxHeight := max(1, height-debugPanelChrome)
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := max(20, min(76, width-4))
	return DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

func formatEvent(e otel.Event) string {
	line := fmt.Sprintf("  %6s  %-16s", formatAge(time.Since(e.Time)), string(e.Kind))
	switch {
	case e.Tag != "":
		state := "off"
		if e.On {
			state = "on"
		}
		line += fmt.Sprintf("  %s %s %s", truncateRunes(e.Tag, 24), e.Set, state)
	case e.Kind == otel.KindSearchQuery:
		line += fmt.Sprintf("  %q -> %d", truncateRunes(e.Query, 24), e.Count)
	case e.Count > 0:
		line += fmt.Sprintf("  n=%d", e.Count)
	}
	if e.Msg != "" {
		line += "  " + truncateRunes(e.Msg, 40)
	}
	if e.Err != "" {
		line += "  ERR:" + truncateRunes(e.Err, 30)
	}
	return line
}

// formatAge formats a duration as a compact human string.
// Handles negative durations from clock skew by clamping to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

// debugStatusBar renders the status bar for the debug overlay.
func debugStatusBar(debugKey string, width int) string {
	keys := StatusBarKey.Render(debugKey) + StatusBarText.Render(":close")
	return StatusBar.Width(width).Render("  [DEBUG]  " + keys)
}
