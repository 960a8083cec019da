package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorMarked    = lipgloss.Color("214") // Amber
	colorHidden    = lipgloss.Color("203") // Red
)

// HeaderStyle for the filter title line.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// HeaderCount style for the "(H hidden, M marked)" summary.
var HeaderCount = lipgloss.NewStyle().
	Foreground(colorSecondary)

// InputStyle frames the query input.
var InputStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ResultRow style for an unselected result.
var ResultRow = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Padding(0, 1)

// SelectedRow style for the active result.
var SelectedRow = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// MatchStyle highlights query matches inside a result label.
var MatchStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true).
	Foreground(colorHighlight)

// MarkIconOn / MarkIconOff and HideIconOn / HideIconOff render row state.
var (
	MarkIconOn  = lipgloss.NewStyle().Foreground(colorMarked)
	MarkIconOff = lipgloss.NewStyle().Foreground(colorMuted)
	HideIconOn  = lipgloss.NewStyle().Foreground(colorHidden)
	HideIconOff = lipgloss.NewStyle().Foreground(colorMuted)
)

// NormalItem style for items with no verdict.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// MarkedItem style for items matching a marked tag.
var MarkedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorMarked).
	Padding(0, 1)

// ItemDescription style for the tag list after an item name.
var ItemDescription = lipgloss.NewStyle().
	Foreground(colorSecondary)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// DebugPanel frames the debug overlay.
var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// DebugHeaderStyle for section titles inside the debug overlay.
var DebugHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)
