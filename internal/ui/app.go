package ui

import (
	"strings"

	"github.com/abelbrown/tagsift/internal/logging"
	"github.com/abelbrown/tagsift/internal/otel"
	"github.com/abelbrown/tagsift/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures an App.
type Options struct {
	Keys          KeyOptions
	AnimateScroll bool
	Events        *otel.Logger
	Ring          *otel.RingBuffer // feeds the debug overlay; nil disables it
}

// App is the root Bubble Tea model.
// App does not touch item sources directly. It receives items via messages
// and owns the session, which only Update mutates.
type App struct {
	sess      *session.Session
	loadItems func() tea.Cmd

	input  textinput.Model
	keys   KeyMap
	keyOpt KeyOptions
	scroll scroller
	events *otel.Logger
	ring   *otel.RingBuffer

	focused   bool
	showDebug bool
	err       error
	width     int
	height    int
	ready     bool
	loading   bool
}

// NewApp creates an App driving sess. loadItems returns a Cmd producing an
// ItemsLoaded message; it may be nil when items are set up front.
func NewApp(sess *session.Session, loadItems func() tea.Cmd, opts Options) App {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search tags"
	ti.CharLimit = 64

	keyOpt := KeyOptions{Mark: "2", Hide: "1", Reset: "ctrl+r", Debug: "ctrl+d"}
	if opts.Keys.Mark != "" {
		keyOpt.Mark = opts.Keys.Mark
	}
	if opts.Keys.Hide != "" {
		keyOpt.Hide = opts.Keys.Hide
	}
	if opts.Keys.Reset != "" {
		keyOpt.Reset = opts.Keys.Reset
	}
	if opts.Keys.Debug != "" {
		keyOpt.Debug = opts.Keys.Debug
	}

	return App{
		sess:      sess,
		loadItems: loadItems,
		input:     ti,
		keys:      DefaultKeyMap().WithOptions(keyOpt),
		keyOpt:    keyOpt,
		scroll:    newScroller(opts.AnimateScroll),
		events:    opts.Events,
		ring:      opts.Ring,
	}
}

// Init initializes the App by loading items.
func (a App) Init() tea.Cmd {
	if a.loadItems != nil {
		return a.loadItems()
	}
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(10, msg.Width-6)
		a.ready = true
		return a, nil

	case ItemsLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			logging.Error("load items failed", "source", msg.Source, "err", msg.Err)
			a.events.Emit(otel.Event{Level: otel.LevelError, Kind: otel.KindSourceError, Comp: "ui", Source: msg.Source, Err: msg.Err.Error()})
			return a, nil
		}
		a.err = nil
		a.sess.SetItems(msg.Items)
		if !a.focused {
			a.sess.ClearResults()
		}
		a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindSourceLoad, Comp: "ui", Source: msg.Source, Count: len(msg.Items)})
		a.scroll.Jump(min(a.scroll.Offset(), max(0, len(visibleRows(a.sess.Verdicts()))-1)))
		return a, nil

	case SourceChanged:
		a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindSourceWatch, Comp: "ui", Source: msg.Path})
		return a, a.reload()

	case scrollFrame:
		if a.scroll.Step() {
			return a, frameCmd()
		}
		return a, nil
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any existing error on key press
	a.err = nil

	if otel.TraceEnabled() {
		a.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindKeyPress, Comp: "ui", Msg: msg.String()})
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Debug):
		if a.ring != nil {
			a.showDebug = !a.showDebug
		}
		return a, nil
	case key.Matches(msg, a.keys.Reset):
		if a.sess.CanReset() {
			a.sess.Reset()
			a.input.SetValue("")
		}
		return a, nil
	case key.Matches(msg, a.keys.Reload):
		return a, a.reload()
	}

	if a.focused {
		return a.handleInputKey(msg)
	}

	switch {
	case msg.String() == "q":
		return a, tea.Quit
	case key.Matches(msg, a.keys.Focus):
		a.focused = true
		a.sess.SetQuery(a.input.Value())
		return a, a.input.Focus()
	case key.Matches(msg, a.keys.ScrollDown):
		rows := len(visibleRows(a.sess.Verdicts()))
		a.scroll.Jump(min(a.scroll.Offset()+1, max(0, rows-1)))
	case key.Matches(msg, a.keys.ScrollUp):
		a.scroll.Jump(a.scroll.Offset() - 1)
	}
	return a, nil
}

// handleInputKey handles keys while the query input has focus.
func (a App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Blur):
		a.focused = false
		a.input.Blur()
		a.sess.ClearResults()
		return a, nil
	case key.Matches(msg, a.keys.Up):
		a.sess.MoveUp()
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.sess.MoveDown()
		return a, nil
	}

	// Toggle keys act on the active row; with no row active they are typed.
	if key.Matches(msg, a.keys.Mark) {
		if tag, on, ok := a.sess.ToggleMarkActive(); ok {
			logging.Debug("mark toggled", "tag", tag, "on", on)
			return a, a.scrollToMarked()
		}
	}
	if key.Matches(msg, a.keys.Hide) {
		if tag, on, ok := a.sess.ToggleHideActive(); ok {
			logging.Debug("hide toggled", "tag", tag, "on", on)
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if clean := a.sess.SetQuery(a.input.Value()); clean != a.input.Value() {
		a.input.SetValue(clean)
		a.input.CursorEnd()
	}
	return a, cmd
}

// scrollToMarked brings the first visible marked item into view unless one
// is already on screen.
func (a *App) scrollToMarked() tea.Cmd {
	rows := visibleRows(a.sess.Verdicts())
	offset, height := a.scroll.Offset(), a.listHeight()
	target := a.sess.ScrollTarget(func(i int) bool {
		r := rowOf(rows, i)
		return r >= offset && r < offset+height
	})
	if target < 0 {
		return nil
	}
	// Leave one row of context above the target.
	if a.scroll.ScrollTo(max(0, rowOf(rows, target)-1)) {
		return frameCmd()
	}
	return nil
}

func (a *App) reload() tea.Cmd {
	if a.loadItems == nil {
		return nil
	}
	a.loading = true
	return a.loadItems()
}

// listHeight returns the number of item rows that fit below the header,
// input and result rows.
func (a App) listHeight() int {
	h := a.height - 3 // header, input, status bar
	if a.focused {
		h -= len(a.sess.Results())
	}
	if a.err != nil {
		h--
	}
	return max(1, h)
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.showDebug {
		overlay := debugOverlay(a.ring, a.width, a.height-1)
		body := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, overlay)
		return body + "\n" + debugStatusBar(a.keyOpt.Debug, a.width)
	}

	var b strings.Builder
	b.WriteString(RenderHeader(a.sess.Header(), a.keyOpt.Reset, a.width))
	b.WriteString("\n")
	b.WriteString(InputStyle.Width(a.width).Render(a.input.View()))
	b.WriteString("\n")
	if a.focused {
		b.WriteString(RenderResults(a.sess.Rows(), a.sess.Selected(), a.width))
	}

	rows := visibleRows(a.sess.Verdicts())
	b.WriteString(RenderItems(a.sess.Items(), a.sess.Verdicts(), rows, a.scroll.Offset(), a.width, a.listHeight()))

	if a.err != nil {
		b.WriteString(ErrorStyle.Width(a.width).Render("Error: " + a.err.Error() + " (press any key to dismiss)"))
		b.WriteString("\n")
	}
	b.WriteString(RenderStatusBar(len(rows), len(a.sess.Items()), a.focused, a.loading, a.keyOpt, a.width))
	return b.String()
}

// Focused reports whether the query input has focus (for testing).
func (a App) Focused() bool {
	return a.focused
}

// Input returns the current input text (for testing).
func (a App) Input() string {
	return a.input.Value()
}

// Session returns the driven session (for testing).
func (a App) Session() *session.Session {
	return a.sess
}

// Err returns the error shown in the error bar, if any.
func (a App) Err() error {
	return a.err
}
