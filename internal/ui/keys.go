package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the browse view bindings.
type KeyMap struct {
	Quit   key.Binding
	Focus  key.Binding
	Blur   key.Binding
	Up     key.Binding
	Down   key.Binding
	Mark   key.Binding
	Hide   key.Binding
	Reset  key.Binding
	Debug  key.Binding
	Reload key.Binding
	// Item list scrolling while the input is not focused.
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// KeyOptions overrides the configurable bindings. Empty fields keep the
// defaults.
type KeyOptions struct {
	Mark  string
	Hide  string
	Reset string
	Debug string
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c")),
		Focus:      key.NewBinding(key.WithKeys("/", "enter")),
		Blur:       key.NewBinding(key.WithKeys("esc")),
		Up:         key.NewBinding(key.WithKeys("up")),
		Down:       key.NewBinding(key.WithKeys("down")),
		Mark:       key.NewBinding(key.WithKeys("2")),
		Hide:       key.NewBinding(key.WithKeys("1")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r")),
		Debug:      key.NewBinding(key.WithKeys("ctrl+d")),
		Reload:     key.NewBinding(key.WithKeys("ctrl+l")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down")),
	}
}

// WithOptions returns a copy of km with opts applied.
func (km KeyMap) WithOptions(opts KeyOptions) KeyMap {
	if opts.Mark != "" {
		km.Mark = key.NewBinding(key.WithKeys(opts.Mark))
	}
	if opts.Hide != "" {
		km.Hide = key.NewBinding(key.WithKeys(opts.Hide))
	}
	if opts.Reset != "" {
		km.Reset = key.NewBinding(key.WithKeys(opts.Reset))
	}
	if opts.Debug != "" {
		km.Debug = key.NewBinding(key.WithKeys(opts.Debug))
	}
	return km
}
