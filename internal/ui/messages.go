// Package ui provides the Bubble Tea TUI for tagsift.
package ui

import "github.com/abelbrown/tagsift/internal/store"

// ItemsLoaded is sent when a source finished producing items.
type ItemsLoaded struct {
	Source string
	Items  []store.Item
	Err    error
}

// SourceChanged is sent when a watched source file changed on disk.
type SourceChanged struct {
	Path string
}

// scrollFrame advances the item list scroll animation by one frame.
type scrollFrame struct{}
