package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/tagsift/internal/fetch"
	"github.com/abelbrown/tagsift/internal/logging"
	"github.com/abelbrown/tagsift/internal/otel"
	"github.com/abelbrown/tagsift/internal/session"
	"github.com/abelbrown/tagsift/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	loadTimeout   = 60 * time.Second
	watchDebounce = 300 * time.Millisecond
)

func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive filter",
		Long:  `Browse items from the catalog, an HTML listing or a feed, and mark or hide them by tag.`,
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
	addSourceFlags(cmd)
	cmd.Flags().Bool("watch", false, "Reload when the --html file changes")
	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.Init(""); err != nil {
		return err
	}
	defer logging.Close()

	events, ring, closeEvents, err := openEventLog()
	if err != nil {
		logging.Warn("event log disabled", "err", err)
	}
	defer closeEvents()
	events.Info(otel.KindStartup, "main", "browse")

	set, err := resolveSources(cmd, cfg)
	if err != nil {
		return err
	}
	defer set.Close()

	sess := session.New(session.Options{
		Limit:  cfg.Search.Limit,
		Locale: cfg.Search.Locale,
		Events: events,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	loadItems := func() tea.Cmd {
		return func() tea.Msg {
			loadCtx, done := context.WithTimeout(ctx, loadTimeout)
			defer done()
			start := time.Now()
			items, err := set.Items(loadCtx)
			logging.Info("items loaded", "source", set.Name(), "count", len(items), "dur", time.Since(start), "err", err)
			return ui.ItemsLoaded{Source: set.Name(), Items: items, Err: err}
		}
	}

	app := ui.NewApp(sess, loadItems, ui.Options{
		Keys: ui.KeyOptions{
			Mark:  cfg.Keys.Mark,
			Hide:  cfg.Keys.Hide,
			Reset: cfg.Keys.Reset,
			Debug: cfg.Keys.Debug,
		},
		AnimateScroll: cfg.UI.AnimateScroll,
		Events:        events,
		Ring:          ring,
	})
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	watch, _ := cmd.Flags().GetBool("watch")
	if (watch || cfg.UI.WatchSources) && set.watch != "" {
		path := set.watch
		go func() {
			err := fetch.Watch(ctx, path, watchDebounce, func() {
				events.Info(otel.KindSourceWatch, "fetch", path)
				program.Send(ui.SourceChanged{Path: path})
			})
			if err != nil {
				logging.Error("watch failed", "path", path, "err", err)
			}
		}()
	}

	_, err = program.Run()
	events.Info(otel.KindShutdown, "main", "browse")
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// openEventLog opens today's JSONL event log next to the text log and
// attaches a ring buffer for the debug overlay. On error it still returns a
// usable in-memory logger.
func openEventLog() (*otel.Logger, *otel.RingBuffer, func(), error) {
	ring := otel.NewRingBuffer(otel.DefaultRingSize)

	dir, err := logging.DefaultDir()
	if err == nil {
		path := filepath.Join(dir, fmt.Sprintf("events-%s.jsonl", time.Now().Format("2006-01-02")))
		var f *os.File
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			events := otel.NewLogger(f)
			events.SetRingBuffer(ring)
			return events, ring, func() { _ = events.Close() }, nil
		}
	}

	events := otel.NewNullLogger()
	events.SetRingBuffer(ring)
	return events, ring, func() { _ = events.Close() }, err
}
