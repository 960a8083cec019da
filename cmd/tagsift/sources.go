package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abelbrown/tagsift/internal/config"
	"github.com/abelbrown/tagsift/internal/fetch"
	"github.com/abelbrown/tagsift/internal/session"
	"github.com/abelbrown/tagsift/internal/store"
	"github.com/spf13/cobra"
)

// itemSource is a session.Source with a display name.
type itemSource struct {
	name string
	src  session.Source
}

// sourceSet concatenates several sources in order. One failing source fails
// the whole load so the TUI never shows a silently partial list.
type sourceSet struct {
	sources []itemSource
	watch   string // local file to watch, if any
	closers []func() error
}

// Items implements session.Source.
func (s *sourceSet) Items(ctx context.Context) ([]store.Item, error) {
	var all []store.Item
	for _, src := range s.sources {
		items, err := src.src.Items(ctx)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.name, err)
		}
		all = append(all, items...)
	}
	return all, nil
}

// Name joins the source names for status lines.
func (s *sourceSet) Name() string {
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.name
	}
	return strings.Join(names, ", ")
}

func (s *sourceSet) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("html", "", "Read items from a product listing page (file or URL)")
	cmd.Flags().String("rss", "", "Read items from an RSS or Atom feed URL")
	cmd.Flags().String("layout", fetch.LayoutAuto, "HTML layout: layout1, layout2 or empty to detect")
}

// resolveSources picks the item sources for a command: --html/--rss flags
// first, then the sources listed in the config, then the catalog.
func resolveSources(cmd *cobra.Command, cfg *config.Config) (*sourceSet, error) {
	htmlLoc, _ := cmd.Flags().GetString("html")
	rssURL, _ := cmd.Flags().GetString("rss")
	layout, _ := cmd.Flags().GetString("layout")

	fetcher := newFetcher(cfg)
	set := &sourceSet{}

	if htmlLoc != "" {
		set.sources = append(set.sources, itemSource{
			name: sourceName(htmlLoc),
			src:  fetch.NewHTML(fetcher, sourceName(htmlLoc), htmlLoc, layout),
		})
		if !strings.Contains(htmlLoc, "://") {
			set.watch = htmlLoc
		}
	}
	if rssURL != "" {
		set.sources = append(set.sources, itemSource{
			name: sourceName(rssURL),
			src:  fetch.NewRSS(fetcher, sourceName(rssURL), rssURL),
		})
	}
	if len(set.sources) > 0 {
		return set, nil
	}

	for _, sc := range cfg.Sources {
		switch sc.Kind {
		case "rss":
			set.sources = append(set.sources, itemSource{name: sc.Name, src: fetch.NewRSS(fetcher, sc.Name, sc.Location())})
		case "html":
			set.sources = append(set.sources, itemSource{name: sc.Name, src: fetch.NewHTML(fetcher, sc.Name, sc.Location(), sc.Layout)})
			if sc.Path != "" && set.watch == "" {
				set.watch = sc.Path
			}
		}
	}
	if len(set.sources) > 0 {
		return set, nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	set.sources = append(set.sources, itemSource{name: "catalog", src: st})
	set.closers = append(set.closers, st.Close)
	return set, nil
}

// sourceName derives a short display name from a file path or URL.
func sourceName(location string) string {
	if i := strings.Index(location, "://"); i >= 0 {
		host := location[i+3:]
		if j := strings.IndexByte(host, '/'); j >= 0 {
			host = host[:j]
		}
		return host
	}
	return strings.TrimSuffix(filepath.Base(location), filepath.Ext(location))
}

// loadSession builds a session over the resolved sources and loads it once.
func loadSession(cmd *cobra.Command, cfg *config.Config) (*session.Session, error) {
	set, err := resolveSources(cmd, cfg)
	if err != nil {
		return nil, err
	}
	defer set.Close()

	sess := session.New(session.Options{Limit: cfg.Search.Limit, Locale: cfg.Search.Locale})
	if err := sess.Load(cmd.Context(), set); err != nil {
		return nil, err
	}
	return sess, nil
}
