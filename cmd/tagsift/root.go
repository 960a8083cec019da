package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/tagsift/internal/config"
	"github.com/abelbrown/tagsift/internal/fetch"
	"github.com/abelbrown/tagsift/internal/store"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tagsift",
		Short:         "Filter and highlight list items by their tags",
		Long:          `Mark tags you care about and hide the ones you don't; tagsift highlights or suppresses every item whose text carries them.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	addPersistentFlags(rootCmd)

	browse := NewBrowseCmd()
	rootCmd.RunE = browse.RunE
	addSourceFlags(rootCmd)
	rootCmd.Flags().Bool("watch", false, "Reload when the --html file changes")

	rootCmd.AddCommand(
		browse,
		NewImportCmd(),
		NewTagsCmd(),
		NewSearchCmd(),
		NewSourcesCmd(),
		NewClearCmd(),
	)
	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Config file (default $TAGSIFT_CONFIG or ~/.tagsift/config.json)")
	cmd.PersistentFlags().String("db", "", "Catalog database path (overrides config)")
}

// loadConfig reads the config named by --config and applies --db.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.DBPath = db
	}
	return cfg, nil
}

// openStore opens the catalog, creating its directory when needed.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.Store.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Store.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return store.Open(cfg.Store.DBPath)
}

func newFetcher(cfg *config.Config) *fetch.Fetcher {
	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return fetch.NewFetcher(timeout, cfg.Fetch.RatePerSecond, cfg.Fetch.Burst)
}
