package main

import (
	"fmt"

	"github.com/abelbrown/tagsift/internal/config"
	"github.com/abelbrown/tagsift/internal/fetch"
	"github.com/abelbrown/tagsift/internal/session"
	"github.com/spf13/cobra"
)

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Fetch items into the catalog",
	}
	cmd.AddCommand(newImportRSSCmd(), newImportHTMLCmd())
	return cmd
}

func newImportRSSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rss NAME URL",
		Short: "Import an RSS or Atom feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return importItems(cmd, args[0], fetch.NewRSS(newFetcher(cfg), args[0], args[1]), cfg)
		},
	}
}

func newImportHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html FILE_OR_URL",
		Short: "Import a product listing page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = sourceName(args[0])
			}
			layout, _ := cmd.Flags().GetString("layout")
			return importItems(cmd, name, fetch.NewHTML(newFetcher(cfg), name, args[0], layout), cfg)
		},
	}
	cmd.Flags().String("name", "", "Source name (default: derived from the file name or host)")
	cmd.Flags().String("layout", fetch.LayoutAuto, "HTML layout: layout1, layout2 or empty to detect")
	return cmd
}

// importItems fetches src and upserts its items into the catalog.
func importItems(cmd *cobra.Command, name string, src session.Source, cfg *config.Config) error {
	items, err := src.Items(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch %s: %w", name, err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	added, err := st.SaveItems(items)
	if err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items from %s (%d new)\n", len(items), name, added)
	return nil
}
