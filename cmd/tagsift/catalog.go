package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List catalog sources and their item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			counts, err := st.Sources(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sources: %w", err)
			}
			if len(counts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
				return nil
			}
			for _, c := range counts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d\n", c.Name, c.Count)
			}
			return nil
		},
	}
}

func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [SOURCE]",
		Short: "Delete catalog items, of one source or all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				n, err := st.DeleteSource(args[0])
				if err != nil {
					return fmt.Errorf("delete source %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d items from %s\n", n, args[0])
				return nil
			}
			if err := st.Clear(); err != nil {
				return fmt.Errorf("clear catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog cleared")
			return nil
		},
	}
}
