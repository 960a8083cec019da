package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print every tag found in the items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sess, err := loadSession(cmd, cfg)
			if err != nil {
				return err
			}

			vocab := sess.Vocabulary()
			if count, _ := cmd.Flags().GetBool("count"); count {
				fmt.Fprintln(cmd.OutOrStdout(), len(vocab))
				return nil
			}
			for _, tag := range vocab {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().Bool("count", false, "Print only the number of tags")
	return cmd
}

func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Rank tags for a query",
		Long:  `Print the tags a query would list in the filter: prefix matches first, then substring matches, with every match wrapped in the configured highlight markers.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				cfg.Search.Limit, _ = cmd.Flags().GetInt("limit")
			}
			sess, err := loadSession(cmd, cfg)
			if err != nil {
				return err
			}

			sess.SetQuery(args[0])
			plain, _ := cmd.Flags().GetBool("plain")
			for _, tag := range sess.Results() {
				if !plain {
					tag = sess.Highlight(tag, cfg.Search.HighlightOpen, cfg.Search.HighlightClose)
				}
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().IntP("limit", "n", 0, "Maximum number of tags (default from config)")
	cmd.Flags().Bool("plain", false, "Do not wrap matches in highlight markers")
	return cmd
}
