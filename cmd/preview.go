package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/timvw/gh-ghq-cd/internal/selection"
)

// defaultPreviewWidth is used when fzf does not report its preview size.
const defaultPreviewWidth = 80

var previewCmd = &cobra.Command{
	Use:    "preview <path>",
	Short:  "Render the README of a repository",
	Hidden: true,
	Long: `Render <path>/README.md to stdout, or "No README.md" when it is missing.

Used as the fzf --preview command; the width is taken from
FZF_PREVIEW_COLUMNS when fzf sets it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		previewer := selection.NewPreviewer(selection.ThemeByName(cfg.Theme).Name, nil)
		fmt.Fprintln(cmd.OutOrStdout(), previewer.Render(cmd.Context(), args[0], previewWidth()))
		return nil
	},
}

func previewWidth() int {
	if n, err := strconv.Atoi(os.Getenv("FZF_PREVIEW_COLUMNS")); err == nil && n > 0 {
		return n
	}
	return defaultPreviewWidth
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
