package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timvw/gh-ghq-cd/internal/command"
	"github.com/timvw/gh-ghq-cd/internal/ghq"
	"github.com/timvw/gh-ghq-cd/internal/selection"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all repositories",
	Long: `List every ghq repository as "<display>\t<full path>", one per line.

The display column is the path relative to its ghq root. This is the same
format the fzf finder is fed, so the output can be piped into other filters:

  gh ghq-cd list | fzf --with-nth 1 --delimiter '\t' | cut -f2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runner := command.System{}
		if err := runner.Check(cfg.GhqPath); err != nil {
			return err
		}
		client := ghq.New(runner, cfg.GhqPath)

		roots, err := client.Roots(cmd.Context())
		if err != nil {
			return err
		}
		repos, err := client.ListFullPath(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), selection.EncodeItems(selection.BuildItems(roots, repos)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
