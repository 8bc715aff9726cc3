package cmd

import (
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ui"
)

//go:embed rules.md
var rulesMarkdown string

var rulesCmd = &cobra.Command{
	Use:     "rules",
	GroupID: GroupLadder,
	Short:   "Explain how ladders are evaluated",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return ui.ToPager(cmd.OutOrStdout(), ui.RenderMarkdown(rulesMarkdown), ui.PagerOptions{NoPager: noPager})
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
