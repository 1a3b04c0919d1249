package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all paths",
		Example: `  pathman list -s
  pathman list -u`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.engine(cmd.OutOrStdout()).List(scopesFrom(cmd.Flags()))
		},
	}
	addScopeFlags(cmd.Flags(), "List")
	return cmd
}
