package cli

import (
	"github.com/spf13/cobra"
)

func newCleanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean all paths, remove unfindable paths",
		Long: "Remove every entry that does not exist on this machine. An entry starting\n" +
			"with a %NAME% reference is kept when it exists after expanding NAME.\n" +
			"The system PATH is cleaned before the user PATH.",
		Example: `  pathman clean -s
  pathman clean -u`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.engine(cmd.OutOrStdout()).Clean(scopesFrom(cmd.Flags()))
			return err
		},
	}
	addScopeFlags(cmd.Flags(), "Clean")
	return cmd
}
