package cli

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [paths...]",
		Short: "Remove a path",
		Long: "Remove directories from the PATH. Every entry equal to the resolved\n" +
			"argument is removed; absent entries are reported as [NOT FOUND].",
		Example: `  pathman remove -s c:\path\to\a\thing
  pathman remove -u c:\path\to\a\thing`,
		RunE: a.runRemove,
	}
	addScopeFlags(cmd.Flags(), "Remove the path from")
	return cmd
}

func (a *app) runRemove(cmd *cobra.Command, args []string) error {
	paths := a.deps.Normalizer.NormalizeAll(args)
	_, err := a.engine(cmd.OutOrStdout()).Remove(paths, scopesFrom(cmd.Flags()))
	return err
}
