package cli

import (
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [paths...]",
		Short: "Add a path",
		Long: "Add directories to the PATH. Relative arguments are resolved against the\n" +
			"working directory; an entry already present in a scope is left alone.",
		Example: `  pathman add .my_directory        add a directory in the working directory to both paths
  pathman add -s c:\path\to\a\thing
  pathman add -u c:\path\to\a\thing`,
		RunE: a.runAdd,
	}
	addScopeFlags(cmd.Flags(), "Add the path to")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, args []string) error {
	paths := a.deps.Normalizer.NormalizeAll(args)
	_, err := a.engine(cmd.OutOrStdout()).Add(paths, scopesFrom(cmd.Flags()))
	return err
}
