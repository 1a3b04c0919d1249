package cli

import (
	"github.com/spf13/cobra"
)

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit all paths",
		Long:  "Report every entry as VALID or BROKEN without changing anything.",
		Example: `  pathman audit -s
  pathman audit -u`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.engine(cmd.OutOrStdout()).Audit(scopesFrom(cmd.Flags()))
			return err
		},
	}
	addScopeFlags(cmd.Flags(), "Audit")
	return cmd
}
