package cli

import (
	"github.com/spf13/cobra"

	"pathman/internal/reconcile"
)

func newGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get paths",
		Long: "Print each selected scope's entries as one structured document, the\n" +
			"machine-readable variant of list. System comes before user.",
		Example: `  pathman get -s
  pathman get -u --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return a.engine(cmd.OutOrStdout()).Get(scopesFrom(cmd.Flags()), reconcile.Format(format))
		},
	}
	addScopeFlags(cmd.Flags(), "Get")
	cmd.Flags().StringP("format", "f", string(reconcile.FormatJSON), "Output format: json or yaml")
	return cmd
}
