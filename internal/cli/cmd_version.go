package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"pathman/internal/model"
)

func newVersionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE:  a.runVersion,
	}
	cmd.Flags().Bool("check", false, "Check GitHub for a newer release")
	return cmd
}

// CheckLatest asks GitHub for the newest tagged release of owner/repository.
func CheckLatest(owner, repository, current string) (*latest.CheckResponse, error) {
	return latest.Check(&latest.GithubTag{
		Owner:      owner,
		Repository: repository,
	}, current)
}

func (a *app) runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pathman version %s\n", model.Version)

	check, _ := cmd.Flags().GetBool("check")
	if !check {
		return nil
	}

	res, err := a.deps.CheckUpdate(a.cfg.Update.Owner, a.cfg.Update.Repository, model.Version)
	if err != nil {
		// An unreachable release feed is reported, not fatal.
		fmt.Fprintf(out, "Could not check for updates: %v\n", err)
		return nil
	}
	if res.Outdated {
		fmt.Fprintf(out, "A new version is available: %s (you have %s)\n", res.Current, model.Version)
		fmt.Fprintf(out, "Download it from https://github.com/%s/%s/releases\n", a.cfg.Update.Owner, a.cfg.Update.Repository)
	} else {
		fmt.Fprintf(out, "You are using the latest version: %s\n", model.Version)
	}
	return nil
}
