package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pathman/internal/tui"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse for paths",
		Long: "Pick a directory in the folder dialog, then choose whether to add it to or\n" +
			"remove it from the system PATH, the user PATH or both.",
		Example: "  pathman browse",
		Args:    cobra.NoArgs,
		RunE:    a.runBrowse,
	}
}

func (a *app) runBrowse(cmd *cobra.Command, _ []string) error {
	dir, ok, err := a.deps.Picker.PickDirectory(a.deps.Normalizer.WorkDir)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no directory selected")
		return nil
	}

	action, err := a.deps.Choose(dir)
	if err != nil {
		return err
	}
	log.Debug().Str("dir", dir).Str("action", action.Label).Msg("browse")

	paths := []string{a.deps.Normalizer.Normalize(dir)}
	engine := a.engine(cmd.OutOrStdout())
	switch action.Op {
	case tui.OpAdd:
		_, err = engine.Add(paths, action.Scopes)
	case tui.OpRemove:
		_, err = engine.Remove(paths, action.Scopes)
	}
	return err
}
