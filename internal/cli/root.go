// Package cli wires the pathman verbs to the reconciliation engine.
package cli

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"pathman/internal/config"
	"pathman/internal/logging"
	"pathman/internal/model"
	"pathman/internal/picker"
	"pathman/internal/reconcile"
	"pathman/internal/resolve"
	"pathman/internal/store"
	"pathman/internal/tui"
)

// Deps are the collaborators a command tree runs against. Zero values are
// filled with the real implementations by NewRootCmd.
type Deps struct {
	// Backend overrides the configured storage (registry or file).
	Backend     store.Backend
	Fs          afero.Fs
	Lookup      resolve.LookupFunc
	Normalizer  resolve.Normalizer
	Picker      picker.DirectoryPicker
	Choose      func(dir string) (tui.Action, error)
	LoadConfig  func(path string) (*config.Config, error)
	SetupLogger func(verbosity int, noColor bool)
	CheckUpdate func(owner, repository, current string) (*latest.CheckResponse, error)
}

func (d *Deps) fill() {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.Picker == nil {
		d.Picker = picker.NewDialog()
	}
	if d.Choose == nil {
		d.Choose = func(dir string) (tui.Action, error) { return tui.Choose(dir) }
	}
	if d.LoadConfig == nil {
		d.LoadConfig = config.Load
	}
	if d.SetupLogger == nil {
		d.SetupLogger = logging.SetupLogger
	}
	if d.CheckUpdate == nil {
		d.CheckUpdate = CheckLatest
	}
}

// app carries state shared by the commands of one invocation.
type app struct {
	deps Deps
	cfg  *config.Config
}

// NewRootCmd builds the pathman command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	deps.fill()
	a := &app{deps: deps}

	cmd := &cobra.Command{
		Use:   "pathman",
		Short: "Manage the user and system PATH environment variables",
		Long: "pathman adds, removes, lists, audits and cleans the directories stored in\n" +
			"the Windows user and system PATH. Without -s/--system or -u/--user a\n" +
			"command applies to both scopes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown verbs fall through to help.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Bool("batch", false, "Apply all changes to a scope in a single registry write")
	pf.String("store-file", "", "Keep PATH values in this YAML file instead of the registry")
	pf.String("config", "", "Config file (default "+config.DefaultPath()+")")

	cmd.AddCommand(
		newAddCmd(a),
		newRemoveCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newCleanCmd(a),
		newAuditCmd(a),
		newBrowseCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := a.deps.LoadConfig(path)
	if err != nil {
		return err
	}
	if flags.Changed("verbose") {
		cfg.Verbosity, _ = flags.GetCount("verbose")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("batch") {
		cfg.Batch, _ = flags.GetBool("batch")
	}
	if flags.Changed("store-file") {
		cfg.Store.File, _ = flags.GetString("store-file")
	}
	a.cfg = cfg

	a.deps.SetupLogger(cfg.Verbosity, cfg.NoColor)
	return nil
}

func (a *app) backend() store.Backend {
	if a.deps.Backend != nil {
		return a.deps.Backend
	}
	if a.cfg.Store.File != "" {
		return store.NewFileBackend(a.deps.Fs, a.cfg.Store.File)
	}
	return store.NewRegistryBackend()
}

func (a *app) engine(out io.Writer) *reconcile.Engine {
	return reconcile.NewEngine(
		store.New(a.backend()),
		resolve.New(a.deps.Fs, a.deps.Lookup),
		reconcile.NewPrinter(out, a.cfg.NoColor),
		reconcile.Options{
			Batch:         a.cfg.Batch,
			ReportMissing: a.cfg.ReportMissing,
		},
	)
}

// addScopeFlags registers -s/--system and -u/--user on a verb.
func addScopeFlags(fs *pflag.FlagSet, verb string) {
	fs.BoolP("system", "s", false, verb+" the system PATH environment variable")
	fs.BoolP("user", "u", false, verb+" the user PATH environment variable")
}

// scopesFrom resolves the scope flags once per invocation.
func scopesFrom(fs *pflag.FlagSet) model.ScopeSet {
	system, _ := fs.GetBool("system")
	user, _ := fs.GetBool("user")
	return model.ResolveScopes(system, user)
}
