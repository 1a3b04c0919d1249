package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"pathman/internal/cli"
	"pathman/internal/resolve"
)

func main() {
	deps := cli.Deps{
		Fs:         afero.NewOsFs(),
		Lookup:     os.LookupEnv,
		Normalizer: callingContext(),
	}

	root := cli.NewRootCmd(deps)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pathman: %v\n", err)
		os.Exit(1)
	}
}

// callingContext captures where pathman was started from, used to resolve
// relative path arguments.
func callingContext() resolve.Normalizer {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = wd
	}
	exe, err := os.Executable()
	if err != nil {
		exe = wd
	}
	return resolve.Normalizer{
		WorkDir:     wd,
		ProgramRoot: resolve.ProgramRoot(exe),
		HomeDir:     home,
	}
}
