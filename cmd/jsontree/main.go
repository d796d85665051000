// Command jsontree is the thin driver harness spec.md §1 describes as
// "example drivers... CLI scaffolding" — out of the engine's scope, but
// given an actual home here per SPEC_FULL.md §6. It wires the engine
// packages (parser, builder, iterator, writer) behind a small Cobra CLI,
// the way opal-lang-opal and dhamidi-sai structure their own command-line
// entry points in the example pack.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcvoid/jsontree/internal/config"
	"github.com/mcvoid/jsontree/internal/obslog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsontree",
		Short:         "Parse, inspect, and emit JSON through the jsontree engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newParseCmd(cfg))
	root.AddCommand(newFindCmd(cfg))
	root.AddCommand(newFmtCmd(cfg))
	root.AddCommand(newBuildDemoCmd(cfg))

	return root
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *obslog.Logger {
	return obslog.New(cmd.ErrOrStderr(), cfg.Debug)
}
