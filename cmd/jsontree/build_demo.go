package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcvoid/jsontree/builder"
	"github.com/mcvoid/jsontree/internal/config"
	"github.com/mcvoid/jsontree/writer"
)

// newBuildDemoCmd exercises the builder package end-to-end, mirroring
// spec.md §8's scenario 4: an object with one array-valued key holding
// three unsigned numbers, written and printed.
func newBuildDemoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "build-demo",
		Short: "Build a small document with the builder API and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, cfg)

			b := builder.New()
			arr := b.MakeArray()
			for _, n := range []uint64{1, 65535, 18446744073709551615} {
				if err := b.AddToArray(arr, b.MakeNumberUnsigned(n)); err != nil {
					return err
				}
			}

			obj := b.MakeObject()
			key, err := b.MakeStringBytes([]byte("k"))
			if err != nil {
				return err
			}
			if err := b.AddToObject(obj, key, arr); err != nil {
				return err
			}

			tree, err := b.Build(obj)
			if err != nil {
				return err
			}

			out, err := writer.Write(tree)
			if err != nil {
				return err
			}

			logger.Info("build-demo complete")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
