package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcvoid/jsontree/internal/config"
	"github.com/mcvoid/jsontree/iterator"
	"github.com/mcvoid/jsontree/parser"
)

func newFindCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "find <file> <key>",
		Short: "Print every value whose key matches <key>, in pre-order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, cfg)
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			v, err := parser.ParseWithOptions(data, &parser.Options{MaxDepth: cfg.MaxDepth})
			if err != nil {
				logger.ParseError("parse", err)
				return err
			}

			if cfg.StrictDuplicates {
				for _, k := range v.DuplicateKeys() {
					logger.Warn("duplicate object key", "key", k)
				}
			}

			it, err := iterator.FindKeyBytes(v, []byte(args[1]))
			if err != nil {
				return err
			}
			if it == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "no match for key %q\n", args[1])
				return nil
			}

			for match, ok := it.First(); ok; match, ok = it.Next() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[1], match.String())
			}
			logger.Info("find complete", "key", args[1], "matches", it.Count())
			return nil
		},
	}
}
