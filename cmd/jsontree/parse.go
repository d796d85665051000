package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcvoid/jsontree/internal/config"
	"github.com/mcvoid/jsontree/iterator"
	"github.com/mcvoid/jsontree/parser"
	"github.com/mcvoid/jsontree/value"
)

func newParseCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a JSON file and print a tree summary",
		Args:  cobra.ExactArgs(1),
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
			logger.Info("parsed document", "file", args[0])

			if cfg.StrictDuplicates {
				for _, k := range v.DuplicateKeys() {
					logger.Warn("duplicate object key", "key", k)
				}
			}

			it := iterator.Tree(v)
			fmt.Fprintf(cmd.OutOrStdout(), "root kind: %s\n", v.Kind)
			fmt.Fprintf(cmd.OutOrStdout(), "value count: %d\n", it.Count())
			printSummary(cmd, v, 0, cfg.MaxDepth)
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, v *value.Value, depth, maxDepth int) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	label := v.Kind.String()
	if v.Key != nil {
		label = string(v.Key) + ": " + label
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", indent, label)
	for _, c := range v.Children {
		printSummary(cmd, c, depth+1, maxDepth)
	}
}
