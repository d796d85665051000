package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcvoid/jsontree/internal/config"
	"github.com/mcvoid/jsontree/parser"
	"github.com/mcvoid/jsontree/writer"
)

func newFmtCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Round-trip a JSON file through the canonical writer",
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

			out, err := writer.Write(v)
			if err != nil {
				logger.ParseError("write", err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
