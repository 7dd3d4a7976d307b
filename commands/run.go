// Package commands defines the clausegraph CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c360studio/clausegraph/config"
	"github.com/c360studio/clausegraph/document"
	"github.com/c360studio/clausegraph/export"
	"github.com/c360studio/clausegraph/parse"
)

// NewRunCommand creates the run command: parse a document and emit one JSON
// artifact per clause plus the master index.
func NewRunCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run <input_file> [output_dir]",
		Short: "Parse a contract document into clause artifacts",
		Long: `Run parses the General Conditions of a FIDIC Red Book 1999 document
into a structured clause tree and writes one JSON artifact per clause plus
a master index artifact into the output directory.

The input must be UTF-8 plain text from an upstream extraction stage; use
the extract command to produce it from a PDF.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(logger).Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			outputDir := cfg.Parser.OutputDir
			if len(args) > 1 {
				outputDir = args[1]
			}

			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}

			engine := parse.NewEngine(parse.Options{
				SummaryLength: cfg.Parser.SummaryLength,
				FullTextLimit: cfg.Parser.FullTextLimit,
				Logger:        logger,
			})
			collection := engine.Parse(doc)

			writer := export.NewWriter(outputDir, logger)
			if err := writer.WriteAll(collection); err != nil {
				return err
			}

			fmt.Printf("Parsed %d clauses into %s\n", collection.Len(), outputDir)
			return nil
		},
	}
}
