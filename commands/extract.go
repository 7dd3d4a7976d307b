package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/clausegraph/document/parser"
)

// NewExtractCommand creates the extract command: convert a source PDF into
// the plain-text input the engine consumes. This is the only place the
// repository touches a binary document format.
func NewExtractCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <input_file> <output_file>",
		Short: "Extract plain text from a contract PDF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			p := parser.DefaultRegistry.GetByExtension(args[0])
			doc, err := p.Parse(args[0], content)
			if err != nil {
				return fmt.Errorf("extract text: %w", err)
			}

			if err := os.WriteFile(args[1], []byte(doc.Content), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			logger.Info("Extracted document text",
				"input", args[0],
				"output", args[1],
				"characters", len(doc.Content))
			return nil
		},
	}
}
