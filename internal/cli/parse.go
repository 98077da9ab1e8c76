package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdtree/internal/ui/pretty"
	"github.com/yaklabco/gomdtree/pkg/parser"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

func newParseCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and dump its syntax tree",
		Long: `Parse a Markdown document and print its concrete syntax tree, one
element per line with byte ranges and token text. Reads standard
input when the file is "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			source, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			root, _ := parser.Parse(source, cfg)
			if err := syntax.Validate(root, source); err != nil {
				// A mismatch here is a parser defect, not a user error.
				return fmt.Errorf("internal: %w", err)
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(opts.color, out))
			pretty.RenderTree(out, root, styles)
			return nil
		},
	}
	return cmd
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
