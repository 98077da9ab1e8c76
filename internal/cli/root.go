// Package cli provides the Cobra command structure for gomdtree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdtree/internal/configloader"
	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions carries the persistent flags shared by all subcommands.
type rootOptions struct {
	debug      bool
	configPath string
	color      string
	flavor     string
}

// loadConfig resolves the run configuration from the flags and the
// environment.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, _, err := configloader.Resolve(o.configPath, "", config.Flavor(o.flavor))
	return cfg, err
}

// NewRootCommand creates the root gomdtree command with all
// subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gomdtree",
		Short: "A lossless syntax tree for Pandoc and Quarto Markdown",
		Long: `gomdtree parses Pandoc and Quarto flavored Markdown into a lossless
concrete syntax tree: every byte of the input, whitespace and markers
included, is present in the tree, and concatenating its tokens
reproduces the source exactly.

The parse command dumps the tree of a single document; the check
command parses whole directories and verifies the round-trip property
for every file.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if opts.debug {
				level = "debug"
			}
			logging.SetLevel(level)
			// Subcommands and the runner pick the logger up from the
			// command context.
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.New(level)))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&opts.flavor, "flavor", "",
		"dialect flavor when no config file applies: quarto, pandoc, commonmark")

	rootCmd.AddCommand(newParseCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
