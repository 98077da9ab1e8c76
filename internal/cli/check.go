package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/internal/ui/pretty"
	"github.com/yaklabco/gomdtree/pkg/runner"
)

// ErrCheckFailed signals that at least one file failed the round-trip
// check; it selects the exit code without producing an error log.
var ErrCheckFailed = errors.New("check found failing files")

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var jobs int
	var excludes []string

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse files and verify the lossless round trip",
		Long: `Discover Markdown files under the given paths (the current directory
when none are given), parse each one, and verify that the resulting
tree reproduces its source byte for byte.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			result, err := runner.Run(cmd.Context(), runner.Options{
				Paths:        args,
				ExcludeGlobs: excludes,
				Jobs:         jobs,
				Config:       cfg,
			})
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Debug("check complete",
				logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
				logging.FieldFilesParsed, result.Stats.FilesParsed,
				logging.FieldFilesFailed, result.Stats.FilesFailed,
			)

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(opts.color, out))
			pretty.RenderSummary(out, result, styles)

			if result.HasFailures() {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "maximum concurrent workers (0 = one per CPU)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "glob patterns to skip, matched on base names")

	return cmd
}
