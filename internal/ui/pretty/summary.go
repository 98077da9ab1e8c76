package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/gomdtree/pkg/runner"
)

// RenderSummary writes the outcome of a multi-file run: failures
// first, one line each, then the aggregate counts and a status line.
func RenderSummary(w io.Writer, result *runner.Result, styles *Styles) {
	for _, outcome := range result.Files {
		if outcome.Error == nil {
			continue
		}
		fmt.Fprintf(w, "%s %s: %v\n",
			styles.Failure.Render("FAIL"),
			styles.FilePath.Render(outcome.Path),
			outcome.Error,
		)
	}

	stats := result.Stats
	fmt.Fprintf(w, "%s %s\n",
		styles.SummaryTitle.Render("files:"),
		styles.SummaryValue.Render(fmt.Sprintf("%d discovered, %d parsed, %d failed",
			stats.FilesDiscovered, stats.FilesParsed, stats.FilesFailed)),
	)
	fmt.Fprintf(w, "%s %s\n",
		styles.SummaryTitle.Render("size:"),
		styles.SummaryValue.Render(fmt.Sprintf("%d bytes in %d tokens",
			stats.BytesTotal, stats.TokensTotal)),
	)

	if result.HasFailures() {
		fmt.Fprintln(w, styles.Failure.Render("round-trip check failed"))
	} else {
		fmt.Fprintln(w, styles.Success.Render("all files reproduce byte for byte"))
	}
}
