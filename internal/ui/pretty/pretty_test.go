package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/gomdtree/internal/ui/pretty"
	"github.com/yaklabco/gomdtree/pkg/parser"
	"github.com/yaklabco/gomdtree/pkg/runner"
)

func TestRenderTree(t *testing.T) {
	t.Parallel()

	src := "# Title\n\n```go\nx := 1\n```\n"
	root, _ := parser.Parse(src, nil)

	var buf strings.Builder
	pretty.RenderTree(&buf, root, pretty.NewStyles(false))
	out := buf.String()

	for _, want := range []string{
		"Document 0..",
		"Heading 0..8",
		"FencedCode",
		"lang=go",
		`"Title"`,
		`"x := 1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}

	// Children are indented one level deeper than their parent.
	if !strings.Contains(out, "\n  Heading") {
		t.Errorf("heading is not indented under the document:\n%s", out)
	}
}

func TestRenderTreeRawBlock(t *testing.T) {
	t.Parallel()

	root, _ := parser.Parse("```{=html}\n<hr>\n```\n", nil)

	var buf strings.Builder
	pretty.RenderTree(&buf, root, pretty.NewStyles(false))
	if !strings.Contains(buf.String(), "raw=html") {
		t.Errorf("dump is missing the raw format:\n%s", buf.String())
	}
}

func TestRenderTreeClipsLongTokens(t *testing.T) {
	t.Parallel()

	root, _ := parser.Parse(strings.Repeat("word ", 60)+"\n", nil)

	var buf strings.Builder
	pretty.RenderTree(&buf, root, pretty.NewStyles(false))
	for _, line := range strings.Split(buf.String(), "\n") {
		if len(line) > 120 {
			t.Errorf("line not clipped: %q", line)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/docs/ok.md", Bytes: 10, Tokens: 4},
			{Path: "/docs/bad.md", Error: errors.New("boom")},
		},
	}
	result.Stats.FilesDiscovered = 2
	result.Stats.FilesParsed = 1
	result.Stats.FilesFailed = 1
	result.Stats.BytesTotal = 10
	result.Stats.TokensTotal = 4

	var buf strings.Builder
	pretty.RenderSummary(&buf, result, pretty.NewStyles(false))
	out := buf.String()

	for _, want := range []string{
		"FAIL /docs/bad.md: boom",
		"2 discovered, 1 parsed, 1 failed",
		"10 bytes in 4 tokens",
		"round-trip check failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/docs/ok.md") {
		t.Error("summary lists a file that did not fail")
	}
}

func TestRenderSummarySuccess(t *testing.T) {
	t.Parallel()

	result := &runner.Result{}
	result.Stats.FilesDiscovered = 1
	result.Stats.FilesParsed = 1

	var buf strings.Builder
	pretty.RenderSummary(&buf, result, pretty.NewStyles(false))
	if !strings.Contains(buf.String(), "byte for byte") {
		t.Errorf("summary = %q", buf.String())
	}
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if pretty.IsColorEnabled("never", &buf) {
		t.Error("never mode enabled color")
	}
	if !pretty.IsColorEnabled("always", &buf) {
		t.Error("always mode disabled color")
	}
	// A plain writer is not a TTY.
	if pretty.IsColorEnabled("auto", &buf) {
		t.Error("auto mode enabled color for a non-TTY writer")
	}
}
