// Package parser builds lossless syntax trees for Pandoc and Quarto
// flavored Markdown. Parsing runs in three passes: a line-oriented
// block pass, a blockquote resolution pass, and an inline pass over
// the text of the resulting blocks. Concatenating the tokens of the
// returned tree reproduces the input byte for byte.
package parser

import (
	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/parser/inline"
	"github.com/yaklabco/gomdtree/pkg/refs"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// Parse parses text under the given configuration. A nil config gets
// the Quarto defaults. The returned registry holds every link
// reference and footnote definition the document declares.
func Parse(text string, cfg *config.Config) (*syntax.Node, *refs.Registry) {
	if cfg == nil {
		cfg = config.Default()
	}
	reg := refs.NewRegistry()
	green := parseDocument(text, cfg, reg)
	green = inline.Rewrite(green, cfg, reg)
	return syntax.NewRoot(green), reg
}
