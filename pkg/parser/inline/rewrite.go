// Package inline rewrites the text tokens of a block-level tree into
// inline syntax: emphasis, code spans, math, links, citations, and
// the other Pandoc and Quarto inline constructs. The rewrite works in
// three stages per text token: collect elements, resolve emphasis
// delimiters, emit green tokens. Inline constructs never cross token
// boundaries, so emphasis cannot span lines.
package inline

import (
	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/refs"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// verbatimParents holds the node kinds whose text is never given
// inline structure: code, raw math and TeX bodies, metadata, and
// reference definitions stay exactly as the block pass left them.
var verbatimParents = map[syntax.Kind]bool{
	syntax.NodeFencedCode:   true,
	syntax.NodeIndentedCode: true,
	syntax.NodeMathBlock:    true,
	syntax.NodeLatexEnv:     true,
	syntax.NodeYAMLMetadata: true,
	syntax.NodeReferenceDef: true,
}

// Rewrite returns a copy of the tree with every text token under a
// non-verbatim parent parsed into inline syntax. The registry is the
// one the block pass filled; inline parsing records nothing new in it
// but keeps the signature symmetric with the block passes.
func Rewrite(green *syntax.GreenNode, cfg *config.Config, _ *refs.Registry) *syntax.GreenNode {
	return rewriteNode(green, cfg)
}

func rewriteNode(n *syntax.GreenNode, cfg *config.Config) *syntax.GreenNode {
	if verbatimParents[n.Kind()] {
		return n
	}

	children := n.Children()
	out := make([]syntax.GreenElement, 0, len(children))
	for _, child := range children {
		switch child := child.(type) {
		case *syntax.GreenNode:
			out = append(out, rewriteNode(child, cfg))
		case *syntax.GreenToken:
			if child.Kind() == syntax.TokenText {
				out = append(out, parseText(child.Text(), cfg, true)...)
			} else {
				out = append(out, child)
			}
		}
	}
	return syntax.NewGreenNode(n.Kind(), out)
}
