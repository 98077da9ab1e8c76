package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/refs"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// quoteMarker matches a blockquote marker at the start of a line's
// content: up to three spaces, '>', and one optional space. It
// returns the byte offsets where the marker ends and content begins.
func quoteMarker(content string) (markerEnd, contentStart int, ok bool) {
	i := 0
	for i < len(content) && i < 3 && content[i] == ' ' {
		i++
	}
	if i >= len(content) || content[i] != '>' {
		return 0, 0, false
	}
	markerEnd = i + 1
	contentStart = markerEnd
	if contentStart < len(content) && content[contentStart] == ' ' {
		contentStart++
	}
	return markerEnd, contentStart, true
}

// resolveBlockQuotes is block pass two. Pass one leaves quoted lines
// inside paragraphs; this pass finds runs of them, strips the markers,
// reparses the stripped text as a nested document, and injects the
// marker tokens back at their line starts so the tree stays lossless.
func resolveBlockQuotes(doc *syntax.GreenNode, cfg *config.Config, reg *refs.Registry) *syntax.GreenNode {
	children := doc.Children()
	out := make([]syntax.GreenElement, 0, len(children))

	for i := 0; i < len(children); {
		if !startsQuote(children[i]) {
			out = append(out, children[i])
			i++
			continue
		}

		// Collect the run: quoted paragraphs, plus blank lines that
		// sit between two of them.
		j := i
		var run []syntax.GreenElement
		for j < len(children) {
			el := children[j]
			if startsQuote(el) {
				run = append(run, el)
				j++
				continue
			}
			if tok, ok := el.(*syntax.GreenToken); ok && tok.Kind() == syntax.TokenBlankLine {
				k := j
				for k < len(children) {
					t, ok := children[k].(*syntax.GreenToken)
					if !ok || t.Kind() != syntax.TokenBlankLine {
						break
					}
					k++
				}
				if k < len(children) && startsQuote(children[k]) {
					run = append(run, children[j:k]...)
					j = k
					continue
				}
			}
			break
		}

		out = append(out, reparseQuoteRun(run, cfg, reg))
		i = j
	}

	return syntax.NewGreenNode(doc.Kind(), out)
}

// startsQuote reports whether an element is a paragraph whose first
// line carries a blockquote marker.
func startsQuote(el syntax.GreenElement) bool {
	n, ok := el.(*syntax.GreenNode)
	if !ok || n.Kind() != syntax.NodeParagraph {
		return false
	}
	text := n.Text()
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[:nl]
	}
	_, _, ok = quoteMarker(text)
	return ok
}

// reparseQuoteRun turns a run of quoted elements into a BlockQuote
// node. Markers are stripped per line (lazy lines keep no marker),
// the remainder is parsed as a document, and the markers return as
// tokens at the line starts of the new subtree.
func reparseQuoteRun(run []syntax.GreenElement, cfg *config.Config, reg *refs.Registry) *syntax.GreenNode {
	var text strings.Builder
	for _, el := range run {
		switch el := el.(type) {
		case *syntax.GreenToken:
			text.WriteString(el.Text())
		case *syntax.GreenNode:
			text.WriteString(el.Text())
		}
	}

	lines := SplitLines(text.String())
	markers := make([]string, len(lines))
	var stripped strings.Builder
	for i, line := range lines {
		content, ending := chomp(line)
		if _, contentStart, ok := quoteMarker(content); ok {
			markers[i] = content[:contentStart]
			stripped.WriteString(content[contentStart:])
		} else {
			stripped.WriteString(content)
		}
		stripped.WriteString(ending)
	}

	inner := parseDocument(stripped.String(), cfg, reg)

	inj := &markerInjector{markers: markers, atLineStart: true}
	injected := inj.rebuild(inner)
	children := injected.Children()

	// Markers the walk never reached (a fully empty document) land at
	// the end so no text is lost.
	for _, m := range inj.leftover() {
		children = append(children, syntax.NewGreenToken(syntax.TokenBlockquoteMarker, m))
	}

	return syntax.NewGreenNode(syntax.NodeBlockQuote, children)
}

// markerInjector rebuilds a green tree, inserting a blockquote marker
// token before the first token of every line that had one.
type markerInjector struct {
	markers     []string
	line        int
	atLineStart bool
}

func (m *markerInjector) rebuild(n *syntax.GreenNode) *syntax.GreenNode {
	out := make([]syntax.GreenElement, 0, len(n.Children()))
	for _, child := range n.Children() {
		switch child := child.(type) {
		case *syntax.GreenNode:
			out = append(out, m.rebuild(child))
		case *syntax.GreenToken:
			if m.atLineStart && m.line < len(m.markers) && m.markers[m.line] != "" {
				out = append(out, syntax.NewGreenToken(syntax.TokenBlockquoteMarker, m.markers[m.line]))
				m.markers[m.line] = ""
			}
			m.atLineStart = false
			if nl := strings.Count(child.Text(), "\n"); nl > 0 {
				m.line += nl
				m.atLineStart = strings.HasSuffix(child.Text(), "\n")
			}
			out = append(out, child)
		}
	}
	return syntax.NewGreenNode(n.Kind(), out)
}

func (m *markerInjector) leftover() []string {
	var out []string
	for _, mk := range m.markers {
		if mk != "" {
			out = append(out, mk)
		}
	}
	return out
}
