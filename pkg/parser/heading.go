package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// headingLevel returns the ATX heading level (1-6) of a line, or 0.
// The hashes may be indented by up to three spaces and must be
// followed by whitespace or the end of the line.
func headingLevel(content string) int {
	trimmed, _ := stripIndent(content, 3)
	n := leadingRun(trimmed, '#')
	if n == 0 || n > 6 {
		return 0
	}
	rest := trimmed[n:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0
	}
	return n
}

func (p *blockParser) tryHeading() bool {
	content, ending := chomp(p.line())
	level := headingLevel(content)
	if level == 0 {
		return false
	}

	trimmed, lead := stripIndent(content, 3)

	p.b.StartNode(syntax.NodeHeading)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenHeadingMarker, trimmed[:level])

	rest := trimmed[level:]
	ws := len(rest) - len(strings.TrimLeft(rest, " \t"))
	p.b.Token(syntax.TokenWhitespace, rest[:ws])

	// The heading text may close with an attribute block and may be
	// padded with trailing hashes; both stay outside the content node.
	text := rest[ws:]
	var attrs, afterAttrs string
	if before, a, ok := trailingAttributes(text); ok {
		attrs = a
		afterAttrs = text[len(before)+len(a):]
		text = before
	}
	core := strings.TrimRight(text, "# \t")
	suffix := text[len(core):]

	p.b.StartNode(syntax.NodeHeadingContent)
	p.b.Token(syntax.TokenText, core)
	p.b.FinishNode()
	p.b.Token(syntax.TokenText, suffix)
	p.b.Token(syntax.TokenAttribute, attrs)
	p.b.Token(syntax.TokenWhitespace, afterAttrs)
	p.b.Token(syntax.TokenNewline, ending)
	p.b.FinishNode()
	p.pos++
	return true
}
