package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// codeFenceOpen matches an opening code fence: up to three spaces of
// indent, then three or more backticks or tildes. Backtick fences may
// not carry backticks in their info string.
func codeFenceOpen(content string) (ch byte, fenceLen, indent int, ok bool) {
	trimmed, lead := stripIndent(content, 3)
	if trimmed == "" {
		return 0, 0, 0, false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return 0, 0, 0, false
	}
	n := leadingRun(trimmed, c)
	if n < 3 {
		return 0, 0, 0, false
	}
	if c == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return 0, 0, 0, false
	}
	return c, n, lead, true
}

// codeFenceClose reports whether content closes a fence opened with
// fenceLen characters of ch: the same character, at least as many,
// and nothing after but whitespace.
func codeFenceClose(content string, ch byte, fenceLen int) bool {
	trimmed, _ := stripIndent(content, 3)
	n := leadingRun(trimmed, ch)
	if n < fenceLen {
		return false
	}
	return strings.TrimSpace(trimmed[n:]) == ""
}

func (p *blockParser) tryFencedCode() bool {
	// A fence opens only at the start of the document or after a blank
	// line; inside a paragraph it stays text.
	if !p.prevBlank() {
		return false
	}
	content, ending := chomp(p.line())
	ch, fenceLen, lead, ok := codeFenceOpen(content)
	if !ok {
		return false
	}

	trimmed := content[lead:]
	p.b.StartNode(syntax.NodeFencedCode)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenCodeFence, trimmed[:fenceLen])
	p.b.Token(syntax.TokenCodeInfo, trimmed[fenceLen:])
	p.b.Token(syntax.TokenNewline, ending)
	p.pos++

	for p.pos < len(p.lines) {
		c, e := chomp(p.line())
		if codeFenceClose(c, ch, fenceLen) {
			t, l := stripIndent(c, 3)
			n := leadingRun(t, ch)
			p.b.Token(syntax.TokenWhitespace, c[:l])
			p.b.Token(syntax.TokenCodeFence, t[:n])
			p.b.Token(syntax.TokenWhitespace, t[n:])
			p.b.Token(syntax.TokenNewline, e)
			p.pos++
			break
		}
		p.b.Token(syntax.TokenText, c)
		p.b.Token(syntax.TokenNewline, e)
		p.pos++
	}
	p.b.FinishNode()
	return true
}

// tryIndentedCode matches code indented by at least four columns. It
// needs a preceding blank line, so it never cuts into a paragraph.
// Blank lines inside the block are kept, trailing ones are not.
func (p *blockParser) tryIndentedCode() bool {
	if !p.prevBlank() {
		return false
	}
	content, _ := chomp(p.line())
	if cols, _ := indentColumns(content); cols < 4 || isBlank(p.line()) {
		return false
	}

	p.b.StartNode(syntax.NodeIndentedCode)
	for p.pos < len(p.lines) {
		if isBlank(p.line()) {
			// Only part of the block if more indented code follows.
			next := p.pos
			for next < len(p.lines) && isBlank(p.lines[next]) {
				next++
			}
			if next >= len(p.lines) {
				break
			}
			c, _ := chomp(p.lines[next])
			if cols, _ := indentColumns(c); cols < 4 {
				break
			}
			for p.pos < next {
				p.b.Token(syntax.TokenBlankLine, p.line())
				p.pos++
			}
			continue
		}
		c, _ := chomp(p.line())
		if cols, _ := indentColumns(c); cols < 4 {
			break
		}
		p.emitIndentedLine(p.line())
		p.pos++
	}
	p.b.FinishNode()
	return true
}
