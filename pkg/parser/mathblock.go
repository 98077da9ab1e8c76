package parser

import (
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// mathFenceOpen matches an opening display math fence: two or more
// dollar signs with nothing else on the line.
func mathFenceOpen(content string) (fenceLen int, ok bool) {
	trimmed, _ := stripIndent(content, 3)
	n := leadingRun(trimmed, '$')
	if n < 2 {
		return 0, false
	}
	if !isBlank(trimmed[n:]) {
		return 0, false
	}
	return n, true
}

// mathFenceClose reports whether content closes a fence of fenceLen
// dollars: at least as many dollars and nothing else.
func mathFenceClose(content string, fenceLen int) bool {
	trimmed, _ := stripIndent(content, 3)
	n := leadingRun(trimmed, '$')
	return n >= fenceLen && isBlank(trimmed[n:])
}

func (p *blockParser) tryMathBlock() bool {
	content, ending := chomp(p.line())
	fenceLen, ok := mathFenceOpen(content)
	if !ok {
		return false
	}

	trimmed, lead := stripIndent(content, 3)
	p.b.StartNode(syntax.NodeMathBlock)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenMathDelim, trimmed[:fenceLen])
	p.b.Token(syntax.TokenWhitespace, trimmed[fenceLen:])
	p.b.Token(syntax.TokenNewline, ending)
	p.pos++

	closed := false
	contentStart := p.pos
	for p.pos < len(p.lines) {
		c, _ := chomp(p.line())
		if mathFenceClose(c, fenceLen) {
			closed = true
			break
		}
		p.pos++
	}

	for i := contentStart; i < p.pos; i++ {
		p.emitLine(p.lines[i])
	}

	if closed {
		c, e := chomp(p.line())
		t, l := stripIndent(c, 3)
		n := leadingRun(t, '$')
		p.b.Token(syntax.TokenWhitespace, c[:l])
		p.b.Token(syntax.TokenMathDelim, t[:n])
		p.b.Token(syntax.TokenWhitespace, t[n:])
		p.b.Token(syntax.TokenNewline, e)
		p.pos++
	}
	p.b.FinishNode()
	return true
}
