package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// divFenceOpen matches an opening div fence: three or more colons
// followed by attributes, either braced ({.class #id}) or a bare class
// word, optionally padded with trailing colons. A fence with nothing
// after the colons is a closing fence, not an opening one.
func divFenceOpen(content string) (attrs string, ok bool) {
	trimmed := strings.TrimLeft(content, " ")
	n := leadingRun(trimmed, ':')
	if n < 3 {
		return "", false
	}
	after := strings.TrimLeft(trimmed[n:], " \t")
	if after == "" {
		return "", false
	}
	if after[0] == '{' {
		close := strings.IndexByte(after, '}')
		if close < 0 {
			return "", false
		}
		return after[:close+1], true
	}
	bare := strings.TrimRight(strings.TrimRight(after, ":"), " \t")
	if bare == "" {
		return "", false
	}
	fields := strings.Fields(bare)
	return fields[0], true
}

// divFenceClose reports whether content closes a div: three or more
// colons and nothing else.
func divFenceClose(content string) bool {
	trimmed := strings.TrimLeft(content, " ")
	n := leadingRun(trimmed, ':')
	return n >= 3 && strings.TrimSpace(trimmed[n:]) == ""
}

// tryFencedDiv matches a Pandoc fenced div. The interior is parsed as
// a nested document and spliced in, so divs hold arbitrary blocks and
// nest through their own open/close pairing.
func (p *blockParser) tryFencedDiv() bool {
	if !p.cfg.Extensions.FencedDivs {
		return false
	}
	content, _ := chomp(p.line())
	if _, ok := divFenceOpen(content); !ok {
		return false
	}

	p.b.StartNode(syntax.NodeFencedDiv)
	p.emitDivFence(p.line())
	p.pos++

	depth := 1
	interiorStart := p.pos
	closePos := -1
	for i := p.pos; i < len(p.lines); i++ {
		c, _ := chomp(p.lines[i])
		if _, ok := divFenceOpen(c); ok {
			depth++
			continue
		}
		if divFenceClose(c) {
			depth--
			if depth == 0 {
				closePos = i
				break
			}
		}
	}

	interiorEnd := closePos
	if closePos < 0 {
		logging.Default().Debug("fenced div not closed, accepting to end of input")
		interiorEnd = len(p.lines)
	}

	if interiorEnd > interiorStart {
		interior := strings.Join(p.lines[interiorStart:interiorEnd], "")
		for _, el := range parseDocument(interior, p.cfg, p.reg).Children() {
			p.b.Element(el)
		}
	}
	p.pos = interiorEnd

	if closePos >= 0 {
		p.emitDivFence(p.line())
		p.pos++
	}
	p.b.FinishNode()
	return true
}

// emitDivFence emits a fence line with the colon run in its own token.
func (p *blockParser) emitDivFence(line string) {
	content, ending := chomp(line)
	trimmed := strings.TrimLeft(content, " ")
	lead := len(content) - len(trimmed)
	n := leadingRun(trimmed, ':')

	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenDivMarker, trimmed[:n])
	p.b.Token(syntax.TokenAttribute, trimmed[n:])
	p.b.Token(syntax.TokenNewline, ending)
}
