package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// tryMetadata matches a YAML metadata block or, at the very start of
// the document, a Pandoc title block.
func (p *blockParser) tryMetadata() bool {
	if p.tryYAMLBlock() {
		return true
	}
	return p.tryTitleBlock()
}

// tryYAMLBlock matches:
//
//	---          (document start or preceded by a blank line)
//	key: value
//	---          (or ..., tolerated missing at EOF)
//
// The line after the opening delimiter must be non-blank, which
// distinguishes the delimiter from a horizontal rule.
func (p *blockParser) tryYAMLBlock() bool {
	content, _ := chomp(p.line())
	if strings.TrimSpace(content) != "---" {
		return false
	}
	if !p.prevBlank() {
		return false
	}
	if p.pos+1 >= len(p.lines) || isBlank(p.lines[p.pos+1]) {
		return false
	}

	p.b.StartNode(syntax.NodeYAMLMetadata)
	p.emitDelimLine(p.line())
	p.pos++
	closed := false
	for p.pos < len(p.lines) {
		c, _ := chomp(p.line())
		t := strings.TrimSpace(c)
		if t == "---" || t == "..." {
			p.emitDelimLine(p.line())
			p.pos++
			closed = true
			break
		}
		p.emitLine(p.line())
		p.pos++
	}
	if !closed {
		logging.Default().Debug("metadata block not closed, accepting to end of input")
	}
	p.b.FinishNode()
	return true
}

// emitDelimLine emits a `---` / `...` delimiter line, keeping any
// surrounding whitespace in its own tokens.
func (p *blockParser) emitDelimLine(line string) {
	content, ending := chomp(line)
	trimmed := strings.TrimSpace(content)
	lead := strings.Index(content, trimmed)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenMetadataDelim, trimmed)
	p.b.Token(syntax.TokenWhitespace, content[lead+len(trimmed):])
	p.b.Token(syntax.TokenNewline, ending)
}

// tryTitleBlock matches a Pandoc title block at document start: up to
// three fields (% title, % author, % date), each allowing indented
// continuation lines. A blank line ends the block.
func (p *blockParser) tryTitleBlock() bool {
	if p.pos != 0 {
		return false
	}
	content, _ := chomp(p.line())
	if !strings.HasPrefix(strings.TrimLeft(content, " \t"), "%") {
		return false
	}

	p.b.StartNode(syntax.NodeTitleBlock)
	fields := 0
	for p.pos < len(p.lines) && fields < 3 {
		c, ending := chomp(p.line())
		trimmed := strings.TrimLeft(c, " \t")
		if !strings.HasPrefix(trimmed, "%") {
			break
		}
		lead := len(c) - len(trimmed)
		p.b.Token(syntax.TokenWhitespace, c[:lead])
		p.b.Token(syntax.TokenTitleMarker, "%")
		p.b.Token(syntax.TokenText, trimmed[1:])
		p.b.Token(syntax.TokenNewline, ending)
		fields++
		p.pos++

		// Continuation lines start with whitespace and are not new
		// fields.
		for p.pos < len(p.lines) {
			cc, _ := chomp(p.line())
			if isBlank(p.line()) || !strings.HasPrefix(cc, " ") {
				break
			}
			if strings.HasPrefix(strings.TrimLeft(cc, " \t"), "%") {
				break
			}
			p.emitLine(p.line())
			p.pos++
		}
		if p.pos < len(p.lines) && isBlank(p.line()) {
			break
		}
	}
	p.b.FinishNode()
	return true
}
