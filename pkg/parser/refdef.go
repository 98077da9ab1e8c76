package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/refs"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// tryRefDef matches footnote definitions and link reference
// definitions. Footnotes go first since both start with a bracket.
func (p *blockParser) tryRefDef() bool {
	if p.tryFootnoteDef() {
		return true
	}
	return p.tryLinkRefDef()
}

// footnoteMarker matches the `[^id]:` prefix of a footnote
// definition, returning the id and the byte offset where content
// begins (whitespace after the colon included in the offset).
func footnoteMarker(content string) (id string, contentStart int, ok bool) {
	rest, found := strings.CutPrefix(content, "[^")
	if !found {
		return "", 0, false
	}
	close := strings.IndexByte(rest, ']')
	if close <= 0 {
		return "", 0, false
	}
	id = rest[:close]
	pos := 2 + close + 1
	if pos >= len(content) || content[pos] != ':' {
		return "", 0, false
	}
	pos++
	for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
		pos++
	}
	return id, pos, true
}

// tryFootnoteDef matches `[^id]: content`. Continuation lines are
// indented by at least four columns; blank lines stay inside the
// definition when indented content follows.
func (p *blockParser) tryFootnoteDef() bool {
	if !p.cfg.Extensions.Footnotes {
		return false
	}
	content, ending := chomp(p.line())
	id, contentStart, ok := footnoteMarker(content)
	if !ok {
		return false
	}

	close := strings.IndexByte(content, ']')
	p.b.StartNode(syntax.NodeFootnoteDef)
	p.b.Token(syntax.TokenLinkDelim, content[:2])
	p.b.Token(syntax.TokenText, content[2:close])
	p.b.Token(syntax.TokenLinkDelim, content[close:close+2])
	p.b.Token(syntax.TokenWhitespace, content[close+2:contentStart])

	var noteLines []string
	p.b.StartNode(syntax.NodePlain)
	first := content[contentStart:]
	p.b.Token(syntax.TokenText, first)
	p.b.Token(syntax.TokenNewline, ending)
	if strings.TrimSpace(first) != "" {
		noteLines = append(noteLines, first)
	}
	p.pos++

	inPlain := true
	for p.pos < len(p.lines) {
		if isBlank(p.line()) {
			next := p.pos
			for next < len(p.lines) && isBlank(p.lines[next]) {
				next++
			}
			if next >= len(p.lines) {
				break
			}
			nc, _ := chomp(p.lines[next])
			if cols, _ := indentColumns(nc); cols < 4 {
				break
			}
			if inPlain {
				p.b.FinishNode()
				inPlain = false
			}
			for p.pos < next {
				p.b.Token(syntax.TokenBlankLine, p.line())
				noteLines = append(noteLines, "")
				p.pos++
			}
			continue
		}
		c, _ := chomp(p.line())
		if cols, _ := indentColumns(c); cols < 4 {
			break
		}
		if !inPlain {
			p.b.StartNode(syntax.NodePlain)
			inPlain = true
		}
		p.emitIndentedLine(p.line())
		_, n := indentColumns(c)
		noteLines = append(noteLines, c[n:])
		p.pos++
	}
	if inPlain {
		p.b.FinishNode()
	}
	p.b.FinishNode()

	p.reg.AddFootnote(refs.Footnote{ID: id, Content: strings.Join(noteLines, "\n")})
	return true
}

// tryLinkRefDef matches `[label]: url "title"` on a single line.
func (p *blockParser) tryLinkRefDef() bool {
	content, _ := chomp(p.line())
	label, url, title, ok := parseRefDef(content)
	if !ok {
		return false
	}

	p.reg.Add(refs.Definition{Label: label, URL: url, Title: title})
	p.b.StartNode(syntax.NodeReferenceDef)
	p.emitLine(p.line())
	p.b.FinishNode()
	p.pos++
	return true
}

// parseRefDef recognizes a link reference definition. The label may
// hold escaped brackets; the destination may be angle-bracketed; the
// title is quoted with double quotes, single quotes, or parentheses.
func parseRefDef(content string) (label, url, title string, ok bool) {
	if content == "" || content[0] != '[' {
		return "", "", "", false
	}

	pos := 1
	for pos < len(content) {
		switch content[pos] {
		case '\\':
			pos += 2
			continue
		case ']':
		default:
			pos++
			continue
		}
		break
	}
	if pos >= len(content) || content[pos] != ']' || pos == 1 {
		return "", "", "", false
	}
	label = content[1:pos]
	pos++

	if pos >= len(content) || content[pos] != ':' {
		return "", "", "", false
	}
	pos++
	for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
		pos++
	}

	if pos < len(content) && content[pos] == '<' {
		pos++
		start := pos
		for pos < len(content) && content[pos] != '>' {
			pos++
		}
		if pos >= len(content) {
			return "", "", "", false
		}
		url = content[start:pos]
		pos++
	} else {
		start := pos
		for pos < len(content) && content[pos] != ' ' && content[pos] != '\t' {
			pos++
		}
		if pos == start {
			return "", "", "", false
		}
		url = content[start:pos]
	}

	title, ok = parseRefTitle(content, pos)
	if !ok {
		return "", "", "", false
	}
	return label, url, title, true
}

// parseRefTitle parses the optional quoted title after the
// destination. Anything else trailing makes the line not a
// definition.
func parseRefTitle(content string, pos int) (string, bool) {
	for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
		pos++
	}
	if pos >= len(content) {
		return "", true
	}

	open := content[pos]
	var close byte
	switch open {
	case '"', '\'':
		close = open
	case '(':
		close = ')'
	default:
		return "", false
	}
	pos++
	start := pos
	for pos < len(content) {
		switch content[pos] {
		case '\\':
			pos += 2
		case close:
			title := content[start:pos]
			rest := strings.TrimRight(content[pos+1:], " \t")
			if rest != "" {
				return "", false
			}
			return title, true
		default:
			pos++
		}
	}
	return "", false
}
