package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

type markerKind int

const (
	markerBullet markerKind = iota
	markerHash
	markerDecimal
	markerLowerAlpha
	markerUpperAlpha
	markerLowerRoman
	markerUpperRoman
	markerExample
)

type listDelim int

const (
	delimPeriod listDelim = iota
	delimParen
	delimParens
)

// listMarker describes a recognized list marker: its style, its byte
// length past the indent, and the whitespace run that follows it.
type listMarker struct {
	kind        markerKind
	bullet      byte
	delim       listDelim
	len         int
	spacesAfter int
}

// markersMatch reports whether two markers continue the same list:
// bullets must share their character, ordered markers their style and
// delimiter. Example markers always match each other.
func markersMatch(a, b listMarker) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case markerBullet:
		return a.bullet == b.bullet
	case markerHash, markerExample:
		return true
	default:
		return a.delim == b.delim
	}
}

// markerBody reports whether rest can follow a marker: whitespace or
// end of line.
func markerBody(rest string) bool {
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

func wsRun(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// isTaskBox reports whether s opens with a task checkbox after
// optional whitespace.
func isTaskBox(s string) bool {
	t := strings.TrimLeft(s, " \t")
	return len(t) >= 3 && t[0] == '[' &&
		(t[1] == ' ' || t[1] == 'x' || t[1] == 'X') && t[2] == ']'
}

// parseListMarker recognizes a list marker at the start of a line
// (after indentation): bullets, #., decimal, parenthesized and
// example markers, and with fancy_lists also alphabetic and roman
// ordered markers.
func parseListMarker(line string, cfg *config.Config) (listMarker, bool) {
	trimmed := strings.TrimLeft(line, " \t")

	if len(trimmed) > 0 && (trimmed[0] == '*' || trimmed[0] == '+' || trimmed[0] == '-') {
		rest := trimmed[1:]
		if markerBody(rest) || isTaskBox(rest) {
			return listMarker{kind: markerBullet, bullet: trimmed[0], len: 1, spacesAfter: wsRun(rest)}, true
		}
	}

	if rest, ok := strings.CutPrefix(trimmed, "#."); ok && markerBody(rest) {
		return listMarker{kind: markerHash, len: 2, spacesAfter: wsRun(rest)}, true
	}

	if cfg.Extensions.ExampleLists {
		if rest, ok := strings.CutPrefix(trimmed, "(@"); ok {
			n := 0
			for n < len(rest) && (isAlnumByte(rest[n]) || rest[n] == '_' || rest[n] == '-') {
				n++
			}
			if n < len(rest) && rest[n] == ')' && markerBody(rest[n+1:]) {
				return listMarker{kind: markerExample, len: 3 + n, spacesAfter: wsRun(rest[n+1:])}, true
			}
		}
	}

	if len(trimmed) > 0 && trimmed[0] == '(' {
		rest := trimmed[1:]
		if n := digitRun(rest); n > 0 && n < len(rest) && rest[n] == ')' && markerBody(rest[n+1:]) {
			return listMarker{kind: markerDecimal, delim: delimParens, len: n + 2, spacesAfter: wsRun(rest[n+1:])}, true
		}
		if cfg.Extensions.FancyLists {
			if m, ok := parenFancyMarker(rest); ok {
				return m, true
			}
		}
	}

	if n := digitRun(trimmed); n > 0 && n < len(trimmed) {
		if d, ok := orderedDelim(trimmed[n]); ok && markerBody(trimmed[n+1:]) {
			return listMarker{kind: markerDecimal, delim: d, len: n + 1, spacesAfter: wsRun(trimmed[n+1:])}, true
		}
	}

	if cfg.Extensions.FancyLists {
		if m, ok := bareFancyMarker(trimmed); ok {
			return m, true
		}
	}

	return listMarker{}, false
}

func isAlnumByte(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func orderedDelim(b byte) (listDelim, bool) {
	switch b {
	case '.':
		return delimPeriod, true
	case ')':
		return delimParen, true
	}
	return 0, false
}

// parenFancyMarker matches (ii), (a), (A) style markers on the text
// after the opening parenthesis.
func parenFancyMarker(rest string) (listMarker, bool) {
	for _, upper := range []bool{false, true} {
		if n := romanRun(rest, upper); n > 0 && n < len(rest) && rest[n] == ')' && markerBody(rest[n+1:]) {
			kind := markerLowerRoman
			if upper {
				kind = markerUpperRoman
			}
			return listMarker{kind: kind, delim: delimParens, len: n + 2, spacesAfter: wsRun(rest[n+1:])}, true
		}
	}
	if len(rest) >= 2 && rest[1] == ')' && markerBody(rest[2:]) {
		if rest[0] >= 'a' && rest[0] <= 'z' {
			return listMarker{kind: markerLowerAlpha, delim: delimParens, len: 3, spacesAfter: wsRun(rest[2:])}, true
		}
		if rest[0] >= 'A' && rest[0] <= 'Z' {
			return listMarker{kind: markerUpperAlpha, delim: delimParens, len: 3, spacesAfter: wsRun(rest[2:])}, true
		}
	}
	return listMarker{}, false
}

// bareFancyMarker matches i. / II) / a. / B) style markers. Uppercase
// letters with a period need two following spaces, so sentences like
// "B. Traven wrote it" stay prose.
func bareFancyMarker(trimmed string) (listMarker, bool) {
	for _, upper := range []bool{false, true} {
		if n := romanRun(trimmed, upper); n > 0 && n < len(trimmed) {
			if d, ok := orderedDelim(trimmed[n]); ok && markerBody(trimmed[n+1:]) {
				kind := markerLowerRoman
				if upper {
					kind = markerUpperRoman
				}
				return listMarker{kind: kind, delim: d, len: n + 1, spacesAfter: wsRun(trimmed[n+1:])}, true
			}
		}
	}
	if len(trimmed) >= 2 {
		if d, ok := orderedDelim(trimmed[1]); ok {
			rest := trimmed[2:]
			if trimmed[0] >= 'a' && trimmed[0] <= 'z' && markerBody(rest) {
				return listMarker{kind: markerLowerAlpha, delim: d, len: 2, spacesAfter: wsRun(rest)}, true
			}
			if trimmed[0] >= 'A' && trimmed[0] <= 'Z' {
				spaces := wsRun(rest)
				min := 1
				if d == delimPeriod {
					min = 2
				}
				if spaces >= min {
					return listMarker{kind: markerUpperAlpha, delim: d, len: 2, spacesAfter: spaces}, true
				}
			}
		}
	}
	return listMarker{}, false
}

// romanRun measures a leading valid roman numeral in one case, or 0.
// Single letters other than I, V, and X are rejected to keep them
// available as alphabetic markers.
func romanRun(s string, upper bool) int {
	set := "ivxlcdm"
	if upper {
		set = "IVXLCDM"
	}
	n := 0
	for n < len(s) && strings.IndexByte(set, s[n]) >= 0 {
		n++
	}
	if n == 0 {
		return 0
	}
	numeral := strings.ToUpper(s[:n])
	if n == 1 && numeral != "I" && numeral != "V" && numeral != "X" {
		return 0
	}
	for _, bad := range []string{"IIII", "XXXX", "CCCC", "VV", "LL", "DD"} {
		if strings.Contains(numeral, bad) {
			return 0
		}
	}
	vals := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	for i := 0; i+1 < len(numeral); i++ {
		if vals[numeral[i]] < vals[numeral[i+1]] {
			pair := numeral[i : i+2]
			switch pair {
			case "IV", "IX", "XL", "XC", "CD", "CM":
			default:
				return 0
			}
		}
	}
	return n
}

// listLevel is one open list in the nesting stack. contentCol is the
// column where item content begins; lines indented to it continue the
// item, markers indented to it open a nested list.
type listLevel struct {
	marker     listMarker
	baseIndent int
	contentCol int
	afterBlank bool
	inPlain    bool
}

func indentOK(base, indent int) bool {
	if base <= 3 {
		return indent <= 3
	}
	return indent >= base && indent <= base+3
}

// tryList matches a list and runs the nesting stack machine over the
// following lines. Horizontal-rule lookalikes such as "- - -" are
// never list markers.
func (p *blockParser) tryList() bool {
	content, _ := chomp(p.line())
	m, ok := parseListMarker(content, p.cfg)
	if !ok || horizontalRuleChar(content) != 0 {
		return false
	}
	if cols, _ := indentColumns(content); cols >= 4 {
		return false
	}

	var stack []*listLevel
	p.b.StartNode(syntax.NodeList)
	cols, _ := indentColumns(content)
	stack = append(stack, &listLevel{marker: m, baseIndent: cols})
	p.startItem(stack[len(stack)-1], m)
	p.pos++

	for p.pos < len(p.lines) {
		top := stack[len(stack)-1]

		if isBlank(p.line()) {
			peek := p.pos
			for peek < len(p.lines) && isBlank(p.lines[peek]) {
				peek++
			}
			if peek >= len(p.lines) {
				break
			}
			nc, _ := chomp(p.lines[peek])
			nextCols, _ := indentColumns(nc)
			nm, hasNext := parseListMarker(nc, p.cfg)
			var consume bool
			if hasNext && horizontalRuleChar(nc) == 0 {
				sibling := markersMatch(top.marker, nm) &&
					indentOK(top.baseIndent, nextCols) && nextCols < top.contentCol
				consume = sibling || nextCols >= top.contentCol
			} else {
				consume = nextCols >= top.contentCol
			}
			if !consume {
				break
			}
			p.closePlain(top)
			p.b.Token(syntax.TokenBlankLine, p.line())
			top.afterBlank = true
			p.pos++
			continue
		}

		c, _ := chomp(p.line())
		if horizontalRuleChar(c) != 0 {
			break
		}
		lineCols, _ := indentColumns(c)
		lm, hasMarker := parseListMarker(c, p.cfg)

		if !hasMarker {
			for len(stack) > 1 && lineCols < stack[len(stack)-1].contentCol {
				p.closeLevel(&stack)
			}
			top = stack[len(stack)-1]
			if top.afterBlank && lineCols < top.contentCol {
				break
			}
			if !top.inPlain {
				p.b.StartNode(syntax.NodePlain)
				top.inPlain = true
			}
			p.emitIndentedLine(p.line())
			top.afterBlank = false
			p.pos++
			continue
		}

		matched := -1
		for level := len(stack) - 1; level >= 0; level-- {
			lc := stack[level]
			if markersMatch(lc.marker, lm) && indentOK(lc.baseIndent, lineCols) && lineCols < lc.contentCol {
				matched = level
				break
			}
		}
		if matched >= 0 {
			for len(stack) > matched+1 {
				p.closeLevel(&stack)
			}
			top = stack[len(stack)-1]
			p.closePlain(top)
			p.b.FinishNode() // ListItem
			top.afterBlank = false
			p.startItem(top, lm)
			p.pos++
			continue
		}

		if lineCols >= top.contentCol {
			p.closePlain(top)
			p.b.StartNode(syntax.NodeList)
			nested := &listLevel{marker: lm, baseIndent: lineCols}
			stack = append(stack, nested)
			p.startItem(nested, lm)
			p.pos++
			continue
		}

		// Different marker at the same or an outer level ends the list.
		break
	}

	for len(stack) > 0 {
		p.closeLevel(&stack)
	}
	return true
}

func (p *blockParser) closePlain(l *listLevel) {
	if l.inPlain {
		p.b.FinishNode()
		l.inPlain = false
	}
}

func (p *blockParser) closeLevel(stack *[]*listLevel) {
	top := (*stack)[len(*stack)-1]
	p.closePlain(top)
	p.b.FinishNode() // ListItem
	p.b.FinishNode() // List
	*stack = (*stack)[:len(*stack)-1]
}

// startItem opens a ListItem for the current line and leaves its
// first content line inside an open Plain node. The level's content
// column is recorded for continuation and nesting decisions.
func (p *blockParser) startItem(l *listLevel, m listMarker) {
	content, ending := chomp(p.line())
	cols, bytes := indentColumns(content)

	p.b.StartNode(syntax.NodeListItem)
	p.b.Token(syntax.TokenWhitespace, content[:bytes])
	p.b.Token(syntax.TokenListMarker, content[bytes:bytes+m.len])

	after := content[bytes+m.len:]
	p.b.Token(syntax.TokenWhitespace, after[:m.spacesAfter])
	rest := after[m.spacesAfter:]

	col := cols + m.len
	for i := 0; i < m.spacesAfter; i++ {
		if after[i] == '\t' {
			col = (col/tabStop + 1) * tabStop
		} else {
			col++
		}
	}
	l.baseIndent = cols
	l.contentCol = col
	l.afterBlank = false

	if p.cfg.Extensions.TaskLists && isTaskBox(rest) {
		p.b.Token(syntax.TokenTaskMarker, rest[:3])
		rest = rest[3:]
	}

	p.b.StartNode(syntax.NodePlain)
	p.b.Token(syntax.TokenText, rest)
	p.b.Token(syntax.TokenNewline, ending)
	l.inPlain = true
}
