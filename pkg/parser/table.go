package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// Alignment is a table column alignment, derived from colon placement
// in pipe separators or dash placement in simple table separators.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "default"
	}
}

func (p *blockParser) tryTable() bool {
	if p.cfg.Extensions.PipeTables && p.tryPipeTable() {
		return true
	}
	if p.cfg.Extensions.SimpleTables && p.trySimpleTable() {
		return true
	}
	return false
}

// pipeSeparator reports whether a line is a pipe table separator:
// cells of dashes with optional alignment colons, split by pipes.
func pipeSeparator(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.Contains(trimmed, "-") || !strings.ContainsAny(trimmed, "|") {
		return false
	}
	cells := strings.Split(strings.Trim(trimmed, "|"), "|")
	for _, cell := range cells {
		c := strings.TrimSpace(cell)
		c = strings.TrimPrefix(c, ":")
		c = strings.TrimSuffix(c, ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}

// PipeAlignments extracts the column alignments of a pipe separator
// line such as |:---|---:|:---:|.
func PipeAlignments(separator string) []Alignment {
	cells := strings.Split(strings.Trim(strings.TrimSpace(separator), "|"), "|")
	out := make([]Alignment, 0, len(cells))
	for _, cell := range cells {
		c := strings.TrimSpace(cell)
		if c == "" {
			continue
		}
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":")
		switch {
		case left && right:
			out = append(out, AlignCenter)
		case left:
			out = append(out, AlignLeft)
		case right:
			out = append(out, AlignRight)
		default:
			out = append(out, AlignDefault)
		}
	}
	return out
}

// tryPipeTable matches a header row, a separator, and data rows. The
// table ends at a blank line or the first line without a pipe.
func (p *blockParser) tryPipeTable() bool {
	content, _ := chomp(p.line())
	if !strings.Contains(content, "|") || pipeSeparator(content) {
		return false
	}
	if p.pos+1 >= len(p.lines) {
		return false
	}
	sep, _ := chomp(p.lines[p.pos+1])
	if !pipeSeparator(sep) {
		return false
	}

	p.b.StartNode(syntax.NodeTable)
	p.emitPipeRow(p.line())
	p.pos++
	p.emitSeparatorLine(p.line())
	p.pos++
	for p.pos < len(p.lines) && !isBlank(p.line()) {
		c, _ := chomp(p.line())
		if !strings.Contains(c, "|") {
			break
		}
		p.emitPipeRow(p.line())
		p.pos++
	}
	p.b.FinishNode()
	return true
}

// emitPipeRow splits a row on unescaped pipes: pipes become their own
// tokens, the text between them becomes cells.
func (p *blockParser) emitPipeRow(line string) {
	content, ending := chomp(line)
	p.b.StartNode(syntax.NodeTableRow)
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
		case '|':
			p.emitCell(content[start:i])
			p.b.Token(syntax.TokenPipe, "|")
			start = i + 1
		}
	}
	p.emitCell(content[start:])
	p.b.Token(syntax.TokenNewline, ending)
	p.b.FinishNode()
}

func (p *blockParser) emitCell(text string) {
	if text == "" {
		return
	}
	p.b.StartNode(syntax.NodeTableCell)
	p.b.Token(syntax.TokenText, text)
	p.b.FinishNode()
}

func (p *blockParser) emitSeparatorLine(line string) {
	content, ending := chomp(line)
	trimmed := strings.TrimSpace(content)
	lead := strings.Index(content, trimmed)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenTableSeparator, trimmed)
	p.b.Token(syntax.TokenWhitespace, content[lead+len(trimmed):])
	p.b.Token(syntax.TokenNewline, ending)
}

// tableColumn is a dash group span of a simple table separator, in
// byte offsets of the separator line.
type tableColumn struct {
	start, end int
}

// simpleSeparator parses a simple table separator: groups of dashes
// split by spaces. A single group is a horizontal rule, not a table.
func simpleSeparator(content string) []tableColumn {
	trimmed := strings.TrimLeft(content, " ")
	lead := len(content) - len(trimmed)
	if lead > 3 {
		return nil
	}
	trimmed = strings.TrimRight(trimmed, " ")
	if !strings.Contains(trimmed, "-") {
		return nil
	}
	if strings.Trim(trimmed, "- ") != "" {
		return nil
	}

	var cols []tableColumn
	inDashes := false
	start := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '-':
			if !inDashes {
				start = i + lead
				inDashes = true
			}
		case ' ':
			if inDashes {
				cols = append(cols, tableColumn{start: start, end: i + lead})
				inDashes = false
			}
		}
	}
	if inDashes {
		cols = append(cols, tableColumn{start: start, end: len(trimmed) + lead})
	}
	if len(cols) < 2 {
		return nil
	}
	return cols
}

// SimpleAlignments derives column alignments by comparing header text
// placement against the dash spans, the Pandoc way: dashes flush with
// both edges mean default, flush left means left, and so on.
func SimpleAlignments(separator, header string) []Alignment {
	cols := simpleSeparator(separator)
	out := make([]Alignment, len(cols))
	for i, col := range cols {
		out[i] = AlignDefault
		if header == "" || col.start >= len(header) {
			continue
		}
		end := col.end
		if end > len(header) {
			end = len(header)
		}
		cell := header[col.start:end]
		if strings.TrimSpace(cell) == "" {
			continue
		}
		textStart := len(cell) - len(strings.TrimLeft(cell, " "))
		textEnd := len(strings.TrimRight(cell, " "))
		flushLeft := textStart == 0
		flushRight := textEnd == len(cell)
		switch {
		case flushLeft && flushRight:
			out[i] = AlignDefault
		case flushLeft:
			out[i] = AlignLeft
		case flushRight:
			out[i] = AlignRight
		default:
			out[i] = AlignCenter
		}
	}
	return out
}

// trySimpleTable matches a Pandoc simple table: an optional header
// line, a dash separator, data rows, and an optional closing
// separator. The table ends at a blank line.
func (p *blockParser) trySimpleTable() bool {
	sepPos := -1
	content, _ := chomp(p.line())
	if simpleSeparator(content) != nil {
		sepPos = p.pos
	} else if !isBlank(p.line()) && p.pos+1 < len(p.lines) {
		next, _ := chomp(p.lines[p.pos+1])
		if simpleSeparator(next) != nil {
			sepPos = p.pos + 1
		}
	}
	if sepPos < 0 {
		return false
	}
	sepContent, _ := chomp(p.lines[sepPos])
	cols := simpleSeparator(sepContent)

	end := len(p.lines)
	closing := -1
	for i := sepPos + 1; i < len(p.lines); i++ {
		c, _ := chomp(p.lines[i])
		if isBlank(p.lines[i]) {
			end = i
			break
		}
		if simpleSeparator(c) != nil && (i+1 >= len(p.lines) || isBlank(p.lines[i+1])) {
			closing = i
			end = i + 1
			break
		}
	}

	dataEnd := end
	if closing >= 0 {
		dataEnd = closing
	}
	if dataEnd <= sepPos+1 {
		return false
	}

	p.b.StartNode(syntax.NodeTable)
	if sepPos > p.pos {
		p.emitSimpleRow(p.line(), cols)
		p.pos++
	}
	p.emitSeparatorLine(p.line())
	p.pos++
	for p.pos < dataEnd {
		p.emitSimpleRow(p.line(), cols)
		p.pos++
	}
	if closing >= 0 {
		p.emitSeparatorLine(p.line())
		p.pos++
	}
	p.b.FinishNode()
	return true
}

// emitSimpleRow cuts a row at the column starts of the separator.
// The first cell reaches from the line start, the last to the end of
// the line.
func (p *blockParser) emitSimpleRow(line string, cols []tableColumn) {
	content, ending := chomp(line)
	p.b.StartNode(syntax.NodeTableRow)
	for i := range cols {
		start := 0
		if i > 0 {
			start = cols[i].start
		}
		if start >= len(content) {
			break
		}
		end := len(content)
		if i+1 < len(cols) && cols[i+1].start < end {
			end = cols[i+1].start
		}
		p.emitCell(content[start:end])
	}
	p.b.Token(syntax.TokenNewline, ending)
	p.b.FinishNode()
}
