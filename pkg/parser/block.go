package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/refs"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// blockParser drives the matchers over the line array. Matchers are
// methods named try*; each either consumes one or more lines, emits
// into the builder, and returns true, or leaves the cursor alone and
// returns false.
type blockParser struct {
	lines []string
	pos   int
	cfg   *config.Config
	reg   *refs.Registry
	b     *syntax.Builder
}

// parseDocument runs block pass one and container resolution over a
// slice of text. It is re-entered for blockquote and fenced-div
// interiors.
func parseDocument(text string, cfg *config.Config, reg *refs.Registry) *syntax.GreenNode {
	p := &blockParser{
		lines: SplitLines(text),
		cfg:   cfg,
		reg:   reg,
		b:     syntax.NewBuilder(syntax.NodeDocument),
	}
	p.run()
	return resolveBlockQuotes(p.b.Finish(), cfg, reg)
}

func (p *blockParser) run() {
	for p.pos < len(p.lines) {
		start := p.pos
		switch {
		case p.tryBlank():
		case p.tryMetadata():
		case p.tryHeading():
		case p.tryFencedCode():
		case p.tryMathBlock():
		case p.tryFencedDiv():
		case p.tryLatexEnv():
		case p.tryIndentedCode():
		case p.tryList():
		case p.tryRefDef():
		case p.tryTable():
		case p.tryHorizontalRule():
		default:
			p.parseParagraph()
		}
		if p.pos == start {
			// Unreachable given the paragraph catch-all; skip the
			// line rather than loop forever.
			logging.Default().Debug("block parser made no progress", "line", p.pos)
			p.emitLine(p.lines[p.pos])
			p.pos++
		}
	}
}

func (p *blockParser) line() string { return p.lines[p.pos] }

func (p *blockParser) prevBlank() bool {
	return p.pos == 0 || isBlank(p.lines[p.pos-1])
}

// emitLine emits a full line as a text token plus its separator.
func (p *blockParser) emitLine(line string) {
	content, ending := chomp(line)
	p.b.Token(syntax.TokenText, content)
	p.b.Token(syntax.TokenNewline, ending)
}

// emitIndentedLine emits a line with its leading whitespace split off.
func (p *blockParser) emitIndentedLine(line string) {
	content, ending := chomp(line)
	_, n := indentColumns(content)
	p.b.Token(syntax.TokenWhitespace, content[:n])
	p.b.Token(syntax.TokenText, content[n:])
	p.b.Token(syntax.TokenNewline, ending)
}

func (p *blockParser) tryBlank() bool {
	if !isBlank(p.line()) {
		return false
	}
	p.b.Token(syntax.TokenBlankLine, p.line())
	p.pos++
	return true
}

func (p *blockParser) tryHorizontalRule() bool {
	content, ending := chomp(p.line())
	if horizontalRuleChar(content) == 0 {
		return false
	}
	trimmed := strings.TrimSpace(content)
	lead := strings.Index(content, trimmed)
	p.b.StartNode(syntax.NodeHorizontalRule)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenHorizontalRule, trimmed)
	p.b.Token(syntax.TokenWhitespace, content[lead+len(trimmed):])
	p.b.Token(syntax.TokenNewline, ending)
	p.b.FinishNode()
	p.pos++
	return true
}

// horizontalRuleChar reports the rule character if the line is a
// horizontal rule: three or more of the same '*', '-', or '_',
// optionally separated by spaces or tabs, nothing else.
func horizontalRuleChar(content string) byte {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < 3 {
		return 0
	}
	ch := trimmed[0]
	if ch != '*' && ch != '-' && ch != '_' {
		return 0
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case ch:
			count++
		case ' ', '\t':
		default:
			return 0
		}
	}
	if count < 3 {
		return 0
	}
	return ch
}

// parseParagraph is the fallback: it consumes contiguous non-blank
// lines until one opens a different block.
func (p *blockParser) parseParagraph() {
	p.b.StartNode(syntax.NodeParagraph)
	p.emitLine(p.line())
	p.pos++
	for p.pos < len(p.lines) && !isBlank(p.line()) && !p.interruptsParagraph(p.line()) {
		p.emitLine(p.line())
		p.pos++
	}
	p.b.FinishNode()
}

// interruptsParagraph reports whether a line starts a construct that
// can cut a paragraph short. Fenced code, metadata, and indented code
// need a preceding blank line, so they never interrupt.
func (p *blockParser) interruptsParagraph(line string) bool {
	content, _ := chomp(line)
	if _, _, ok := quoteMarker(content); ok {
		return true
	}
	if headingLevel(content) > 0 {
		return true
	}
	if horizontalRuleChar(content) != 0 {
		return true
	}
	if p.cfg.Extensions.FencedDivs {
		if _, ok := divFenceOpen(content); ok {
			return true
		}
	}
	if _, ok := mathFenceOpen(content); ok {
		return true
	}
	if p.cfg.Extensions.RawTex && latexEnvBegin(content) != "" {
		return true
	}
	if _, ok := parseListMarker(content, p.cfg); ok && horizontalRuleChar(content) == 0 {
		return true
	}
	return false
}
