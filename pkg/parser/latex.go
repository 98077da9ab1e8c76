package parser

import (
	"strings"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// latexEnvBegin extracts the environment name from a \begin{name}
// line, or returns "".
func latexEnvBegin(content string) string {
	trimmed := strings.TrimLeft(content, " ")
	rest, ok := strings.CutPrefix(trimmed, `\begin{`)
	if !ok {
		return ""
	}
	close := strings.IndexByte(rest, '}')
	if close <= 0 {
		return ""
	}
	return rest[:close]
}

// latexEnvEnd extracts the environment name from an \end{name} line,
// or returns "".
func latexEnvEnd(content string) string {
	trimmed := strings.TrimLeft(content, " ")
	rest, ok := strings.CutPrefix(trimmed, `\end{`)
	if !ok {
		return ""
	}
	close := strings.IndexByte(rest, '}')
	if close <= 0 {
		return ""
	}
	return rest[:close]
}

// tryLatexEnv matches a raw LaTeX environment block. Environments may
// nest; the block runs until the \end matching the outermost \begin,
// or to the end of input if none is found.
func (p *blockParser) tryLatexEnv() bool {
	if !p.cfg.Extensions.RawTex {
		return false
	}
	content, _ := chomp(p.line())
	name := latexEnvBegin(content)
	if name == "" {
		return false
	}

	p.b.StartNode(syntax.NodeLatexEnv)
	p.emitDelimiterLine(p.line())
	p.pos++

	stack := []string{name}
	contentStart := p.pos
	closePos := -1
	for i := p.pos; i < len(p.lines); i++ {
		c, _ := chomp(p.lines[i])
		if nested := latexEnvBegin(c); nested != "" {
			stack = append(stack, nested)
			continue
		}
		if end := latexEnvEnd(c); end != "" && end == stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				closePos = i
				break
			}
		}
	}

	contentEnd := closePos
	if closePos < 0 {
		logging.Default().Debug("latex environment has no matching end", "env", name)
		contentEnd = len(p.lines)
	}

	for i := contentStart; i < contentEnd; i++ {
		p.emitLine(p.lines[i])
	}
	p.pos = contentEnd

	if closePos >= 0 {
		p.emitDelimiterLine(p.line())
		p.pos++
	}
	p.b.FinishNode()
	return true
}

// emitDelimiterLine emits a \begin or \end line as a delimiter token.
func (p *blockParser) emitDelimiterLine(line string) {
	content, ending := chomp(line)
	trimmed := strings.TrimLeft(content, " ")
	lead := len(content) - len(trimmed)
	p.b.Token(syntax.TokenWhitespace, content[:lead])
	p.b.Token(syntax.TokenLatexDelim, trimmed)
	p.b.Token(syntax.TokenNewline, ending)
}
