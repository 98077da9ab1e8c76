package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gomdtree/pkg/langdetect"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// defaultTokenText caps the rendered length of a token's text when the
// terminal width is unknown, so long lines do not wrap the dump.
const defaultTokenText = 60

// RenderTree writes an indented dump of the syntax tree: one line per
// element, nodes with their byte ranges, tokens with their quoted
// text. Fenced code nodes show the language resolved from their info
// string.
func RenderTree(w io.Writer, root *syntax.Node, styles *Styles) {
	renderNode(w, root, styles, tokenTextBudget(w), 0)
}

// tokenTextBudget sizes the token text clip from the terminal width
// when the writer has one.
func tokenTextBudget(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return defaultTokenText
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= defaultTokenText {
		return defaultTokenText
	}
	// Leave room for indentation, the kind name, and the byte range.
	return width - 40
}

func renderNode(w io.Writer, n *syntax.Node, styles *Styles, budget, depth int) {
	indent := strings.Repeat("  ", depth)
	r := n.Range()
	fmt.Fprintf(w, "%s%s %s%s\n",
		indent,
		styles.NodeKind.Render(n.Kind().String()),
		styles.Range.Render(fmt.Sprintf("%d..%d", r.Start, r.End)),
		codeLanguage(n, styles),
	)

	for _, el := range n.ChildrenWithTokens() {
		switch el := el.(type) {
		case *syntax.Node:
			renderNode(w, el, styles, budget, depth+1)
		case *syntax.Token:
			renderToken(w, el, styles, budget, depth+1)
		}
	}
}

func renderToken(w io.Writer, t *syntax.Token, styles *Styles, budget, depth int) {
	indent := strings.Repeat("  ", depth)
	r := t.Range()
	fmt.Fprintf(w, "%s%s %s %s\n",
		indent,
		styles.TokenKind.Render(t.Kind().String()),
		styles.Range.Render(fmt.Sprintf("%d..%d", r.Start, r.End)),
		styles.TokenText.Render(clip(strconv.Quote(t.Text()), budget)),
	)
}

// codeLanguage returns the " lang=..." suffix for fenced code nodes
// with a resolvable info string, or "".
func codeLanguage(n *syntax.Node, styles *Styles) string {
	if n.Kind() != syntax.NodeFencedCode {
		return ""
	}
	for _, el := range n.ChildrenWithTokens() {
		t, ok := el.(*syntax.Token)
		if !ok || t.Kind() != syntax.TokenCodeInfo {
			continue
		}
		info := langdetect.ParseInfo(t.Text())
		switch {
		case info.RawFormat != "":
			return " " + styles.Language.Render("raw="+info.RawFormat)
		case info.Language != "":
			return " " + styles.Language.Render("lang="+info.Language)
		}
		return ""
	}
	return ""
}

func clip(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	return s[:budget-3] + `..."`
}
