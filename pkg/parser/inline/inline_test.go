package inline

import (
	"strings"
	"testing"

	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

func rendered(t *testing.T, input string) (*syntax.GreenNode, string) {
	t.Helper()
	els := parseText(input, config.Default(), true)
	n := syntax.NewGreenNode(syntax.NodeParagraph, els)
	return n, n.Text()
}

func TestParseTextRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain text, nothing special",
		"*em*",
		"**strong**",
		"***both***",
		"*unclosed",
		"a * b * c",
		"**foo***",
		"***foo**",
		"feas_ible but _real_",
		"`code`",
		"``a`b``",
		"`<b>x</b>`{=html}",
		"`span`{.numberLines}",
		"$x+y$",
		"$$\\sum_i x_i$$",
		"$$E = mc^2$$ {#eq-energy}",
		"$5 or $6 dollars",
		"\\(a+b\\) and \\[c\\]",
		"\\\\(a\\\\)",
		"\\*literal\\*",
		"ends with\\ space",
		"\\alpha and \\frac{1}{2}",
		"{{< video src >}}",
		"{{{< escaped >}}}",
		"2^10^ and H~2~O",
		"~~struck~~",
		"[text](url)",
		"[text](url \"title\")",
		"![alt](img.png){.big}",
		"[text][label]",
		"[collapsed][]",
		"[shortcut]",
		"![ref image][label]",
		"[@doe99; @smith2000]",
		"see @doe99 and -@smith04",
		"@{https://example.com/bib?x}",
		"[^note] and ^[an inline note]",
		"[a span]{.mark}",
		"<https://example.com> and <user@host.org>",
		"mix of *em `code` [l](u)* and $m$",
	}

	for _, input := range inputs {
		_, got := rendered(t, input)
		if got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}

func findNodes(n *syntax.GreenNode, kind syntax.Kind) []*syntax.GreenNode {
	var out []*syntax.GreenNode
	for _, c := range n.Children() {
		if child, ok := c.(*syntax.GreenNode); ok {
			if child.Kind() == kind {
				out = append(out, child)
			}
			out = append(out, findNodes(child, kind)...)
		}
	}
	return out
}

func TestEmphasisResolution(t *testing.T) {
	t.Parallel()

	n, _ := rendered(t, "*foo*")
	if got := findNodes(n, syntax.NodeEmphasis); len(got) != 1 {
		t.Errorf("*foo*: %d Emphasis nodes, want 1", len(got))
	}

	n, _ = rendered(t, "**foo**")
	if got := findNodes(n, syntax.NodeStrong); len(got) != 1 {
		t.Errorf("**foo**: %d Strong nodes, want 1", len(got))
	}

	n, _ = rendered(t, "***foo***")
	if em, st := findNodes(n, syntax.NodeEmphasis), findNodes(n, syntax.NodeStrong); len(em) != 1 || len(st) != 1 {
		t.Errorf("***foo***: %d Emphasis and %d Strong nodes, want 1 and 1", len(em), len(st))
	}

	n, _ = rendered(t, "*unclosed")
	if got := findNodes(n, syntax.NodeEmphasis); len(got) != 0 {
		t.Errorf("*unclosed: %d Emphasis nodes, want 0", len(got))
	}

	n, _ = rendered(t, "a * spaced * b")
	if got := findNodes(n, syntax.NodeEmphasis); len(got) != 0 {
		t.Errorf("space-flanked asterisks resolved to %d Emphasis nodes, want 0", len(got))
	}

	n, _ = rendered(t, "feas_ible")
	if got := findNodes(n, syntax.NodeEmphasis); len(got) != 0 {
		t.Errorf("intraword underscore resolved to %d Emphasis nodes, want 0", len(got))
	}

	n, _ = rendered(t, "**strong with *nested* em**")
	if em, st := findNodes(n, syntax.NodeEmphasis), findNodes(n, syntax.NodeStrong); len(em) != 1 || len(st) != 1 {
		t.Errorf("nested: %d Emphasis and %d Strong nodes, want 1 and 1", len(em), len(st))
	}
}

func TestEmphasisSiblingsAndLeftovers(t *testing.T) {
	t.Parallel()

	// Siblings keep source order regardless of span width.
	n, got := rendered(t, "*em* then **strong** here")
	if em, st := findNodes(n, syntax.NodeEmphasis), findNodes(n, syntax.NodeStrong); len(em) != 1 || len(st) != 1 {
		t.Errorf("siblings: %d Emphasis and %d Strong nodes, want 1 and 1", len(em), len(st))
	}
	if got != "*em* then **strong** here" {
		t.Errorf("siblings round trip = %q", got)
	}

	// A run no match consumed degrades to text even when a later run
	// does match.
	n, got = rendered(t, "feas_ible but _real_")
	if em := findNodes(n, syntax.NodeEmphasis); len(em) != 1 {
		t.Errorf("leftover run: %d Emphasis nodes, want 1", len(em))
	}
	if got != "feas_ible but _real_" {
		t.Errorf("leftover run round trip = %q", got)
	}

	// Triple delimiters nest Strong inside Emphasis, consuming each
	// run exactly once.
	n, got = rendered(t, "***both***")
	em := findNodes(n, syntax.NodeEmphasis)
	if len(em) != 1 {
		t.Fatalf("***both***: %d Emphasis nodes, want 1", len(em))
	}
	if st := findNodes(em[0], syntax.NodeStrong); len(st) != 1 {
		t.Errorf("***both***: Strong is not nested inside Emphasis")
	}
	if got != "***both***" {
		t.Errorf("***both*** round trip = %q", got)
	}
}

func TestCodeSpanShieldsDelimiters(t *testing.T) {
	t.Parallel()

	n, _ := rendered(t, "`*not em* $x$ [l](u)`")
	if got := findNodes(n, syntax.NodeCodeSpan); len(got) != 1 {
		t.Fatalf("%d CodeSpan nodes, want 1", len(got))
	}
	for _, kind := range []syntax.Kind{syntax.NodeEmphasis, syntax.NodeInlineMath, syntax.NodeLink} {
		if got := findNodes(n, kind); len(got) != 0 {
			t.Errorf("code span leaked %d %v nodes", len(got), kind)
		}
	}
}

func TestRawInlineNeedsFormatAttribute(t *testing.T) {
	t.Parallel()

	n, _ := rendered(t, "`<br/>`{=html}")
	if got := findNodes(n, syntax.NodeRawInline); len(got) != 1 {
		t.Errorf("%d RawInline nodes, want 1", len(got))
	}

	n, _ = rendered(t, "`x`{.class}")
	if got := findNodes(n, syntax.NodeRawInline); len(got) != 0 {
		t.Errorf("class attribute produced %d RawInline nodes, want 0", len(got))
	}
	if got := findNodes(n, syntax.NodeCodeSpan); len(got) != 1 {
		t.Errorf("%d CodeSpan nodes, want 1", len(got))
	}
}

func TestCitationBeatsShortcutReference(t *testing.T) {
	t.Parallel()

	n, _ := rendered(t, "[@doe99]")
	if got := findNodes(n, syntax.NodeCitation); len(got) != 1 {
		t.Errorf("%d Citation nodes, want 1", len(got))
	}
	if got := findNodes(n, syntax.NodeLink); len(got) != 0 {
		t.Errorf("bracketed citation parsed as %d Link nodes", len(got))
	}
}

func TestLinkTextForbidsReferenceLinks(t *testing.T) {
	t.Parallel()

	n, _ := rendered(t, "[outer [inner] text](url)")
	if got := findNodes(n, syntax.NodeLink); len(got) != 1 {
		t.Errorf("%d Link nodes, want 1 (no nested reference)", len(got))
	}
}

func TestInlineMathEdges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int
	}{
		{"$x$", 1},
		{"$x+y$", 1},
		{"$ x$", 0},   // space after opener
		{"$x $", 0},   // space before closer
		{"$x$5", 0},   // digit after closer
		{"$20 and $30", 0}, // currency, not math
	}
	for _, tc := range cases {
		n, _ := rendered(t, tc.input)
		if got := findNodes(n, syntax.NodeInlineMath); len(got) != tc.want {
			t.Errorf("%q: %d InlineMath nodes, want %d", tc.input, len(got), tc.want)
		}
	}
}

func TestEscapeTokens(t *testing.T) {
	t.Parallel()

	els := parseText(`\*x`, config.Default(), true)
	if len(els) < 2 {
		t.Fatalf("parseText produced %d elements, want at least 2", len(els))
	}
	tok, ok := els[0].(*syntax.GreenToken)
	if !ok {
		t.Fatalf("first element = %v, want a token", els[0].Kind())
	}
	if tok.Kind() != syntax.TokenEscapedChar || tok.Text() != `\*` {
		t.Errorf("first element = %v %q, want EscapedChar \\*", tok.Kind(), tok.Text())
	}

	els = parseText("a\\ b", config.Default(), true)
	found := false
	for _, el := range els {
		if t2, ok := el.(*syntax.GreenToken); ok && t2.Kind() == syntax.TokenNonbreakingSpace {
			found = true
		}
	}
	if !found {
		t.Error("backslash-space did not produce a NonbreakingSpace token")
	}
}

func TestRecognizers(t *testing.T) {
	t.Parallel()

	if n, cs, ce, _, ok := parseCodeSpan("``a`b`` rest"); !ok || n != 7 || "``a`b`` rest"[cs:ce] != "a`b" {
		t.Errorf("parseCodeSpan(``a`b``) = %d %v", n, ok)
	}
	if _, _, _, _, ok := parseCodeSpan("``never closed`"); ok {
		t.Error("parseCodeSpan accepted a shorter closing run")
	}

	if n, _, _, ok := parseStrikeout("~~~x~~"); ok {
		t.Errorf("parseStrikeout accepted a triple-tilde opener (len %d)", n)
	}
	if _, _, _, ok := parseStrikeout("~~x~~~"); ok {
		t.Error("parseStrikeout accepted a triple-tilde closer")
	}

	if n, _, suppress, ok := parseBareCitation("-@smith04."); !ok || n != 9 || !suppress {
		t.Errorf("parseBareCitation(-@smith04.) = %d suppress=%v ok=%v", n, suppress, ok)
	}
	if n, ok := citationKeyLen("Foo_bar--baz"); !ok || n != 7 {
		t.Errorf("citationKeyLen(Foo_bar--baz) = %d, want 7", n)
	}
	if n, ok := citationKeyLen("key:value:"); !ok || n != 9 {
		t.Errorf("citationKeyLen(key:value:) = %d, want 9", n)
	}

	if n, _, _, ls, le, shortcut, ok := parseReferenceLink("[text][label]", true); !ok || n != 13 || shortcut || "[text][label]"[ls:le] != "label" {
		t.Errorf("parseReferenceLink full form = %d shortcut=%v ok=%v", n, shortcut, ok)
	}
	if n, _, _, ls, le, shortcut, ok := parseReferenceLink("[text][]", true); !ok || n != 8 || shortcut || ls != le {
		t.Errorf("parseReferenceLink collapsed = %d shortcut=%v ok=%v", n, shortcut, ok)
	}
	if n, _, _, _, _, shortcut, ok := parseReferenceLink("[text]", true); !ok || n != 6 || !shortcut {
		t.Errorf("parseReferenceLink shortcut = %d shortcut=%v ok=%v", n, shortcut, ok)
	}
	if _, _, _, _, _, _, ok := parseReferenceLink("[text]", false); ok {
		t.Error("parseReferenceLink allowed a shortcut when disabled")
	}

	if n, _, _, ok := parseAutolink("<https://x.org> tail"); !ok || n != 15 {
		t.Errorf("parseAutolink = %d ok=%v", n, ok)
	}
	if _, _, _, ok := parseAutolink("<not a url>"); ok {
		t.Error("parseAutolink accepted whitespace in the body")
	}
}

func TestDisplayMathConsumesLongerClose(t *testing.T) {
	t.Parallel()

	n, _, ce, ok := parseDisplayMath("$$x$$$")
	if !ok || n != 6 || ce != 3 {
		t.Errorf("parseDisplayMath($$x$$$) = len %d contentEnd %d ok %v", n, ce, ok)
	}
}

func TestCollectAdvances(t *testing.T) {
	t.Parallel()

	// Inputs built from nothing but construct-start bytes must still
	// terminate and account for every byte.
	for _, input := range []string{"*", "[", "![", "$", "$$", "^", "~", "\\", "@", "-@", "{{<", "`"} {
		n := syntax.NewGreenNode(syntax.NodeParagraph, parseText(input, config.Default(), true))
		if n.Text() != input {
			t.Errorf("degenerate input %q reproduced as %q", input, n.Text())
		}
	}
}

func TestVerbatimParentsSkipped(t *testing.T) {
	t.Parallel()

	code := syntax.NewGreenNode(syntax.NodeFencedCode, []syntax.GreenElement{
		syntax.NewGreenToken(syntax.TokenText, "*not em*"),
	})
	doc := syntax.NewGreenNode(syntax.NodeDocument, []syntax.GreenElement{code})

	got := Rewrite(doc, config.Default(), nil)
	if len(findNodes(got, syntax.NodeEmphasis)) != 0 {
		t.Error("Rewrite parsed inside a fenced code block")
	}
	if got.Text() != doc.Text() {
		t.Errorf("Rewrite changed text: %q -> %q", doc.Text(), got.Text())
	}
}

func TestRewriteParagraphText(t *testing.T) {
	t.Parallel()

	para := syntax.NewGreenNode(syntax.NodeParagraph, []syntax.GreenElement{
		syntax.NewGreenToken(syntax.TokenText, "see *this* now"),
		syntax.NewGreenToken(syntax.TokenNewline, "\n"),
	})
	doc := syntax.NewGreenNode(syntax.NodeDocument, []syntax.GreenElement{para})

	got := Rewrite(doc, config.Default(), nil)
	if len(findNodes(got, syntax.NodeEmphasis)) != 1 {
		t.Error("Rewrite did not parse paragraph text")
	}
	if got.Text() != "see *this* now\n" {
		t.Errorf("Rewrite text = %q", got.Text())
	}
}

func TestShortcodeForms(t *testing.T) {
	t.Parallel()

	n, _ := rendered(t, "{{< meta title >}}")
	if got := findNodes(n, syntax.NodeShortcode); len(got) != 1 {
		t.Fatalf("%d Shortcode nodes, want 1", len(got))
	}

	n, _ = rendered(t, "{{{< escaped >}}}")
	sc := findNodes(n, syntax.NodeShortcode)
	if len(sc) != 1 {
		t.Fatalf("%d Shortcode nodes for escaped form, want 1", len(sc))
	}
	if !strings.HasPrefix(sc[0].Text(), "{{{<") {
		t.Errorf("escaped shortcode text = %q", sc[0].Text())
	}
}
