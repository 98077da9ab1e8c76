package parser_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/parser"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// mustParse parses with the default configuration and fails the test
// if the tree does not reproduce the input.
func mustParse(t *testing.T, input string) *syntax.Node {
	t.Helper()
	root, _ := parser.Parse(input, nil)
	if err := syntax.Validate(root, input); err != nil {
		t.Fatalf("Validate(%q): %v", input, err)
	}
	return root
}

// nodesOfKind returns every node of the given kind in the subtree.
func nodesOfKind(root *syntax.Node, kind syntax.Kind) []*syntax.Node {
	var out []*syntax.Node
	for _, n := range root.Descendants() {
		if n.Kind() == kind {
			out = append(out, n)
		}
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"empty":              "",
		"plain paragraph":    "just some text\n",
		"no final newline":   "last line has no newline",
		"crlf endings":       "one\r\ntwo\r\n\r\nthree\r\n",
		"blank runs":         "a\n\n\n\nb\n",
		"atx headings":       "# One\n\n## Two ##\n\n### Three {#sec-three .unnumbered}\n",
		"indented heading":   "   # Indented\n",
		"paragraph break":    "first\nsecond\n# cut by heading\n",
		"fenced code":        "```go\nfunc main() {}\n```\n",
		"tilde fence":        "~~~~\nliteral *stuff*\n~~~~\n",
		"unclosed fence":     "```\nnever closed\n",
		"indented code":      "para\n\n    indented code\n    more code\n\nafter\n",
		"math block":         "$$\n\\frac{a}{b}\n$$\n",
		"latex env":          "\\begin{align}\nx &= y\n\\end{align}\n",
		"fenced div":         "::: {.callout-note}\nInside the div.\n:::\n",
		"nested divs":        ":::: outer\n::: inner\ndeep\n:::\n::::\n",
		"unclosed div":       "::: warning\nstill inside\n",
		"bullet list":        "- one\n- two\n- three\n",
		"ordered list":       "1. first\n2. second\n",
		"fancy list":         "(a) alpha\n(b) beta\n",
		"roman list":         "i. one\nii. two\n",
		"example list":       "(@good) A good example.\n(@bad) A bad one.\n",
		"hash list":          "#. first\n#. second\n",
		"task list":          "- [x] done\n- [ ] pending\n",
		"nested list":        "- outer\n  - inner\n  - inner too\n- outer again\n",
		"loose list":         "- one\n\n- two\n",
		"list continuation":  "1. first line\n   continued here\n2. second\n",
		"reference def":      "[label]: https://example.com \"The Title\"\n",
		"angle dest def":     "[spaced]: <https://example.com/a b>\n",
		"footnote def":       "[^1]: The note text.\n    Continued on the next line.\n",
		"footnote gap":       "[^long]: First paragraph.\n\n    Second paragraph.\n",
		"pipe table":         "| a | b |\n|---|---|\n| 1 | 2 |\n",
		"aligned pipes":      "x | y\n:--- | ---:\n1 | 2\n",
		"simple table":       "right  left\n-----  ----\n   12  ab\n",
		"blockquote":         "> quoted\n> more quoted\n",
		"lazy blockquote":    "> starts here\nand continues lazily\n",
		"nested blockquote":  "> outer\n> > inner\n> outer again\n",
		"quote gap":          "> first\n\n> second\n",
		"yaml metadata":      "---\ntitle: Test\nauthor: Someone\n---\n\nBody text.\n",
		"unclosed metadata":  "---\ntitle: runs to the end\n",
		"title block":        "% The Title\n% The Author\n% 2024-01-01\n\nText follows.\n",
		"horizontal rules":   "***\n\n- - -\n\n___\n",
		"inline mix":         "Text with *em*, **strong**, `code`, and $x+y$ math.\n",
		"inline links":       "See [docs](https://example.com) and ![img](pic.png){width=50%}.\n",
		"reference links":    "See [the docs][docs] and [collapsed][].\n\n[docs]: /docs\n",
		"citations":          "As shown [@doe99, pp. 33-35] and @smith04 argued.\n",
		"footnote refs":      "A claim[^1] and an inline one.^[Right here.]\n",
		"shortcodes":         "{{< video https://example.com >}}\n",
		"display crossref":   "$$E = mc^2$$ {#eq-energy}\n",
		"spans and strikes":  "H~2~O, x^2^, and ~~deleted~~ text.\n",
		"escapes":            "a\\*b and a line\\\nbreak and nb\\ space\n",
		"autolink":           "Go to <https://example.com/path> now.\n",
		"bracketed span":     "A [styled span]{.smallcaps} here.\n",
		"raw inline":         "`<b>bold</b>`{=html} raw\n",
		"everything quoted":  "> # Quoted heading\n>\n> - quoted item\n> - another\n>\n> ```\n> quoted code\n> ```\n",
		"div with list":      "::: exercises\n1. do this\n2. then this\n:::\n",
		"unicode text":       "emphase *réussie* et café\n",
		"lone delimiters":    "a * b and $5 plus $6, nothing closes\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mustParse(t, doc)
		})
	}
}

func TestFencedCodeNeedsBlankBoundary(t *testing.T) {
	t.Parallel()

	// A fence directly after another block stays paragraph text.
	root := mustParse(t, "# heading\n```\ncode\n```\n")
	if got := len(nodesOfKind(root, syntax.NodeFencedCode)); got != 0 {
		t.Errorf("fence after heading: got %d FencedCode nodes, want 0", got)
	}

	root = mustParse(t, "some prose\n```\ncode\n```\n")
	if got := len(nodesOfKind(root, syntax.NodeFencedCode)); got != 0 {
		t.Errorf("fence inside paragraph: got %d FencedCode nodes, want 0", got)
	}

	root = mustParse(t, "some prose\n\n```\ncode\n```\n")
	if got := len(nodesOfKind(root, syntax.NodeFencedCode)); got != 1 {
		t.Errorf("fence after blank: got %d FencedCode nodes, want 1", got)
	}
}

func TestHeadingStructure(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "## Title text {#sec-id}\n")
	headings := nodesOfKind(root, syntax.NodeHeading)
	if len(headings) != 1 {
		t.Fatalf("got %d headings, want 1", len(headings))
	}
	content := headings[0].FirstChildOfKind(syntax.NodeHeadingContent)
	if content == nil {
		t.Fatal("heading has no content node")
	}
	if got := content.Text(); got != "Title text" {
		t.Errorf("heading content = %q, want %q", got, "Title text")
	}

	var attr string
	for _, tok := range headings[0].Tokens() {
		if tok.Kind() == syntax.TokenAttribute {
			attr = tok.Text()
		}
	}
	if attr != "{#sec-id}" {
		t.Errorf("heading attribute = %q, want %q", attr, "{#sec-id}")
	}
}

func TestBlockquoteResolution(t *testing.T) {
	t.Parallel()

	t.Run("simple", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "> quoted\n> more\n")
		children := root.Children()
		if len(children) != 1 || children[0].Kind() != syntax.NodeBlockQuote {
			t.Fatalf("top level = %v, want one BlockQuote", kinds(children))
		}
		if paras := nodesOfKind(root, syntax.NodeParagraph); len(paras) != 1 {
			t.Errorf("got %d paragraphs inside quote, want 1", len(paras))
		}
	})

	t.Run("lazy continuation", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "> starts quoted\nlazy line\n")
		if quotes := nodesOfKind(root, syntax.NodeBlockQuote); len(quotes) != 1 {
			t.Fatalf("got %d blockquotes, want 1", len(quotes))
		}
		if paras := nodesOfKind(root, syntax.NodeParagraph); len(paras) != 1 {
			t.Errorf("lazy line split the paragraph: %d paragraphs", len(paras))
		}
	})

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "> outer\n> > inner\n")
		if quotes := nodesOfKind(root, syntax.NodeBlockQuote); len(quotes) != 2 {
			t.Fatalf("got %d blockquotes, want 2", len(quotes))
		}
	})

	t.Run("blank line joins quotes", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "> first\n\n> second\n")
		if quotes := nodesOfKind(root, syntax.NodeBlockQuote); len(quotes) != 1 {
			t.Fatalf("got %d blockquotes, want 1", len(quotes))
		}
	})

	t.Run("quoted blocks", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "> # Heading\n>\n> - item\n> - item\n")
		if got := len(nodesOfKind(root, syntax.NodeHeading)); got != 1 {
			t.Errorf("got %d headings inside quote, want 1", got)
		}
		if got := len(nodesOfKind(root, syntax.NodeList)); got != 1 {
			t.Errorf("got %d lists inside quote, want 1", got)
		}
	})
}

func TestListStructure(t *testing.T) {
	t.Parallel()

	t.Run("items", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "- one\n- two\n- three\n")
		if got := len(nodesOfKind(root, syntax.NodeList)); got != 1 {
			t.Fatalf("got %d lists, want 1", got)
		}
		if got := len(nodesOfKind(root, syntax.NodeListItem)); got != 3 {
			t.Errorf("got %d items, want 3", got)
		}
	})

	t.Run("nesting", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "- outer\n  - inner\n- outer\n")
		if got := len(nodesOfKind(root, syntax.NodeList)); got != 2 {
			t.Errorf("got %d lists, want 2", got)
		}
	})

	t.Run("task markers", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "- [x] done\n- [ ] todo\n")
		count := 0
		for _, tok := range root.Tokens() {
			if tok.Kind() == syntax.TokenTaskMarker {
				count++
			}
		}
		if count != 2 {
			t.Errorf("got %d task markers, want 2", count)
		}
	})

	t.Run("rule is not a list", func(t *testing.T) {
		t.Parallel()
		root := mustParse(t, "- - -\n")
		if got := len(nodesOfKind(root, syntax.NodeList)); got != 0 {
			t.Errorf("got %d lists from a horizontal rule line", got)
		}
		if got := len(nodesOfKind(root, syntax.NodeHorizontalRule)); got != 1 {
			t.Errorf("got %d rules, want 1", got)
		}
	})
}

func TestTableStructure(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\n")
	tables := nodesOfKind(root, syntax.NodeTable)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	rows := nodesOfKind(root, syntax.NodeTableRow)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if cells := rows[0].Children(); len(cells) != 2 {
		t.Errorf("header has %d cells, want 2", len(cells))
	}
}

func TestSimpleTable(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "right  left\n-----  ----\n   12  ab\n   34  cd\n")
	if got := len(nodesOfKind(root, syntax.NodeTable)); got != 1 {
		t.Fatalf("got %d tables, want 1", got)
	}
	if got := len(nodesOfKind(root, syntax.NodeTableRow)); got != 3 {
		t.Errorf("got %d rows, want 3", got)
	}
}

func TestRegistryDefinitions(t *testing.T) {
	t.Parallel()

	doc := "Some text.\n\n" +
		"[Foo Bar]: https://example.com/foo \"Foo's page\"\n" +
		"[plain]: /relative\n"
	root, reg := parser.Parse(doc, nil)
	if err := syntax.Validate(root, doc); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if reg.Len() != 2 {
		t.Fatalf("registry holds %d definitions, want 2", reg.Len())
	}
	def, ok := reg.Get("FOO  BAR")
	if !ok {
		t.Fatal("lookup with changed case and spacing failed")
	}
	if def.URL != "https://example.com/foo" || def.Title != "Foo's page" {
		t.Errorf("definition = %+v", def)
	}
	if def, _ := reg.Get("plain"); def.Title != "" {
		t.Errorf("titleless definition has title %q", def.Title)
	}
}

func TestRegistryFootnotes(t *testing.T) {
	t.Parallel()

	doc := "[^note]: First line.\n    Second line.\n"
	root, reg := parser.Parse(doc, nil)
	if err := syntax.Validate(root, doc); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	fn, ok := reg.GetFootnote("NOTE")
	if !ok {
		t.Fatal("footnote lookup failed")
	}
	if want := "First line.\nSecond line."; fn.Content != want {
		t.Errorf("footnote content = %q, want %q", fn.Content, want)
	}
	if got := len(nodesOfKind(root, syntax.NodeFootnoteDef)); got != 1 {
		t.Errorf("got %d footnote definition nodes, want 1", got)
	}
}

func TestInlineIntegration(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "Text with *em*, `code`, [a link](url), and @doe99.\n")
	wantOne := []syntax.Kind{
		syntax.NodeEmphasis,
		syntax.NodeCodeSpan,
		syntax.NodeLink,
		syntax.NodeCitation,
	}
	for _, kind := range wantOne {
		if got := len(nodesOfKind(root, kind)); got != 1 {
			t.Errorf("got %d %v nodes, want 1", got, kind)
		}
	}
}

func TestVerbatimBlocksKeepRawText(t *testing.T) {
	t.Parallel()

	docs := []string{
		"```\n*not emphasis*\n```\n",
		"    *indented, not emphasis*\n",
		"$$\na *b* c\n$$\n",
		"---\ntitle: *raw*\n---\n",
		"\\begin{x}\n*raw*\n\\end{x}\n",
		"[label]: /url \"has *stars*\"\n",
	}
	for _, doc := range docs {
		root := mustParse(t, doc)
		if got := len(nodesOfKind(root, syntax.NodeEmphasis)); got != 0 {
			t.Errorf("doc %q grew %d Emphasis nodes", doc, got)
		}
	}
}

func TestConfigGating(t *testing.T) {
	t.Parallel()

	doc := "{{< video url >}}\n"
	root := mustParse(t, doc)
	if got := len(nodesOfKind(root, syntax.NodeShortcode)); got != 1 {
		t.Errorf("default config: got %d shortcodes, want 1", got)
	}

	pandoc, _ := parser.Parse(doc, config.Pandoc())
	if err := syntax.Validate(pandoc, doc); err != nil {
		t.Fatalf("Validate under pandoc config: %v", err)
	}
	if got := len(nodesOfKind(pandoc, syntax.NodeShortcode)); got != 0 {
		t.Errorf("pandoc config: got %d shortcodes, want 0", got)
	}
}

func TestMetadataOnlyAtBlankBoundary(t *testing.T) {
	t.Parallel()

	// A --- line directly after a paragraph is a horizontal rule, not
	// a metadata delimiter.
	root := mustParse(t, "para\n---\nmore\n")
	if got := len(nodesOfKind(root, syntax.NodeYAMLMetadata)); got != 0 {
		t.Errorf("got %d metadata blocks, want 0", got)
	}

	root = mustParse(t, "---\nkey: value\n---\n")
	if got := len(nodesOfKind(root, syntax.NodeYAMLMetadata)); got != 1 {
		t.Errorf("got %d metadata blocks, want 1", got)
	}
}

const fullDocument = `---
title: Release notes
author: The Team
---

# Overview {#sec-overview}

This release adds *inline* parsing with **full** fidelity, plus
$O(n)$ scanning and a new ` + "`Parse`" + ` entry point.^[Measured on the usual corpus.]

> Upgrade notes are quoted here.
> They span two lines.

## Changes

1. Better tables, see @tbl-perf.
2. Fixed footnotes[^fix].
   - nested detail
   - another detail

| metric | before | after |
|-------:|--------|-------|
| parse  | 12ms   | 9ms   |

::: {.callout-tip}
Try the new [API docs][api].
:::

` + "```go" + `
root, reg := parser.Parse(src, nil)
` + "```" + `

$$\mathrm{speedup} = \frac{12}{9}$$ {#eq-speedup}

[api]: https://example.com/api "API reference"
[^fix]: The fix landed upstream.

---

That's all.
`

func TestFullDocument(t *testing.T) {
	t.Parallel()

	root, reg := parser.Parse(fullDocument, nil)
	if err := syntax.Validate(root, fullDocument); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	counts := map[syntax.Kind]int{
		syntax.NodeYAMLMetadata:   1,
		syntax.NodeHeading:        2,
		syntax.NodeBlockQuote:     1,
		syntax.NodeTable:          1,
		syntax.NodeFencedDiv:      1,
		syntax.NodeFencedCode:     1,
		syntax.NodeFootnoteDef:    1,
		syntax.NodeReferenceDef:   1,
		syntax.NodeHorizontalRule: 1,
		syntax.NodeInlineFootnote: 1,
	}
	for kind, want := range counts {
		if got := len(nodesOfKind(root, kind)); got != want {
			t.Errorf("got %d %v nodes, want %d", got, kind, want)
		}
	}

	if !reg.Contains("api") {
		t.Error("registry is missing the api definition")
	}
	if !reg.ContainsFootnote("fix") {
		t.Error("registry is missing the fix footnote")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	a, _ := parser.Parse(fullDocument, nil)
	b, _ := parser.Parse(fullDocument, nil)

	ta, tb := a.Tokens(), b.Tokens()
	if len(ta) != len(tb) {
		t.Fatalf("token counts differ: %d vs %d", len(ta), len(tb))
	}
	for i := range ta {
		if ta[i].Kind() != tb[i].Kind() || ta[i].Text() != tb[i].Text() {
			t.Fatalf("token %d differs: %v %q vs %v %q",
				i, ta[i].Kind(), ta[i].Text(), tb[i].Kind(), tb[i].Text())
		}
	}
}

// kinds is a debugging aid for failure messages.
func kinds(nodes []*syntax.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.Kind().String()
	}
	return strings.Join(parts, ", ")
}
