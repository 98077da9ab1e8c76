package syntax_test

import (
	"testing"

	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// buildSample constructs a small document:
//
//	Document
//	  Paragraph["abc", "\n"]
//	  Paragraph[Emphasis["*", "de", "*"], "\n"]
func buildSample() *syntax.Node {
	b := syntax.NewBuilder(syntax.NodeDocument)
	b.StartNode(syntax.NodeParagraph)
	b.Token(syntax.TokenText, "abc")
	b.Token(syntax.TokenNewline, "\n")
	b.FinishNode()
	b.StartNode(syntax.NodeParagraph)
	b.StartNode(syntax.NodeEmphasis)
	b.Token(syntax.TokenEmphasisMarker, "*")
	b.Token(syntax.TokenText, "de")
	b.Token(syntax.TokenEmphasisMarker, "*")
	b.FinishNode()
	b.Token(syntax.TokenNewline, "\n")
	b.FinishNode()
	return syntax.NewRoot(b.Finish())
}

func TestRangesAreContiguous(t *testing.T) {
	t.Parallel()

	root := buildSample()
	if err := syntax.Validate(root, "abc\n*de*\n"); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	paras := root.Children()
	if len(paras) != 2 {
		t.Fatalf("document has %d children, want 2", len(paras))
	}
	if r := paras[0].Range(); r != (syntax.Range{Start: 0, End: 4}) {
		t.Errorf("first paragraph range = %+v", r)
	}
	if r := paras[1].Range(); r != (syntax.Range{Start: 4, End: 9}) {
		t.Errorf("second paragraph range = %+v", r)
	}
}

func TestParentLinks(t *testing.T) {
	t.Parallel()

	root := buildSample()
	em := root.Children()[1].FirstChildOfKind(syntax.NodeEmphasis)
	if em == nil {
		t.Fatal("no Emphasis node found")
	}
	if em.Parent().Kind() != syntax.NodeParagraph {
		t.Errorf("emphasis parent = %v, want Paragraph", em.Parent().Kind())
	}
	if em.Parent().Parent().Kind() != syntax.NodeDocument {
		t.Errorf("grandparent = %v, want Document", em.Parent().Parent().Kind())
	}
}

func TestTokenAtOffset(t *testing.T) {
	t.Parallel()

	root := buildSample()

	tok := root.TokenAtOffset(0)
	if tok == nil || tok.Text() != "abc" {
		t.Fatalf("token at 0 = %v", tok)
	}
	tok = root.TokenAtOffset(5)
	if tok == nil || tok.Text() != "de" || tok.Kind() != syntax.TokenText {
		t.Fatalf("token at 5 = %v", tok)
	}
	if tok.Parent().Kind() != syntax.NodeEmphasis {
		t.Errorf("token parent = %v, want Emphasis", tok.Parent().Kind())
	}
	if root.TokenAtOffset(100) != nil {
		t.Error("token at 100 should be nil")
	}
}

func TestCoveringElement(t *testing.T) {
	t.Parallel()

	root := buildSample()

	// "de" spans bytes 5..7; the smallest covering element is its token.
	el := root.CoveringElement(syntax.Range{Start: 5, End: 7})
	if tok, ok := el.(*syntax.Token); !ok || tok.Text() != "de" {
		t.Fatalf("covering element for 5..7 = %#v", el)
	}

	// 4..8 spans the whole emphasis including markers.
	el = root.CoveringElement(syntax.Range{Start: 4, End: 8})
	if node, ok := el.(*syntax.Node); !ok || node.Kind() != syntax.NodeEmphasis {
		t.Fatalf("covering element for 4..8 = %#v", el)
	}

	// 2..6 crosses the paragraph boundary; only the document covers it.
	el = root.CoveringElement(syntax.Range{Start: 2, End: 6})
	if node, ok := el.(*syntax.Node); !ok || node.Kind() != syntax.NodeDocument {
		t.Fatalf("covering element for 2..6 = %#v", el)
	}
}

func TestDescendantsPreOrder(t *testing.T) {
	t.Parallel()

	root := buildSample()
	var kinds []syntax.Kind
	for _, n := range root.Descendants() {
		kinds = append(kinds, n.Kind())
	}
	want := []syntax.Kind{
		syntax.NodeDocument,
		syntax.NodeParagraph,
		syntax.NodeParagraph,
		syntax.NodeEmphasis,
	}
	if len(kinds) != len(want) {
		t.Fatalf("descendants = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("descendants = %v, want %v", kinds, want)
		}
	}
}

func TestWalkStopAndSkip(t *testing.T) {
	t.Parallel()

	root := buildSample()

	var visited int
	syntax.Walk(root, func(el syntax.Element) syntax.WalkStatus {
		visited++
		if n, ok := el.(*syntax.Node); ok && n.Kind() == syntax.NodeParagraph {
			return syntax.WalkSkipChildren
		}
		return syntax.WalkContinue
	})
	// Document + two paragraphs, children skipped.
	if visited != 3 {
		t.Errorf("visited %d elements with SkipChildren, want 3", visited)
	}

	visited = 0
	syntax.Walk(root, func(el syntax.Element) syntax.WalkStatus {
		visited++
		return syntax.WalkStop
	})
	if visited != 1 {
		t.Errorf("visited %d elements with Stop, want 1", visited)
	}
}
