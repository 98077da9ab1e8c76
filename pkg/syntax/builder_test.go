package syntax_test

import (
	"testing"

	"github.com/yaklabco/gomdtree/pkg/syntax"
)

func TestBuilderBalancedTree(t *testing.T) {
	t.Parallel()

	b := syntax.NewBuilder(syntax.NodeDocument)
	b.StartNode(syntax.NodeParagraph)
	b.Token(syntax.TokenText, "hello")
	b.Token(syntax.TokenNewline, "\n")
	b.FinishNode()
	root := b.Finish()

	if root.Kind() != syntax.NodeDocument {
		t.Fatalf("root kind = %v, want Document", root.Kind())
	}
	if got := root.Text(); got != "hello\n" {
		t.Errorf("root text = %q, want %q", got, "hello\n")
	}
	if len(root.Children()) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children()))
	}
	para, ok := root.Children()[0].(*syntax.GreenNode)
	if !ok || para.Kind() != syntax.NodeParagraph {
		t.Fatalf("child = %v, want Paragraph node", root.Children()[0].Kind())
	}
	if para.TextLen() != 6 {
		t.Errorf("paragraph text length = %d, want 6", para.TextLen())
	}
}

func TestBuilderDropsEmptyTokens(t *testing.T) {
	t.Parallel()

	b := syntax.NewBuilder(syntax.NodeDocument)
	b.Token(syntax.TokenText, "")
	b.Token(syntax.TokenText, "x")
	root := b.Finish()

	if len(root.Children()) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children()))
	}
}

func TestBuilderNested(t *testing.T) {
	t.Parallel()

	b := syntax.NewBuilder(syntax.NodeDocument)
	b.StartNode(syntax.NodeStrong)
	b.Token(syntax.TokenEmphasisMarker, "**")
	b.StartNode(syntax.NodeEmphasis)
	b.Token(syntax.TokenEmphasisMarker, "*")
	b.Token(syntax.TokenText, "x")
	b.Token(syntax.TokenEmphasisMarker, "*")
	b.FinishNode()
	b.Token(syntax.TokenEmphasisMarker, "**")
	b.FinishNode()
	root := b.Finish()

	if got := root.Text(); got != "***x***" {
		t.Errorf("text = %q, want %q", got, "***x***")
	}
}

func TestBuilderElementSplicesSubtree(t *testing.T) {
	t.Parallel()

	inner := syntax.NewGreenNode(syntax.NodeParagraph, []syntax.GreenElement{
		syntax.NewGreenToken(syntax.TokenText, "spliced"),
	})

	b := syntax.NewBuilder(syntax.NodeBlockQuote)
	b.Token(syntax.TokenBlockquoteMarker, "> ")
	b.Element(inner)
	root := b.Finish()

	if got := root.Text(); got != "> spliced" {
		t.Errorf("text = %q, want %q", got, "> spliced")
	}
}

func TestBuilderUnbalancedPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Finish with an open node did not panic")
		}
	}()
	b := syntax.NewBuilder(syntax.NodeDocument)
	b.StartNode(syntax.NodeParagraph)
	b.Finish()
}
