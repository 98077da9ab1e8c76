package syntax

import "fmt"

// Builder assembles a green tree under a strict stack discipline:
// every StartNode has a matching FinishNode, and children accumulate
// before their parent closes.
type Builder struct {
	stack []builderFrame
}

type builderFrame struct {
	kind     Kind
	children []GreenElement
}

// NewBuilder returns a builder with an open root frame for the given
// root kind.
func NewBuilder(root Kind) *Builder {
	b := &Builder{}
	b.stack = append(b.stack, builderFrame{kind: root})
	return b
}

// StartNode opens a child node of the given kind.
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, builderFrame{kind: kind})
}

// Token appends a token to the currently open node. Empty text is
// dropped so zero-length tokens never appear in the tree.
func (b *Builder) Token(kind Kind, text string) {
	if text == "" {
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, NewGreenToken(kind, text))
}

// Element appends an already-built green element (node or token) to
// the currently open node. Used when splicing reparsed subtrees.
func (b *Builder) Element(el GreenElement) {
	if el == nil {
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, el)
}

// FinishNode closes the most recently started node.
func (b *Builder) FinishNode() {
	if len(b.stack) < 2 {
		panic("syntax: FinishNode without matching StartNode")
	}
	frame := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := NewGreenNode(frame.kind, frame.children)
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, node)
}

// Finish closes the root frame and returns the completed tree.
func (b *Builder) Finish() *GreenNode {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("syntax: Finish with %d unclosed nodes", len(b.stack)-1))
	}
	frame := b.stack[0]
	b.stack = nil
	return NewGreenNode(frame.kind, frame.children)
}

// Depth returns the number of currently open nodes, the root frame
// included.
func (b *Builder) Depth() int { return len(b.stack) }
