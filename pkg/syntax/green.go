package syntax

import "strings"

// The content layer stores kind plus raw text (tokens) or children
// (nodes) with no absolute offsets. Trees on this layer are immutable
// after construction, so structurally identical subtrees can be
// shared between trees.

// GreenElement is either a *GreenNode or a *GreenToken.
type GreenElement interface {
	Kind() Kind
	// TextLen is the total byte length of the element's text.
	TextLen() int

	greenElement()
}

// GreenToken is a leaf carrying an exact slice of source text.
// The text is never normalized; concatenating every token of a tree
// in pre-order reproduces the input.
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken returns a token of the given kind and exact text.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind    { return t.kind }
func (t *GreenToken) Text() string  { return t.text }
func (t *GreenToken) TextLen() int  { return len(t.text) }
func (t *GreenToken) greenElement() {}

// GreenNode is an interior node: a kind plus ordered children.
type GreenNode struct {
	kind     Kind
	children []GreenElement
	textLen  int
}

// NewGreenNode returns a node over the given children. The children
// slice is owned by the node afterwards.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.textLen += c.TextLen()
	}
	return n
}

func (n *GreenNode) Kind() Kind               { return n.kind }
func (n *GreenNode) Children() []GreenElement { return n.children }
func (n *GreenNode) TextLen() int             { return n.textLen }
func (n *GreenNode) greenElement()            {}

// Text reconstructs the full subtree text.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		switch c := c.(type) {
		case *GreenToken:
			sb.WriteString(c.text)
		case *GreenNode:
			c.writeText(sb)
		}
	}
}
