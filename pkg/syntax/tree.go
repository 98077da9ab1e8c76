package syntax

// The positioned view wraps green elements with absolute byte
// offsets and parent back-references. It is computed on demand:
// wrappers are allocated as a traversal descends, never stored in
// the green tree.

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether pos falls inside the range.
func (r Range) Contains(pos int) bool { return pos >= r.Start && pos < r.End }

// ContainsRange reports whether other lies entirely inside r.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Element is a positioned node or token.
type Element interface {
	Kind() Kind
	Range() Range
	Parent() *Node
	Text() string
}

// Node is a positioned view over a GreenNode.
type Node struct {
	green  *GreenNode
	parent *Node
	offset int
}

// NewRoot wraps a green tree as a positioned root at offset 0.
func NewRoot(green *GreenNode) *Node {
	return &Node{green: green}
}

func (n *Node) Kind() Kind        { return n.green.kind }
func (n *Node) Green() *GreenNode { return n.green }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Text() string      { return n.green.Text() }

func (n *Node) Range() Range {
	return Range{Start: n.offset, End: n.offset + n.green.textLen}
}

// ChildrenWithTokens returns all direct children, nodes and tokens,
// in source order.
func (n *Node) ChildrenWithTokens() []Element {
	out := make([]Element, 0, len(n.green.children))
	off := n.offset
	for _, c := range n.green.children {
		switch c := c.(type) {
		case *GreenNode:
			out = append(out, &Node{green: c, parent: n, offset: off})
		case *GreenToken:
			out = append(out, &Token{green: c, parent: n, offset: off})
		}
		off += c.TextLen()
	}
	return out
}

// Children returns the direct child nodes, skipping tokens.
func (n *Node) Children() []*Node {
	var out []*Node
	off := n.offset
	for _, c := range n.green.children {
		if gn, ok := c.(*GreenNode); ok {
			out = append(out, &Node{green: gn, parent: n, offset: off})
		}
		off += c.TextLen()
	}
	return out
}

// FirstChildOfKind returns the first direct child node of the given
// kind, or nil.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// Descendants returns every node of the subtree in pre-order, the
// receiver included.
func (n *Node) Descendants() []*Node {
	out := []*Node{n}
	for _, c := range n.Children() {
		out = append(out, c.Descendants()...)
	}
	return out
}

// Tokens returns every token of the subtree in pre-order.
func (n *Node) Tokens() []*Token {
	var out []*Token
	for _, el := range n.ChildrenWithTokens() {
		switch el := el.(type) {
		case *Token:
			out = append(out, el)
		case *Node:
			out = append(out, el.Tokens()...)
		}
	}
	return out
}

// TokenAtOffset returns the token whose range contains pos (start
// inclusive, end exclusive), or nil when pos is outside the subtree.
func (n *Node) TokenAtOffset(pos int) *Token {
	if !n.Range().Contains(pos) {
		return nil
	}
	for _, el := range n.ChildrenWithTokens() {
		if !el.Range().Contains(pos) {
			continue
		}
		switch el := el.(type) {
		case *Token:
			return el
		case *Node:
			return el.TokenAtOffset(pos)
		}
	}
	return nil
}

// CoveringElement returns the smallest element whose range fully
// contains r, or nil when r is outside the subtree. A zero-length r
// behaves like a point query at r.Start.
func (n *Node) CoveringElement(r Range) Element {
	if r.Len() == 0 {
		r.End = r.Start + 1
	}
	if !n.Range().ContainsRange(r) {
		return nil
	}
	var current Element = n
	for {
		node, ok := current.(*Node)
		if !ok {
			return current
		}
		var next Element
		for _, el := range node.ChildrenWithTokens() {
			if el.Range().ContainsRange(r) {
				next = el
				break
			}
		}
		if next == nil {
			return current
		}
		current = next
	}
}

// Token is a positioned view over a GreenToken.
type Token struct {
	green  *GreenToken
	parent *Node
	offset int
}

func (t *Token) Kind() Kind    { return t.green.kind }
func (t *Token) Parent() *Node { return t.parent }
func (t *Token) Text() string  { return t.green.text }

func (t *Token) Range() Range {
	return Range{Start: t.offset, End: t.offset + len(t.green.text)}
}
