package syntax

// WalkStatus controls traversal from a WalkFunc.
type WalkStatus int

const (
	// WalkContinue descends into the element's children.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren continues with the next sibling.
	WalkSkipChildren
	// WalkStop aborts the traversal.
	WalkStop
)

// WalkFunc is called for every element in pre-order.
type WalkFunc func(el Element) WalkStatus

// Walk traverses the subtree rooted at n in pre-order, tokens
// included, calling fn for each element.
func Walk(n *Node, fn WalkFunc) {
	walk(n, fn)
}

func walk(n *Node, fn WalkFunc) WalkStatus {
	switch fn(n) {
	case WalkStop:
		return WalkStop
	case WalkSkipChildren:
		return WalkContinue
	}
	for _, el := range n.ChildrenWithTokens() {
		switch el := el.(type) {
		case *Token:
			if fn(el) == WalkStop {
				return WalkStop
			}
		case *Node:
			if walk(el, fn) == WalkStop {
				return WalkStop
			}
		}
	}
	return WalkContinue
}
