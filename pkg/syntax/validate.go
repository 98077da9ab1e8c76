package syntax

import "fmt"

// Validate checks the structural invariants of a positioned tree
// against the source it was parsed from: the pre-order token text
// must reproduce source byte-for-byte, and sibling ranges must be
// contiguous and non-overlapping.
func Validate(root *Node, source string) error {
	if got := root.Text(); got != source {
		return fmt.Errorf("syntax: reconstructed text differs from source (got %d bytes, want %d)", len(got), len(source))
	}
	return validateRanges(root)
}

func validateRanges(n *Node) error {
	pos := n.Range().Start
	for _, el := range n.ChildrenWithTokens() {
		r := el.Range()
		if r.Start != pos {
			return fmt.Errorf("syntax: %s child of %s starts at %d, want %d", el.Kind(), n.Kind(), r.Start, pos)
		}
		if r.End < r.Start {
			return fmt.Errorf("syntax: %s has negative-length range %d..%d", el.Kind(), r.Start, r.End)
		}
		pos = r.End
		if child, ok := el.(*Node); ok {
			if err := validateRanges(child); err != nil {
				return err
			}
		}
	}
	if pos != n.Range().End {
		return fmt.Errorf("syntax: %s children end at %d, want %d", n.Kind(), pos, n.Range().End)
	}
	return nil
}
