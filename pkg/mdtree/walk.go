package mdtree

// WalkFunc is the callback signature for Walk.
// Returning a non-nil error stops the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal starting at root.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := fn(root); err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all nodes matching the predicate, in traversal order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck // the callback never returns an error
	Walk(root, func(n *Node) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the given kind.
func FindByKind(root *Node, kind Kind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
