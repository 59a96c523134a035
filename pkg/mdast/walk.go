package mdast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback walkFunc is called for each node. If walkFunc returns a non-nil
// error, the walk stops immediately and returns that error.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// SkipChildren is returned by a WalkStatusFunc to skip a node's subtree.
type WalkStatus int

const (
	// WalkContinue continues the traversal into the node's children.
	WalkContinue WalkStatus = iota

	// WalkSkipChildren continues the traversal without visiting children.
	WalkSkipChildren

	// WalkStop aborts the traversal.
	WalkStop
)

// WalkStatusFunc is a Walk callback that can prune subtrees.
type WalkStatusFunc func(n *Node) WalkStatus

// WalkSkippable performs a pre-order traversal where the callback controls
// descent: WalkSkipChildren prunes the current subtree, WalkStop aborts.
func WalkSkippable(root *Node, fn WalkStatusFunc) WalkStatus {
	if root == nil {
		return WalkContinue
	}

	switch fn(root) {
	case WalkStop:
		return WalkStop
	case WalkSkipChildren:
		return WalkContinue
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if WalkSkippable(child, fn) == WalkStop {
			return WalkStop
		}
	}

	return WalkContinue
}

// HasAncestor reports whether any ancestor of n (or n itself) has the given kind.
func HasAncestor(n *Node, kind NodeKind) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == kind {
			return true
		}
	}
	return false
}

// FindAll returns all nodes matching the predicate.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}

// PlainText returns the concatenated literal text of a subtree: Text, CodeSpan,
// and MathInline content in document order. Raw HTML contributes nothing.
func PlainText(root *Node) []byte {
	var out []byte

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(n *Node) error {
		switch n.Kind {
		case NodeText, NodeCodeSpan, NodeMathInline:
			out = append(out, n.Text()...)
		}
		return nil
	})

	return out
}
