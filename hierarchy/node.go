// Package hierarchy implements the tree/treemap/pack layouts of
// over a recursive node structure.
package hierarchy

// Node is HierarchyNode: a recursive tree with layout
// fields filled in by whichever layout last visited it.
type Node struct {
	Value float64
	Children []*Node

	// Computed by layouts.
	Depth int
	Sum float64
	X0, Y0, X1, Y1 float64

	// Computed by TreeLayout (tidy tree coordinates before mapping
	// into an extent).
	X, Y float64

	// Parent is set by Prepare for callers that walk upward; the
	// layouts in this package do not read it.
	Parent *Node
}

// Prepare walks the tree in pre-order, setting Depth, Parent, and Sum
// (the cumulative value of the node plus all descendants). Call this
// before any layout that depends on Sum or Depth.
func Prepare(root *Node) {
	prepare(root, nil, 0)
}

func prepare(n *Node, parent *Node, depth int) float64 {
	n.Parent = parent
	n.Depth = depth
	sum := n.Value
	for _, c := range n.Children {
		sum += prepare(c, n, depth+1)
	}
	n.Sum = sum
	return sum
}

// Leaves returns every childless node under root, in pre-order.
func Leaves(root *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if len(n.Children) == 0 {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}
