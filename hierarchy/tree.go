package hierarchy

// TreeConfig parameterizes TreeLayout.
type TreeConfig struct {
	Width, Height float64
	// NodeSize, when non-zero, fixes the spacing between siblings and
	// between depths instead of stretching to fill Width/Height.
	NodeSizeX, NodeSizeY float64
}

type treeAux struct {
	node *Node
	children []*treeAux
	parent *treeAux
	ancestor *treeAux
	thread *treeAux
	prelim, mod float64
	shift, change float64
	number int // index among siblings
}

// TreeLayout assigns each node a depth-based coordinate on one axis
// and a sibling-contour-based coordinate on the other, implementing
// the Buchheim/Junger/Leipert linear-time variant of Reingold-Tilford
// and Walker's tree layout. Contour arithmetic guarantees no two
// same-depth nodes overlap and parents center above their children.
func TreeLayout(root *Node, cfg TreeConfig) {
	Prepare(root)
	aux := buildAux(root, nil)
	firstWalk(aux)
	secondWalk(aux, -aux.prelim, 0)
	normalizeAndScale(root, cfg)
}

func buildAux(n *Node, parent *treeAux) *treeAux {
	a := &treeAux{node: n, parent: parent}
	for i, c := range n.Children {
		ca := buildAux(c, a)
		ca.number = i
		a.children = append(a.children, ca)
	}
	return a
}

func firstWalk(v *treeAux) {
	if len(v.children) == 0 {
		if prev := leftSibling(v); prev != nil {
			v.prelim = prev.prelim + distance(v, prev)
		}
		return
	}
	defaultAncestor := v.children[0]
	for _, w := range v.children {
		firstWalk(w)
		defaultAncestor = apportion(w, defaultAncestor)
	}
	executeShifts(v)
	midpoint := (v.children[0].prelim + v.children[len(v.children)-1].prelim) / 2
	if prev := leftSibling(v); prev != nil {
		v.prelim = prev.prelim + distance(v, prev)
		v.mod = v.prelim - midpoint
	} else {
		v.prelim = midpoint
	}
}

func distance(v, w *treeAux) float64 { return 1 }

func leftSibling(v *treeAux) *treeAux {
	if v.parent == nil || v.number == 0 {
		return nil
	}
	return v.parent.children[v.number-1]
}

func leftmostSibling(v *treeAux) *treeAux {
	if v.parent == nil {
		return nil
	}
	return v.parent.children[0]
}

func apportion(v, defaultAncestor *treeAux) *treeAux {
	w := leftSibling(v)
	if w == nil {
		return defaultAncestor
	}
	vip, vop := v, v
	vim, vom := w, leftmostSibling(v)
	sip, sop := v.mod, v.mod
	sim, som := vim.mod, vom.mod

	for nextRight(vim) != nil && nextLeft(vip) != nil {
		vim = nextRight(vim)
		vip = nextLeft(vip)
		vom = nextLeft(vom)
		vop = nextRight(vop)
		vop.ancestor = v
		shift := (vim.prelim + sim) - (vip.prelim + sip) + distance(vip, vim)
		if shift > 0 {
			moveSubtree(ancestorOf(vim, v, defaultAncestor), v, shift)
			sip += shift
			sop += shift
		}
		sim += vim.mod
		sip += vip.mod
		som += vom.mod
		sop += vop.mod
	}
	if nextRight(vim) != nil && nextRight(vop) == nil {
		vop.thread = nextRight(vim)
		vop.mod += sim - sop
	}
	if nextLeft(vip) != nil && nextLeft(vom) == nil {
		vom.thread = nextLeft(vip)
		vom.mod += sip - som
		defaultAncestor = v
	}
	return defaultAncestor
}

func nextLeft(v *treeAux) *treeAux {
	if len(v.children) > 0 {
		return v.children[0]
	}
	return v.thread
}

func nextRight(v *treeAux) *treeAux {
	if len(v.children) > 0 {
		return v.children[len(v.children)-1]
	}
	return v.thread
}

func ancestorOf(vim, v, defaultAncestor *treeAux) *treeAux {
	if vim.ancestor != nil && vim.ancestor.parent == v.parent {
		return vim.ancestor
	}
	return defaultAncestor
}

func moveSubtree(wm, wp *treeAux, shift float64) {
	subtrees := float64(wp.number - wm.number)
	if subtrees == 0 {
		subtrees = 1
	}
	wp.change -= shift / subtrees
	wp.shift += shift
	wm.change += shift / subtrees
	wp.prelim += shift
	wp.mod += shift
}

func executeShifts(v *treeAux) {
	var shift, change float64
	for i := len(v.children) - 1; i >= 0; i-- {
		w := v.children[i]
		w.prelim += shift
		w.mod += shift
		change += w.change
		shift += w.shift + change
	}
}

func secondWalk(v *treeAux, m float64, depth int) {
	v.node.X = v.prelim + m
	v.node.Y = float64(depth)
	for _, c := range v.children {
		secondWalk(c, m+v.mod, depth+1)
	}
}

// normalizeAndScale shifts the tree so its minimum X is 0, then scales
// into [0,Width]x[0,Height] (or by fixed NodeSize spacing).
func normalizeAndScale(root *Node, cfg TreeConfig) {
	minX, maxX, maxDepth := rangeX(root, root.X, root.X, 0)
	span := maxX - minX
	if span == 0 {
		span = 1
	}
	width, height := cfg.Width, cfg.Height
	if cfg.NodeSizeX > 0 {
		width = span * cfg.NodeSizeX
	}
	if cfg.NodeSizeY > 0 {
		height = float64(maxDepth) * cfg.NodeSizeY
	}
	var apply func(*Node)
	apply = func(n *Node) {
		n.X0 = (n.X - minX) / span * width
		if maxDepth > 0 {
			n.Y0 = float64(n.Depth) / float64(maxDepth) * height
		}
		n.X1, n.Y1 = n.X0, n.Y0
		for _, c := range n.Children {
			apply(c)
		}
	}
	apply(root)
}

func rangeX(n *Node, minX, maxX float64, maxDepth int) (float64, float64, int) {
	if n.X < minX {
		minX = n.X
	}
	if n.X > maxX {
		maxX = n.X
	}
	if n.Depth > maxDepth {
		maxDepth = n.Depth
	}
	for _, c := range n.Children {
		minX, maxX, maxDepth = rangeX(c, minX, maxX, maxDepth)
	}
	return minX, maxX, maxDepth
}
