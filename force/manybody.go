package force

import (
	"math"

	"github.com/aclements/chartcore"
)

// ManyBody applies a pairwise force F = Strength * (delta/|delta|^2) *
// alpha between every pair of nodes. Negative Strength
// repels, positive attracts. DistanceMin/DistanceMax clamp the
// effective distance to avoid singularities and to cap range.
type ManyBody struct {
	Strength    float64
	DistanceMin float64
	DistanceMax float64
	// Theta enables a Barnes-Hut approximation when > 0; 0 means
	// exact O(N^2) pairwise evaluation.
	Theta float64
}

// Apply computes the many-body force. When Theta>0 and the node count
// makes the quadtree worthwhile, it builds one and approximates
// distant clusters as a single mass; otherwise it runs the exact
// O(N^2) sum, which is also what the quadtree degenerates to for
// small N.
func (m *ManyBody) Apply(nodes []*Node, alpha float64) {
	if m.Theta > 0 && len(nodes) > 64 {
		m.applyBarnesHut(nodes, alpha)
		return
	}
	m.applyExact(nodes, alpha)
}

func (m *ManyBody) applyExact(nodes []*Node, alpha float64) {
	dmin2 := m.distanceMin2()
	dmax2 := m.distanceMax2()
	for i, a := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			b := nodes[j]
			dx, dy := b.X-a.X, b.Y-a.Y
			d2 := dx*dx + dy*dy
			if d2 == 0 {
				chartcore.Warn.Printf("many-body force: nodes %d and %d are coincident, applying jitter", a.ID, b.ID)
				dx, dy = jitter(i, j)
				d2 = dx*dx + dy*dy
			}
			if d2 < dmin2 {
				d2 = dmin2
			}
			if d2 > dmax2 {
				continue
			}
			fac := m.Strength * alpha / d2
			a.VX += dx * fac
			a.VY += dy * fac
			b.VX -= dx * fac
			b.VY -= dy * fac
		}
	}
}

func (m *ManyBody) distanceMin2() float64 {
	if m.DistanceMin > 0 {
		return m.DistanceMin * m.DistanceMin
	}
	return 1
}

func (m *ManyBody) distanceMax2() float64 {
	if m.DistanceMax > 0 {
		return m.DistanceMax * m.DistanceMax
	}
	return math.Inf(1)
}

// jitter produces a small deterministic offset for coincident nodes,
// derived from their indices rather than a random source so
// simulation ticks stay deterministic given the same inputs.
func jitter(i, j int) (float64, float64) {
	a := float64((i*2654435761+j)%2000-1000) / 1e6
	b := float64((j*2654435761+i)%2000-1000) / 1e6
	return a, b
}

// quadNode is one node of the Barnes-Hut quadtree used by
// applyBarnesHut.
type quadNode struct {
	x0, y0, x1, y1 float64
	mass float64
	cx, cy float64 // center of mass
	children [4]*quadNode
	leaf *Node
}

func (m *ManyBody) applyBarnesHut(nodes []*Node, alpha float64) {
	x0, y0, x1, y1 := bounds(nodes)
	root := &quadNode{x0: x0, y0: y0, x1: x1, y1: y1}
	for _, n := range nodes {
		insert(root, n)
	}
	computeMass(root)
	dmin2 := m.distanceMin2()
	dmax2 := m.distanceMax2()
	for _, n := range nodes {
		applyFromQuad(root, n, m.Strength, alpha, m.Theta, dmin2, dmax2)
	}
}

func bounds(nodes []*Node) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		if n.X < x0 {
			x0 = n.X
		}
		if n.X > x1 {
			x1 = n.X
		}
		if n.Y < y0 {
			y0 = n.Y
		}
		if n.Y > y1 {
			y1 = n.Y
		}
	}
	if x0 == x1 {
		x0, x1 = x0-1, x1+1
	}
	if y0 == y1 {
		y0, y1 = y0-1, y1+1
	}
	return
}

func insert(q *quadNode, n *Node) {
	if q.leaf == nil && q.children[0] == nil {
		q.leaf = n
		return
	}
	if q.children[0] == nil {
		// Split and reinsert the existing leaf alongside n.
		old := q.leaf
		q.leaf = nil
		split(q)
		insert(q, old)
		insert(q, n)
		return
	}
	mx, my := (q.x0+q.x1)/2, (q.y0+q.y1)/2
	idx := quadrant(n, mx, my)
	insert(q.children[idx], n)
}

func split(q *quadNode) {
	mx, my := (q.x0+q.x1)/2, (q.y0+q.y1)/2
	q.children[0] = &quadNode{x0: q.x0, y0: q.y0, x1: mx, y1: my}
	q.children[1] = &quadNode{x0: mx, y0: q.y0, x1: q.x1, y1: my}
	q.children[2] = &quadNode{x0: q.x0, y0: my, x1: mx, y1: q.y1}
	q.children[3] = &quadNode{x0: mx, y0: my, x1: q.x1, y1: q.y1}
}

func quadrant(n *Node, mx, my float64) int {
	switch {
	case n.X < mx && n.Y < my:
		return 0
	case n.X >= mx && n.Y < my:
		return 1
	case n.X < mx && n.Y >= my:
		return 2
	default:
		return 3
	}
}

func computeMass(q *quadNode) (mass, cx, cy float64) {
	if q == nil {
		return 0, 0, 0
	}
	if q.leaf != nil {
		q.mass, q.cx, q.cy = 1, q.leaf.X, q.leaf.Y
		return q.mass, q.cx, q.cy
	}
	var totalMass, sx, sy float64
	for _, c := range q.children {
		if c == nil {
			continue
		}
		m, x, y := computeMass(c)
		totalMass += m
		sx += x * m
		sy += y * m
	}
	if totalMass > 0 {
		q.mass, q.cx, q.cy = totalMass, sx/totalMass, sy/totalMass
	}
	return q.mass, q.cx, q.cy
}

func applyFromQuad(q *quadNode, n *Node, strength, alpha, theta, dmin2, dmax2 float64) {
	if q == nil || q.mass == 0 {
		return
	}
	dx, dy := q.cx-n.X, q.cy-n.Y
	d2 := dx*dx + dy*dy
	size := q.x1 - q.x0
	if q.leaf == n {
		return
	}
	if q.leaf != nil || (size*size/d2 < theta*theta) {
		if d2 == 0 {
			return
		}
		if d2 < dmin2 {
			d2 = dmin2
		}
		if d2 > dmax2 {
			return
		}
		fac := strength * alpha * q.mass / d2
		n.VX += dx * fac
		n.VY += dy * fac
		return
	}
	for _, c := range q.children {
		applyFromQuad(c, n, strength, alpha, theta, dmin2, dmax2)
	}
}
