package force

import "math"

// LinkSpec is one edge the Link force pulls toward a target distance.
type LinkSpec struct {
	Source, Target *Node
	Distance float64
	Strength float64
}

// Link moves each edge's endpoints toward |target-source|=Distance.
// Per-tick displacement is split between endpoints in proportion to
// the other endpoint's degree, so a hub node (high degree) moves less
// than its leaves.
type Link struct {
	Links []LinkSpec

	degree map[*Node]int
}

// computeDegrees recomputes each node's degree; called lazily so
// Links can be mutated between ticks without a separate rebuild step.
func (l *Link) computeDegrees() {
	l.degree = make(map[*Node]int)
	for _, spec := range l.Links {
		l.degree[spec.Source]++
		l.degree[spec.Target]++
	}
}

// Apply implements Force.
func (l *Link) Apply(nodes []*Node, alpha float64) {
	l.computeDegrees()
	for _, spec := range l.Links {
		s, t := spec.Source, spec.Target
		dx, dy := t.X-s.X, t.Y-s.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			d = 1e-6
			dx = 1e-6
		}
		strength := spec.Strength
		if strength == 0 {
			strength = 1
		}
		bias := float64(l.degree[s]) / float64(l.degree[s]+l.degree[t])
		delta := (d - spec.Distance) / d * alpha * strength
		t.VX -= dx * delta * bias
		t.VY -= dy * delta * bias
		s.VX += dx * delta * (1 - bias)
		s.VY += dy * delta * (1 - bias)
	}
}
