package force

import "math"

// Center translates all nodes each tick so the centroid moves toward
// (X,Y) by Strength.
type Center struct {
	X, Y float64
	Strength float64
}

// Apply implements Force.
func (c *Center) Apply(nodes []*Node, alpha float64) {
	if len(nodes) == 0 {
		return
	}
	strength := c.Strength
	if strength == 0 {
		strength = 1
	}
	var sx, sy float64
	for _, n := range nodes {
		sx += n.X
		sy += n.Y
	}
	cx, cy := sx/float64(len(nodes)), sy/float64(len(nodes))
	dx, dy := (c.X-cx)*strength, (c.Y-cy)*strength
	for _, n := range nodes {
		n.X += dx
		n.Y += dy
	}
}

// PositionAxis selects which coordinate Position pulls toward a
// target.
type PositionAxis int

const (
	AxisX PositionAxis = iota
	AxisY
)

// Position pulls every node's X or Y coordinate toward Target with
// Strength.
type Position struct {
	Axis PositionAxis
	Target float64
	Strength float64
}

// Apply implements Force.
func (p *Position) Apply(nodes []*Node, alpha float64) {
	strength := p.Strength
	if strength == 0 {
		strength = 0.1
	}
	for _, n := range nodes {
		if p.Axis == AxisX {
			n.VX += (p.Target - n.X) * strength * alpha
		} else {
			n.VY += (p.Target - n.Y) * strength * alpha
		}
	}
}

// Radial pulls each node toward a circle of Radius centered at
// (X,Y).
type Radial struct {
	Radius float64
	X, Y float64
	Strength float64
}

// Apply implements Force.
func (r *Radial) Apply(nodes []*Node, alpha float64) {
	strength := r.Strength
	if strength == 0 {
		strength = 0.1
	}
	for _, n := range nodes {
		dx, dy := n.X-r.X, n.Y-r.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			d = 1e-6
			dx = 1e-6
		}
		k := (d - r.Radius) / d * strength * alpha
		n.VX -= dx * k
		n.VY -= dy * k
	}
}
