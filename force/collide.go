package force

import (
	"math"

	"github.com/aclements/chartcore"
)

// Collide resolves overlaps between node disks so no two overlap,
// splitting the overlap symmetrically proportional to radii.
type Collide struct {
	Strength   float64 // [0,1]
	Iterations int
}

// Apply implements Force. Iterations defaults to 1 when unset.
func (c *Collide) Apply(nodes []*Node, alpha float64) {
	strength := c.Strength
	if strength == 0 {
		strength = 1
	}
	iterations := c.Iterations
	if iterations <= 0 {
		iterations = 1
	}
	for iter := 0; iter < iterations; iter++ {
		for i, a := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				b := nodes[j]
				dx, dy := b.X-a.X, b.Y-a.Y
				d := math.Hypot(dx, dy)
				minDist := a.Radius + b.Radius
				if d >= minDist || minDist == 0 {
					continue
				}
				if d == 0 {
					chartcore.Warn.Printf("collide force: nodes %d and %d are coincident, applying jitter", a.ID, b.ID)
					dx, dy = jitter(i, j)
					d = 1e-6
				}
				overlap := (minDist - d) / d * strength
				ratioA := b.Radius / minDist
				ratioB := a.Radius / minDist
				a.VX -= dx * overlap * ratioA
				a.VY -= dy * overlap * ratioA
				b.VX += dx * overlap * ratioB
				b.VY += dy * overlap * ratioB
			}
		}
	}
}
