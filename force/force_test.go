package force

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func chainNodes(n int) []*Node {
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = &Node{ID: i, X: float64(i) * 10, Y: 0}
	}
	return nodes
}

func TestSimulationChainEquilibrium(t *testing.T) {
	n := 10
	nodes := chainNodes(n)
	sim := NewSimulation(nodes)
	sim.SetForce("charge", &ManyBody{Strength: -30})
	links := make([]LinkSpec, 0, n-1)
	for i := 0; i < n-1; i++ {
		links = append(links, LinkSpec{Source: nodes[i], Target: nodes[i+1], Distance: 50, Strength: 1})
	}
	sim.SetForce("link", &Link{Links: links})

	sim.Run(300)

	for _, l := range links {
		d := math.Hypot(l.Target.X-l.Source.X, l.Target.Y-l.Source.Y)
		assert.InDelta(t, 50, d, 5)
	}
	assert.Less(t, sim.TotalVelocity(), 1.0)
	assert.True(t, sim.Done())
}

func TestManyBodyRepels(t *testing.T) {
	nodes := []*Node{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 1, Y: 0}}
	m := &ManyBody{Strength: -10}
	m.Apply(nodes, 1)
	assert.Less(t, nodes[0].VX, 0.0)
	assert.Greater(t, nodes[1].VX, 0.0)
}

func TestManyBodyBarnesHutApproximatesExact(t *testing.T) {
	nodes := make([]*Node, 100)
	for i := range nodes {
		nodes[i] = &Node{ID: i, X: float64(i % 10), Y: float64(i / 10)}
	}
	exact := make([]*Node, len(nodes))
	approx := make([]*Node, len(nodes))
	for i, n := range nodes {
		a, b := *n, *n
		exact[i], approx[i] = &a, &b
	}
	(&ManyBody{Strength: -5}).Apply(exact, 1)
	(&ManyBody{Strength: -5, Theta: 0.5}).Apply(approx, 1)
	for i := range exact {
		assert.InDelta(t, exact[i].VX, approx[i].VX, 1.0)
	}
}

func TestCollideSeparatesOverlappingNodes(t *testing.T) {
	nodes := []*Node{{ID: 0, X: 0, Y: 0, Radius: 10}, {ID: 1, X: 5, Y: 0, Radius: 10}}
	c := &Collide{Iterations: 2}
	for i := 0; i < 5; i++ {
		c.Apply(nodes, 1)
		for _, n := range nodes {
			n.X += n.VX
			n.VX = 0
		}
	}
	d := math.Abs(nodes[1].X - nodes[0].X)
	assert.GreaterOrEqual(t, d, 19.0)
}

func TestCenterPullsCentroid(t *testing.T) {
	nodes := []*Node{{ID: 0, X: 10, Y: 10}, {ID: 1, X: 20, Y: 20}}
	(&Center{X: 0, Y: 0, Strength: 1}).Apply(nodes, 1)
	cx := (nodes[0].X + nodes[1].X) / 2
	cy := (nodes[0].Y + nodes[1].Y) / 2
	assert.InDelta(t, 0, cx, 1e-9)
	assert.InDelta(t, 0, cy, 1e-9)
}

func TestPinnedCoordinatesSnapDuringTick(t *testing.T) {
	fx, fy := 100.0, 200.0
	nodes := []*Node{{ID: 0, X: 0, Y: 0, FX: &fx, FY: &fy, VX: 5, VY: 5}}
	sim := NewSimulation(nodes)
	sim.Tick()
	assert.Equal(t, fx, nodes[0].X)
	assert.Equal(t, fy, nodes[0].Y)
	assert.Equal(t, 0.0, nodes[0].VX)
	assert.Equal(t, 0.0, nodes[0].VY)
}

func TestRadialPullsTowardCircle(t *testing.T) {
	nodes := []*Node{{ID: 0, X: 0, Y: 0}}
	r := &Radial{Radius: 100, Strength: 1}
	for i := 0; i < 50; i++ {
		r.Apply(nodes, 1)
		nodes[0].X += nodes[0].VX
		nodes[0].Y += nodes[0].VY
		nodes[0].VX, nodes[0].VY = 0, 0
	}
	d := math.Hypot(nodes[0].X, nodes[0].Y)
	assert.InDelta(t, 100, d, 5)
}
