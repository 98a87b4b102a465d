// Package force implements a physics-based graph layout: point-mass
// nodes evolving under pluggable forces with velocity Verlet-style
// integration and a global alpha decay.
package force

import "math"

// Node is a point mass at a position SimulationNode.
// FX/FY pin the node on that axis when non-nil.
type Node struct {
	ID     int
	X, Y   float64
	VX, VY float64
	FX, FY *float64
	Radius float64
}

// Force is a named operator mutating the node vector in place given
// the simulation's current alpha.
type Force interface {
	Apply(nodes []*Node, alpha float64)
}

// Simulation owns a node vector and an ordered list of named forces,
// applied in registration order on each Tick.
type Simulation struct {
	Nodes []*Node

	Alpha         float64
	AlphaMin      float64
	AlphaDecay    float64
	AlphaTarget   float64
	VelocityDecay float64

	names  []string
	forces map[string]Force
}

// NewSimulation returns a Simulation over nodes with the documented
// defaults: alpha=1, alpha_min=0.001, alpha_decay=1-alpha_min^(1/300)
// (reaches alpha_min in ~300 ticks), velocity_decay=0.4.
func NewSimulation(nodes []*Node) *Simulation {
	alphaMin := 0.001
	return &Simulation{
		Nodes:         nodes,
		Alpha:         1,
		AlphaMin:      alphaMin,
		AlphaDecay:    1 - math.Pow(alphaMin, 1.0/300),
		AlphaTarget:   0,
		VelocityDecay: 0.4,
		forces:        make(map[string]Force),
	}
}

// SetForce registers or replaces a named force. Ordering determines
// application sequence within a tick; a new name is appended, an
// existing name keeps its position.
func (s *Simulation) SetForce(name string, f Force) {
	if _, exists := s.forces[name]; !exists {
		s.names = append(s.names, name)
	}
	s.forces[name] = f
}

// RemoveForce unregisters a named force.
func (s *Simulation) RemoveForce(name string) {
	if _, exists := s.forces[name]; !exists {
		return
	}
	delete(s.forces, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Tick advances the simulation by one step: decay alpha, apply
// velocity decay, apply forces in registration order, integrate, then
// snap pinned coordinates.
func (s *Simulation) Tick() {
	s.Alpha += (s.AlphaTarget - s.Alpha) * s.AlphaDecay
	for _, n := range s.Nodes {
		n.VX *= s.VelocityDecay
		n.VY *= s.VelocityDecay
	}
	for _, name := range s.names {
		s.forces[name].Apply(s.Nodes, s.Alpha)
	}
	for _, n := range s.Nodes {
		n.X += n.VX
		n.Y += n.VY
		if n.FX != nil {
			n.X = *n.FX
			n.VX = 0
		}
		if n.FY != nil {
			n.Y = *n.FY
			n.VY = 0
		}
	}
}

// Done reports whether alpha has decayed below AlphaMin.
func (s *Simulation) Done() bool { return s.Alpha < s.AlphaMin }

// Run ticks the simulation until Done or maxTicks is reached,
// whichever comes first, for callers that want to run to convergence
// rather than one tick per frame.
func (s *Simulation) Run(maxTicks int) int {
	i := 0
	for ; i < maxTicks && !s.Done(); i++ {
		s.Tick()
	}
	return i
}

// TotalVelocity returns the sum of velocity magnitudes across all
// nodes, a common equilibrium check.
func (s *Simulation) TotalVelocity() float64 {
	var total float64
	for _, n := range s.Nodes {
		total += math.Hypot(n.VX, n.VY)
	}
	return total
}
