package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Charge is a point charge: a mass carrying a signed charge, advanced only
// by the simulation's integrator.
type Charge struct {
	Mass     float64
	Position lin.V3
	Velocity lin.V3
	Q        float64 // signed charge.
}

// NewCharge constructs a Charge at rest-or-moving state (mass, position,
// velocity, charge). Position and velocity are copied.
func NewCharge(mass float64, position, velocity lin.V3, q float64) *Charge {
	return &Charge{Mass: mass, Position: position, Velocity: velocity, Q: q}
}

// Force returns the net Coulomb force on a hypothetical unit-mass carrier
// of this charge's Q, placed at position r, summed over every other charge
// in sources except sources[selfIndex]. Used to evaluate RK4 derivatives at
// shifted positions without mutating any charge's state.
func (c *Charge) Force(r *lin.V3, sources []Charge, selfIndex int, k float64) *lin.V3 {
	force := lin.NewV3()
	for i := range sources {
		if i == selfIndex {
			continue
		}
		src := &sources[i]
		force.Add(force, Coulomb(&src.Position, src.Q, r, c.Q, k))
	}
	return force
}
