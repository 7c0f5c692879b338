package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Dipole is a rigid body formed from two equal-and-opposite point charges
// (+Q at Position + Orientation*Offset, -Q at Position - Orientation*Offset)
// held a fixed distance apart. Orientation is a unit vector from the
// negative pole to the positive pole and is expected to stay unit length up
// to floating-point drift: Rotate is an orthogonal transform, so the
// integrator never renormalizes it explicitly.
type Dipole struct {
	Mass            float64
	Position        lin.V3 // center of mass.
	Velocity        lin.V3 // center-of-mass velocity.
	Orientation     lin.V3 // unit vector, negative pole -> positive pole.
	AngularVelocity lin.V3 // pseudovector, rad/s about each axis.
	Q               float64 // magnitude of each pole's charge.
	Offset          float64 // half the pole separation.
}

// NewDipole constructs a Dipole. Orientation is expected to already be unit
// length; NewDipole does not normalize it.
func NewDipole(mass float64, position, velocity, orientation, angularVelocity lin.V3, q, offset float64) *Dipole {
	return &Dipole{
		Mass:            mass,
		Position:        position,
		Velocity:        velocity,
		Orientation:     orientation,
		AngularVelocity: angularVelocity,
		Q:               q,
		Offset:          offset,
	}
}

// Moment is the effective moment of inertia used for this dipole's
// rotational dynamics: mass*offset^2, matching a rigid body modeled as two
// equal half-masses held at +-offset from the center. (A physically exact
// moment for that mass distribution is mass*offset^2/2; this implementation
// preserves the reference engine's value — see DESIGN.md.)
func (d *Dipole) Moment() float64 { return d.Mass * d.Offset * d.Offset }

// ForceTorque returns the net force on a hypothetical probe dipole's center
// of mass, and the net torque about that center, for a probe at position r
// with orientation o, interacting with every dipole in sources except
// sources[selfIndex]. It is the four-way sum of point-charge interactions
// between the probe's two poles and each source's two poles; the lever arm
// for every contribution is the destination pole's offset from the probe
// center r, never from the source.
func (d *Dipole) ForceTorque(r, o *lin.V3, sources []Dipole, selfIndex int, k float64) (*lin.V3, *lin.V3) {
	force := lin.NewV3()
	torque := lin.NewV3()

	probePos := lin.NewV3().Add(r, lin.NewV3().Scale(o, d.Offset))
	probeNeg := lin.NewV3().Sub(r, lin.NewV3().Scale(o, d.Offset))

	for i := range sources {
		if i == selfIndex {
			continue
		}
		src := &sources[i]
		srcPos := lin.NewV3().Add(&src.Position, lin.NewV3().Scale(&src.Orientation, src.Offset))
		srcNeg := lin.NewV3().Sub(&src.Position, lin.NewV3().Scale(&src.Orientation, src.Offset))

		accumulate := func(source *lin.V3, sourceQ float64, dest *lin.V3, destQ float64) {
			interaction := Coulomb(source, sourceQ, dest, destQ, k)
			force.Add(force, interaction)
			lever := lin.NewV3().Sub(dest, r)
			torque.Add(torque, lin.NewV3().Cross(lever, interaction))
		}

		accumulate(srcNeg, -src.Q, probeNeg, -d.Q)
		accumulate(srcPos, src.Q, probeNeg, -d.Q)
		accumulate(srcNeg, -src.Q, probePos, d.Q)
		accumulate(srcPos, src.Q, probePos, d.Q)
	}
	return force, torque
}
