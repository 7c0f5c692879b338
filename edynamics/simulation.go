package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Simulatable is the capability set shared by every simulation variant: the
// RK4 integrator step, read-only population iteration, the electric field
// probe, and the conserved-quantity observables. The set of variants is
// closed at ChargeSimulation and DipoleSimulation; no plugin extension is
// supported.
type Simulatable interface {
	// Update advances every entity by one RK4 step of size dt. dt == 0 is a
	// no-op; every entity's derivative is computed against the pre-tick
	// state of every other entity, and updates are applied in entity-index
	// order only after all derivatives have been summed.
	Update(dt float64)

	// GetObjects returns a read-only view of the population for rendering.
	GetObjects() []Object

	// GetField returns the electric field at r: the Coulomb force that
	// would act on a unit positive test charge placed there.
	GetField(r *lin.V3) *lin.V3

	GetTotalMomentum() *lin.V3
	GetTotalAngularMomentum() *lin.V3
	GetTotalEnergy() float64
}

// ChargeSimulation is an ordered, fixed population of point charges
// interacting only via Coulomb's law.
type ChargeSimulation struct {
	Charges []Charge
	K       float64
}

// NewChargeSimulation constructs the canonical 2-charge scenario: +5 at the
// origin moving in -x, -5 at (0,10,0) moving in +x, both mass 1, K=1.
func NewChargeSimulation() *ChargeSimulation {
	return &ChargeSimulation{
		K: 1.0,
		Charges: []Charge{
			{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Velocity: lin.V3{X: -0.5, Y: 0, Z: 0}, Q: 5},
			{Mass: 1, Position: lin.V3{X: 0, Y: 10, Z: 0}, Velocity: lin.V3{X: 0.5, Y: 0, Z: 0}, Q: -5},
		},
	}
}

// Update implements Simulatable using the RK4 scheme of spec.md §4.5.1.
func (s *ChargeSimulation) Update(dt float64) {
	if dt == 0 {
		return
	}
	n := len(s.Charges)
	dPos := make([]lin.V3, n)
	dVel := make([]lin.V3, n)

	for i := range s.Charges {
		c := &s.Charges[i]
		accel := func(pos *lin.V3) *lin.V3 {
			return lin.NewV3().Scale(c.Force(pos, s.Charges, i, s.K), 1/c.Mass)
		}

		k1v := accel(&c.Position)
		k1r := lin.NewV3().Set(&c.Velocity)

		x2 := lin.NewV3().Add(&c.Position, lin.NewV3().Scale(k1r, dt/2))
		k2v := accel(x2)
		k2r := lin.NewV3().Add(&c.Velocity, lin.NewV3().Scale(k1v, dt/2))

		x3 := lin.NewV3().Add(&c.Position, lin.NewV3().Scale(k2r, dt/2))
		k3v := accel(x3)
		k3r := lin.NewV3().Add(&c.Velocity, lin.NewV3().Scale(k2v, dt/2))

		x4 := lin.NewV3().Add(&c.Position, lin.NewV3().Scale(k3r, dt))
		k4v := accel(x4)
		k4r := lin.NewV3().Add(&c.Velocity, lin.NewV3().Scale(k3v, dt))

		dVel[i] = *rk4Combine(k1v, k2v, k3v, k4v, dt)
		dPos[i] = *rk4Combine(k1r, k2r, k3r, k4r, dt)
	}

	for i := range s.Charges {
		c := &s.Charges[i]
		c.Position.Add(&c.Position, &dPos[i])
		c.Velocity.Add(&c.Velocity, &dVel[i])
	}
}

// GetObjects implements Simulatable.
func (s *ChargeSimulation) GetObjects() []Object {
	objs := make([]Object, len(s.Charges))
	for i, c := range s.Charges {
		objs[i] = Object{Kind: KindCharge, Position: c.Position}
	}
	return objs
}

// GetField implements Simulatable: the sum of each charge's field at r.
func (s *ChargeSimulation) GetField(r *lin.V3) *lin.V3 {
	field := lin.NewV3()
	for i := range s.Charges {
		c := &s.Charges[i]
		field.Add(field, Coulomb(&c.Position, c.Q, r, 1, s.K))
	}
	return field
}

// GetTotalMomentum implements Simulatable: sum m_i*v_i.
func (s *ChargeSimulation) GetTotalMomentum() *lin.V3 {
	p := lin.NewV3()
	for i := range s.Charges {
		c := &s.Charges[i]
		p.Add(p, lin.NewV3().Scale(&c.Velocity, c.Mass))
	}
	return p
}

// GetTotalAngularMomentum implements Simulatable: sum m_i*(x_i cross v_i).
func (s *ChargeSimulation) GetTotalAngularMomentum() *lin.V3 {
	l := lin.NewV3()
	for i := range s.Charges {
		c := &s.Charges[i]
		cross := lin.NewV3().Cross(&c.Position, &c.Velocity)
		l.Add(l, cross.Scale(cross, c.Mass))
	}
	return l
}

// GetTotalEnergy implements Simulatable: kinetic plus pairwise potential.
func (s *ChargeSimulation) GetTotalEnergy() float64 {
	energy := 0.0
	for i := range s.Charges {
		c := &s.Charges[i]
		energy += 0.5 * c.Mass * c.Velocity.LenSqr()
	}
	for i := range s.Charges {
		for j := i + 1; j < len(s.Charges); j++ {
			a, b := &s.Charges[i], &s.Charges[j]
			energy += s.K * a.Q * b.Q / a.Position.Dist(&b.Position)
		}
	}
	return energy
}

// DipoleSimulation is an ordered, fixed population of rigid electric
// dipoles interacting via the four-pole Coulomb sum (Dipole.ForceTorque).
type DipoleSimulation struct {
	Dipoles []Dipole
	K       float64
}

// NewDipoleSimulation constructs the canonical 2-dipole scenario: dipole 1
// at the origin oriented +x, dipole 2 at (10,0,0) oriented +y, both at
// rest, offset 0.1, K=2.
func NewDipoleSimulation(mass1, mass2, charge1, charge2 float64) *DipoleSimulation {
	const offset = 0.1
	return &DipoleSimulation{
		K: 2.0,
		Dipoles: []Dipole{
			{
				Mass:        mass1,
				Position:    lin.V3{X: 0, Y: 0, Z: 0},
				Orientation: lin.V3{X: 1, Y: 0, Z: 0},
				Q:           charge1,
				Offset:      offset,
			},
			{
				Mass:        mass2,
				Position:    lin.V3{X: 10, Y: 0, Z: 0},
				Orientation: lin.V3{X: 0, Y: 1, Z: 0},
				Q:           charge2,
				Offset:      offset,
			},
		},
	}
}

type dipoleDelta struct {
	dPos, dVel, dAngVel, dOrient lin.V3
}

// Update implements Simulatable using the coupled translational/rotational
// RK4 scheme of spec.md §4.5.2.
func (s *DipoleSimulation) Update(dt float64) {
	if dt == 0 {
		return
	}
	deltas := make([]dipoleDelta, len(s.Dipoles))

	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		moment := d.Moment()

		sample := func(pos, orient *lin.V3) (*lin.V3, *lin.V3) {
			force, torque := d.ForceTorque(pos, orient, s.Dipoles, i, s.K)
			return lin.NewV3().Scale(force, 1/d.Mass), lin.NewV3().Scale(torque, 1/moment)
		}

		k1v, l1v := sample(&d.Position, &d.Orientation)
		k1r := lin.NewV3().Set(&d.Velocity)
		l1r := lin.NewV3().Set(&d.AngularVelocity)

		x2 := lin.NewV3().Add(&d.Position, lin.NewV3().Scale(k1r, dt/2))
		o2 := Rotate(&d.Orientation, lin.NewV3().Scale(l1v, dt/2))
		k2v, l2v := sample(x2, o2)
		k2r := lin.NewV3().Add(&d.Velocity, lin.NewV3().Scale(k1v, dt/2))
		l2r := lin.NewV3().Add(&d.AngularVelocity, lin.NewV3().Scale(l1v, dt/2))

		x3 := lin.NewV3().Add(&d.Position, lin.NewV3().Scale(k2r, dt/2))
		o3 := Rotate(&d.Orientation, lin.NewV3().Scale(l2v, dt/2))
		k3v, l3v := sample(x3, o3)
		k3r := lin.NewV3().Add(&d.Velocity, lin.NewV3().Scale(k2v, dt/2))
		l3r := lin.NewV3().Add(&d.AngularVelocity, lin.NewV3().Scale(l2v, dt/2))

		x4 := lin.NewV3().Add(&d.Position, lin.NewV3().Scale(k3r, dt))
		o4 := Rotate(&d.Orientation, lin.NewV3().Scale(l3v, dt))
		k4v, l4v := sample(x4, o4)
		k4r := lin.NewV3().Add(&d.Velocity, lin.NewV3().Scale(k3v, dt))
		l4r := lin.NewV3().Add(&d.AngularVelocity, lin.NewV3().Scale(l3v, dt))

		deltas[i] = dipoleDelta{
			dVel:    *rk4Combine(k1v, k2v, k3v, k4v, dt),
			dPos:    *rk4Combine(k1r, k2r, k3r, k4r, dt),
			dAngVel: *rk4Combine(l1v, l2v, l3v, l4v, dt),
			dOrient: *rk4Combine(l1r, l2r, l3r, l4r, dt),
		}
	}

	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		delta := &deltas[i]
		d.Position.Add(&d.Position, &delta.dPos)
		d.Velocity.Add(&d.Velocity, &delta.dVel)
		d.AngularVelocity.Add(&d.AngularVelocity, &delta.dAngVel)
		d.Orientation.Set(Rotate(&d.Orientation, &delta.dOrient))
	}
}

// GetObjects implements Simulatable.
func (s *DipoleSimulation) GetObjects() []Object {
	objs := make([]Object, len(s.Dipoles))
	for i, d := range s.Dipoles {
		objs[i] = Object{Kind: KindDipole, Position: d.Position, Orientation: d.Orientation, Offset: d.Offset}
	}
	return objs
}

// GetField implements Simulatable: each dipole contributes its two-pole field.
func (s *DipoleSimulation) GetField(r *lin.V3) *lin.V3 {
	field := lin.NewV3()
	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		pos := lin.NewV3().Add(&d.Position, lin.NewV3().Scale(&d.Orientation, d.Offset))
		neg := lin.NewV3().Sub(&d.Position, lin.NewV3().Scale(&d.Orientation, d.Offset))
		field.Add(field, Coulomb(neg, -d.Q, r, 1, s.K))
		field.Add(field, Coulomb(pos, d.Q, r, 1, s.K))
	}
	return field
}

// GetTotalMomentum implements Simulatable: sum m_i*v_i (COM velocity).
func (s *DipoleSimulation) GetTotalMomentum() *lin.V3 {
	p := lin.NewV3()
	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		p.Add(p, lin.NewV3().Scale(&d.Velocity, d.Mass))
	}
	return p
}

// GetTotalAngularMomentum implements Simulatable: spin (I*omega) plus
// orbital (m*(x cross v)) per dipole.
func (s *DipoleSimulation) GetTotalAngularMomentum() *lin.V3 {
	l := lin.NewV3()
	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		spin := lin.NewV3().Scale(&d.AngularVelocity, d.Moment())
		orbital := lin.NewV3().Cross(&d.Position, &d.Velocity)
		orbital.Scale(orbital, d.Mass)
		l.Add(l, spin)
		l.Add(l, orbital)
	}
	return l
}

// GetTotalEnergy implements Simulatable: translational + rotational kinetic
// energy plus the pairwise potential energy of every dipole's two poles
// expanded into point charges.
func (s *DipoleSimulation) GetTotalEnergy() float64 {
	energy := 0.0
	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		energy += 0.5 * d.Mass * d.Velocity.LenSqr()
		energy += 0.5 * d.Moment() * d.AngularVelocity.LenSqr()
	}

	type pole struct {
		pos lin.V3
		q   float64
	}
	poles := make([]pole, 0, len(s.Dipoles)*2)
	for i := range s.Dipoles {
		d := &s.Dipoles[i]
		pos := lin.NewV3().Add(&d.Position, lin.NewV3().Scale(&d.Orientation, d.Offset))
		neg := lin.NewV3().Sub(&d.Position, lin.NewV3().Scale(&d.Orientation, d.Offset))
		poles = append(poles, pole{pos: *pos, q: d.Q}, pole{pos: *neg, q: -d.Q})
	}
	for i := range poles {
		for j := i + 1; j < len(poles); j++ {
			energy += s.K * poles[i].q * poles[j].q / poles[i].pos.Dist(&poles[j].pos)
		}
	}
	return energy
}

// rk4Combine folds the four RK4 samples of a single derivative into the
// dt-scaled increment (k1 + 2*k2 + 2*k3 + k4) * dt/6.
func rk4Combine(k1, k2, k3, k4 *lin.V3, dt float64) *lin.V3 {
	sum := lin.NewV3().Add(k1, lin.NewV3().Scale(k2, 2))
	sum.Add(sum, lin.NewV3().Scale(k3, 2))
	sum.Add(sum, k4)
	return sum.Scale(sum, dt/6)
}

var (
	_ Simulatable = (*ChargeSimulation)(nil)
	_ Simulatable = (*DipoleSimulation)(nil)
)
