// Package edynamics simulates the classical electrodynamics of point
// charges and rigid electric dipoles in free space: Coulomb interaction,
// RK4 integration of coupled translational and rotational state, and the
// conserved quantities (momentum, angular momentum, energy) that let a
// caller verify the integration is behaving.
//
// The package is deliberately O(N^2) per tick and single-threaded — see
// Simulatable for the integration contract. It has no rendering, input, or
// persistence concerns; those are expected to live outside the package and
// consume it through Simulatable, Object and the Store facade.
package edynamics

// Kind identifies which concrete entity an Object view wraps.
type Kind int

const (
	// KindCharge marks an Object backed by a point Charge.
	KindCharge Kind = iota
	// KindDipole marks an Object backed by a rigid Dipole.
	KindDipole
)

func (k Kind) String() string {
	switch k {
	case KindCharge:
		return "charge"
	case KindDipole:
		return "dipole"
	default:
		return "unknown"
	}
}
