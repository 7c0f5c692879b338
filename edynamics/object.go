package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Object is a read-only, polymorphic view over a Charge or Dipole, used by
// renderers and anything else that needs to iterate a simulation's
// population uniformly. Orientation is the zero vector and Offset is 0 for
// a Charge-backed Object.
type Object struct {
	Kind        Kind
	Position    lin.V3
	Orientation lin.V3
	Offset      float64
}
