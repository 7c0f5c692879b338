package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Rotate applies the exponential map SO(3) <- so(3) to vector v: omega is a
// scaled-axis pseudovector whose direction is the rotation axis and whose
// magnitude is the angle in radians. It is the natural way to advance an
// orientation by a small angular increment without ever parameterizing with
// Euler angles.
//
// Rotate(v, 0) returns v unchanged. Implemented via the axis-angle
// quaternion (math/lin's Q.SetAa/V3.MultvQ), an instance of Rodrigues'
// formula.
func Rotate(v, omega *lin.V3) *lin.V3 {
	angle := omega.Len()
	if angle == 0 {
		return lin.NewV3().Set(v)
	}
	q := lin.NewQ().SetAa(omega.X, omega.Y, omega.Z, angle)
	return lin.NewV3().MultvQ(v, q)
}
