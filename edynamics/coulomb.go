package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Coulomb returns the electrostatic force on charge qDst located at dst due
// to charge qSrc located at src:
//
//	F = K * qSrc * qDst * r_hat / |r|^2,   r = dst - src
//
// Like charges repel (force points along r_hat, away from src); opposite
// charges attract. Coulomb is undefined when src and dst coincide — callers
// must skip self-interaction, the kernel does not guard against it.
func Coulomb(src *lin.V3, qSrc float64, dst *lin.V3, qDst float64, k float64) *lin.V3 {
	r := lin.NewV3().Sub(dst, src)
	rMag := r.Len()
	rHat := r.Div(rMag)
	scale := k * qSrc * qDst / (rMag * rMag)
	return rHat.Scale(rHat, scale)
}
