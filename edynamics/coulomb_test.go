package edynamics

import (
	"testing"

	"github.com/arkforge/dipolesim/math/lin"
)

func TestCoulombSymmetry(t *testing.T) {
	src := &lin.V3{X: 1, Y: 2, Z: 0}
	dst := &lin.V3{X: -3, Y: 1, Z: 4}
	qSrc, qDst := 2.5, -1.5
	const k = 1.0

	forward := Coulomb(src, qSrc, dst, qDst, k)
	backward := Coulomb(dst, qDst, src, qSrc, k)

	neg := lin.NewV3().Neg(backward)
	if !forward.Aeq(neg) {
		t.Errorf("Coulomb(src,dst) = %v, want -Coulomb(dst,src) = %v", forward, neg)
	}
}

func TestCoulombLikeChargesRepel(t *testing.T) {
	src := &lin.V3{X: 0, Y: 0, Z: 0}
	dst := &lin.V3{X: 1, Y: 0, Z: 0}
	f := Coulomb(src, 1, dst, 1, 1)
	if f.X <= 0 {
		t.Errorf("like charges should repel along +x, got %v", f)
	}
}

func TestCoulombOppositeChargesAttract(t *testing.T) {
	src := &lin.V3{X: 0, Y: 0, Z: 0}
	dst := &lin.V3{X: 1, Y: 0, Z: 0}
	f := Coulomb(src, 1, dst, -1, 1)
	if f.X >= 0 {
		t.Errorf("opposite charges should attract along -x, got %v", f)
	}
}

func TestCoulombMagnitude(t *testing.T) {
	src := &lin.V3{X: 0, Y: 0, Z: 0}
	dst := &lin.V3{X: 2, Y: 0, Z: 0}
	f := Coulomb(src, 3, dst, 4, 2)
	want := 2.0 * 3 * 4 / (2 * 2)
	if !lin.Aeq(f.Len(), want) {
		t.Errorf("|F| = %f, want %f", f.Len(), want)
	}
}
