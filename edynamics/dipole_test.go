package edynamics

import (
	"testing"

	"github.com/arkforge/dipolesim/math/lin"
)

func TestDipoleForceTorqueSkipsSelf(t *testing.T) {
	dipoles := []Dipole{
		{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Orientation: lin.V3{X: 1, Y: 0, Z: 0}, Q: 1, Offset: 0.1},
	}
	d := &dipoles[0]
	f, tq := d.ForceTorque(&d.Position, &d.Orientation, dipoles, 0, 1)
	if !f.Aeq(&lin.V3{}) || !tq.Aeq(&lin.V3{}) {
		t.Errorf("single dipole should feel no force/torque from itself, got F=%v tau=%v", f, tq)
	}
}

// Newton's third law: the net force dipole A exerts on dipole B (via B's
// ForceTorque probing B's own state against a population containing A)
// equals the negative of the net force dipole B exerts on A.
func TestDipoleForceTorqueNewtonsThirdLaw(t *testing.T) {
	dipoles := []Dipole{
		{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Orientation: lin.V3{X: 1, Y: 0, Z: 0}, Q: 1, Offset: 0.1},
		{Mass: 1, Position: lin.V3{X: 3, Y: 0, Z: 0}, Orientation: lin.V3{X: 0, Y: 1, Z: 0}, Q: 1, Offset: 0.1},
	}
	a, b := &dipoles[0], &dipoles[1]

	forceOnA, _ := a.ForceTorque(&a.Position, &a.Orientation, dipoles, 0, 1)
	forceOnB, _ := b.ForceTorque(&b.Position, &b.Orientation, dipoles, 1, 1)

	negForceOnB := lin.NewV3().Neg(forceOnB)
	if !forceOnA.Aeq(negForceOnB) {
		t.Errorf("force on A = %v, want -force on B = %v", forceOnA, negForceOnB)
	}
}

func TestDipoleHeadToTailAttracts(t *testing.T) {
	dipoles := []Dipole{
		{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Orientation: lin.V3{X: 1, Y: 0, Z: 0}, Q: 1, Offset: 0.1},
		{Mass: 1, Position: lin.V3{X: 3, Y: 0, Z: 0}, Orientation: lin.V3{X: 1, Y: 0, Z: 0}, Q: 1, Offset: 0.1},
	}
	a := &dipoles[0]
	f, _ := a.ForceTorque(&a.Position, &a.Orientation, dipoles, 0, 1)
	if f.X <= 0 {
		t.Errorf("head-to-tail aligned dipoles should attract (force toward +x on dipole 0), got %v", f)
	}
}

func TestDipoleMoment(t *testing.T) {
	d := Dipole{Mass: 4, Offset: 0.5}
	want := 4 * 0.5 * 0.5
	if got := d.Moment(); !lin.Aeq(got, want) {
		t.Errorf("Moment() = %f, want %f", got, want)
	}
}
