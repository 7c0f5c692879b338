package edynamics

import (
	"testing"

	"github.com/arkforge/dipolesim/math/lin"
)

func TestChargeForceSkipsSelf(t *testing.T) {
	charges := []Charge{
		{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Q: 1},
	}
	c := &charges[0]
	f := c.Force(&c.Position, charges, 0, 1)
	if !f.Aeq(&lin.V3{}) {
		t.Errorf("single charge should feel no force from itself, got %v", f)
	}
}

func TestChargeForceSumsOthers(t *testing.T) {
	charges := []Charge{
		{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Q: 1},
		{Mass: 1, Position: lin.V3{X: 1, Y: 0, Z: 0}, Q: 1},
		{Mass: 1, Position: lin.V3{X: -1, Y: 0, Z: 0}, Q: 1},
	}
	c := &charges[0]
	f := c.Force(&c.Position, charges, 0, 1)
	// symmetric like charges on either side cancel.
	if !f.Aeq(&lin.V3{}) {
		t.Errorf("symmetric repulsion should cancel, got %v", f)
	}
}
