package edynamics

import (
	"testing"

	"github.com/arkforge/dipolesim/math/lin"
)

func TestChargeSimulationObjectsHaveZeroOrientationAndOffset(t *testing.T) {
	cs := NewChargeSimulation()
	for _, obj := range cs.GetObjects() {
		if obj.Kind != KindCharge {
			t.Errorf("expected KindCharge, got %v", obj.Kind)
		}
		if !obj.Orientation.Aeq(&lin.V3{}) {
			t.Errorf("charge object orientation should be zero, got %v", obj.Orientation)
		}
		if obj.Offset != 0 {
			t.Errorf("charge object offset should be 0, got %f", obj.Offset)
		}
	}
}

func TestDipoleSimulationObjectsCarryOrientationAndOffset(t *testing.T) {
	ds := NewDipoleSimulation(1, 2, 1, -1)
	objs := ds.GetObjects()
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
	for i, obj := range objs {
		if obj.Kind != KindDipole {
			t.Errorf("expected KindDipole, got %v", obj.Kind)
		}
		if obj.Offset != ds.Dipoles[i].Offset {
			t.Errorf("object %d offset = %f, want %f", i, obj.Offset, ds.Dipoles[i].Offset)
		}
		if !obj.Orientation.Aeq(&ds.Dipoles[i].Orientation) {
			t.Errorf("object %d orientation = %v, want %v", i, obj.Orientation, ds.Dipoles[i].Orientation)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindCharge.String() != "charge" {
		t.Errorf("KindCharge.String() = %q", KindCharge.String())
	}
	if KindDipole.String() != "dipole" {
		t.Errorf("KindDipole.String() = %q", KindDipole.String())
	}
}
