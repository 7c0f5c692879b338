package edynamics

import (
	"testing"

	"github.com/arkforge/dipolesim/math/lin"
)

func TestTraceFieldLineFollowsField(t *testing.T) {
	cs := &ChargeSimulation{
		K:       1,
		Charges: []Charge{{Mass: 1, Position: lin.V3{X: 0, Y: 0, Z: 0}, Q: 1}},
	}
	start := &lin.V3{X: 1, Y: 0, Z: 0}
	points := TraceFieldLine(cs, start, 0.1, 10)
	if len(points) != 11 {
		t.Fatalf("expected 11 points (start + 10 steps), got %d", len(points))
	}
	// a positive test charge should be pushed directly away from the source.
	last := points[len(points)-1]
	if last.X <= points[0].X {
		t.Errorf("field line from a positive source should move outward, start=%v end=%v", points[0], last)
	}
}

func TestTraceFieldLineStopsOnZeroField(t *testing.T) {
	// two canceling equal-and-opposite-distance sources leave the midpoint
	// on the x axis with zero field along that axis for symmetric charges.
	cs := &ChargeSimulation{
		K: 1,
		Charges: []Charge{
			{Mass: 1, Position: lin.V3{X: -1, Y: 0, Z: 0}, Q: 1},
			{Mass: 1, Position: lin.V3{X: 1, Y: 0, Z: 0}, Q: 1},
		},
	}
	points := TraceFieldLine(cs, &lin.V3{X: 0, Y: 0, Z: 0}, 0.1, 10)
	if len(points) != 1 {
		t.Errorf("trace from a field-free point should stop immediately, got %d points", len(points))
	}
}
