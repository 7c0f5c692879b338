package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// TraceFieldLine walks the field probe of sim in unit steps of length
// stepLen starting at start, following the field direction at each point,
// for up to maxSteps steps. It is a pure, read-only consumer of GetField:
// it never mutates sim and has no effect on integration. Present in one
// revision of the source as an experimental visualization aid and not part
// of the core spec, but costs nothing to expose since it only reads.
//
// The walk stops early if the field magnitude at the current point is zero
// (nothing to follow) to avoid dividing by zero.
func TraceFieldLine(sim Simulatable, start *lin.V3, stepLen float64, maxSteps int) []lin.V3 {
	points := make([]lin.V3, 0, maxSteps+1)
	cur := lin.NewV3().Set(start)
	points = append(points, *cur)

	for i := 0; i < maxSteps; i++ {
		field := sim.GetField(cur)
		mag := field.Len()
		if mag == 0 {
			break
		}
		dir := field.Div(mag)
		cur = lin.NewV3().Add(cur, dir.Scale(dir, stepLen))
		points = append(points, *cur)
	}
	return points
}
