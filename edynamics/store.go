package edynamics

import "github.com/arkforge/dipolesim/math/lin"

// Store is the narrow supervisor consumed by rendering and controls (spec
// §4.6, §6): it holds the single live Simulatable plus the time-scale
// applied to incoming ticks. Camera, mouse and clock state are a rendering
// concern and live outside Store; Store only ever touches the engine.
type Store struct {
	sim       Simulatable
	timeScale float64
}

// NewStore wraps sim in a Store with an initial time scale of 1.
func NewStore(sim Simulatable) *Store {
	return &Store{sim: sim, timeScale: 1}
}

// Simulation returns the currently active simulation.
func (s *Store) Simulation() Simulatable { return s.sim }

// TimeScale returns the current time-scale multiplier.
func (s *Store) TimeScale() float64 { return s.timeScale }

// Msg is a command sent to a Store via Dispatch. The concrete Msg types
// below correspond one-to-one to the facade operations of spec §4.6.
type Msg interface{ apply(*Store) }

// UpdateSimulation advances the simulation by dtMs milliseconds, scaled by
// the Store's current time scale, exactly as delivered by an external
// frame-tick driver.
type UpdateSimulation struct{ DtMs float64 }

func (m UpdateSimulation) apply(s *Store) {
	s.sim.Update(m.DtMs * s.timeScale)
}

// TimeScaleMsg re-parameterizes the Store's time scale. Values are clamped
// to [0, 10] per spec §6; a scale of 0 pauses evolution since Update then
// always sees dt == 0.
type TimeScaleMsg struct{ Scale float64 }

func (m TimeScaleMsg) apply(s *Store) {
	s.timeScale = lin.Clamp(m.Scale, 0, 10)
}

// OffsetMsg re-parameterizes every live dipole's pole offset (half the pole
// separation), recomputing nothing else — Moment is derived on demand from
// Mass and Offset. It is a no-op on a ChargeSimulation.
type OffsetMsg struct{ Offset float64 }

func (m OffsetMsg) apply(s *Store) {
	ds, ok := s.sim.(*DipoleSimulation)
	if !ok {
		return
	}
	for i := range ds.Dipoles {
		ds.Dipoles[i].Offset = m.Offset
	}
}

// ResetSimulation replaces the Store's active simulation outright, e.g. to
// switch between a ChargeSimulation and a DipoleSimulation or to reseed the
// current kind with new initial conditions.
type ResetSimulation struct{ Sim Simulatable }

func (m ResetSimulation) apply(s *Store) {
	s.sim = m.Sim
}

// Dispatch applies msg to the Store.
func (s *Store) Dispatch(msg Msg) {
	msg.apply(s)
}
