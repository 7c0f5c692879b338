// Package scenario loads and overrides the initial conditions handed to
// edynamics: which simulation kind to build and the masses, charges, pole
// offset and time scale to seed it with. It mirrors the shape of the
// engine's own functional-options configuration (vu's Config/Attr pair)
// generalized to a YAML-loadable struct, the way the engine loads shader
// descriptions from disk with gopkg.in/yaml.v3.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arkforge/dipolesim/edynamics"
)

// Scenario is the YAML-serializable description of a simulation's initial
// conditions.
type Scenario struct {
	Kind      string  `yaml:"kind"` // "charge" or "dipole"
	Mass1     float64 `yaml:"mass1"`
	Mass2     float64 `yaml:"mass2"`
	Charge1   float64 `yaml:"charge1"`
	Charge2   float64 `yaml:"charge2"`
	Offset    float64 `yaml:"offset"`
	TimeScale float64 `yaml:"time_scale"`
}

// Defaults returns the canonical 2-dipole scenario of spec §6: unit masses
// and charges, offset 0.1, time scale 1.
func Defaults() Scenario {
	return Scenario{
		Kind:      "dipole",
		Mass1:     1,
		Mass2:     1,
		Charge1:   1,
		Charge2:   1,
		Offset:    0.1,
		TimeScale: 1,
	}
}

// Option overrides a field of a Scenario, in the shape of the engine's own
// Config/Attr functional options (config.go's Title/Size/Background).
type Option func(*Scenario)

// Mass1 overrides the first entity's mass.
func Mass1(m float64) Option { return func(s *Scenario) { s.Mass1 = m } }

// Mass2 overrides the second entity's mass.
func Mass2(m float64) Option { return func(s *Scenario) { s.Mass2 = m } }

// Charge1 overrides the first entity's charge.
func Charge1(q float64) Option { return func(s *Scenario) { s.Charge1 = q } }

// Charge2 overrides the second entity's charge.
func Charge2(q float64) Option { return func(s *Scenario) { s.Charge2 = q } }

// OffsetAttr overrides the dipole pole offset. No effect on a charge scenario.
func OffsetAttr(o float64) Option { return func(s *Scenario) { s.Offset = o } }

// TimeScale overrides the time-scale multiplier.
func TimeScale(t float64) Option { return func(s *Scenario) { s.TimeScale = t } }

// Load reads a YAML scenario file from path and applies opts over it.
func Load(path string, opts ...Option) (Scenario, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s, nil
}

// New builds a Simulatable from the Defaults scenario overridden by opts,
// without reading a file. Useful for CLI flag-only invocations.
func New(opts ...Option) edynamics.Simulatable {
	s := Defaults()
	for _, opt := range opts {
		opt(&s)
	}
	return s.Build()
}

// Build constructs the Simulatable described by s. An unrecognized Kind
// falls back to the dipole scenario.
func (s Scenario) Build() edynamics.Simulatable {
	switch s.Kind {
	case "charge":
		return edynamics.NewChargeSimulation()
	default:
		sim := edynamics.NewDipoleSimulation(s.Mass1, s.Mass2, s.Charge1, s.Charge2)
		for i := range sim.Dipoles {
			sim.Dipoles[i].Offset = s.Offset
		}
		return sim
	}
}
