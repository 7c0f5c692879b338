package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arkforge/dipolesim/edynamics"
	"github.com/arkforge/dipolesim/scenario"
)

func runCmd() *cobra.Command {
	var (
		scenarioPath string
		kind         string
		mass1        float64
		mass2        float64
		charge1      float64
		charge2      float64
		offset       float64
		timeScale    float64
		steps        int
		dtMs         float64
		plot         bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a simulation forward and report its conserved observables",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []scenario.Option{
				scenario.Mass1(mass1),
				scenario.Mass2(mass2),
				scenario.Charge1(charge1),
				scenario.Charge2(charge2),
				scenario.OffsetAttr(offset),
				scenario.TimeScale(timeScale),
			}

			var s scenario.Scenario
			var err error
			if scenarioPath != "" {
				s, err = scenario.Load(scenarioPath, opts...)
				if err != nil {
					return err
				}
			} else {
				s = scenario.Defaults()
				for _, opt := range opts {
					opt(&s)
				}
				if kind != "" {
					s.Kind = kind
				}
			}

			store := edynamics.NewStore(s.Build())
			store.Dispatch(edynamics.TimeScaleMsg{Scale: s.TimeScale})

			p := message.NewPrinter(language.English)
			energy := make([]float64, 0, steps+1)
			energy = append(energy, store.Simulation().GetTotalEnergy())

			for i := 0; i < steps; i++ {
				store.Dispatch(edynamics.UpdateSimulation{DtMs: dtMs})
				energy = append(energy, store.Simulation().GetTotalEnergy())
			}

			sim := store.Simulation()
			p.Fprintf(cmd.OutOrStdout(), "steps=%d dt=%.4gms time_scale=%.2f\n", steps, dtMs, store.TimeScale())
			p.Fprintf(cmd.OutOrStdout(), "momentum=%v\n", sim.GetTotalMomentum())
			p.Fprintf(cmd.OutOrStdout(), "angular_momentum=%v\n", sim.GetTotalAngularMomentum())
			p.Fprintf(cmd.OutOrStdout(), "energy=%.6f (initial %.6f, drift %.4g%%)\n",
				energy[len(energy)-1], energy[0], 100*relDrift(energy[0], energy[len(energy)-1]))

			if plot && len(energy) > 1 {
				graph := asciigraph.Plot(energy, asciigraph.Height(12), asciigraph.Caption("total energy"))
				fmt.Fprintln(cmd.OutOrStdout(), graph)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a YAML scenario file")
	cmd.Flags().StringVar(&kind, "kind", "", "simulation kind when not loading a scenario file (charge|dipole)")
	cmd.Flags().Float64Var(&mass1, "mass1", 1, "mass of the first entity")
	cmd.Flags().Float64Var(&mass2, "mass2", 1, "mass of the second entity")
	cmd.Flags().Float64Var(&charge1, "charge1", 1, "charge of the first entity")
	cmd.Flags().Float64Var(&charge2, "charge2", 1, "charge of the second entity")
	cmd.Flags().Float64Var(&offset, "offset", 0.1, "dipole pole offset")
	cmd.Flags().Float64Var(&timeScale, "time-scale", 1, "time-scale multiplier applied to each tick")
	cmd.Flags().IntVar(&steps, "steps", 100, "number of ticks to run")
	cmd.Flags().Float64Var(&dtMs, "dt", 10, "tick size in milliseconds")
	cmd.Flags().BoolVar(&plot, "plot", false, "render a terminal sparkline of total energy over the run")

	return cmd
}

func relDrift(e0, e1 float64) float64 {
	if e0 == 0 {
		return 0
	}
	d := e1 - e0
	if d < 0 {
		d = -d
	}
	return d / absFloat(e0)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
