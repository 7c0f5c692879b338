package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arkforge/dipolesim/edynamics"
	"github.com/arkforge/dipolesim/math/lin"
	"github.com/arkforge/dipolesim/scenario"
)

func probeCmd() *cobra.Command {
	var (
		scenarioPath string
		startX       float64
		startY       float64
		startZ       float64
		stepLen      float64
		maxSteps     int
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Trace a field line from a starting point through a scenario's field",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s scenario.Scenario
			var err error
			if scenarioPath != "" {
				s, err = scenario.Load(scenarioPath)
				if err != nil {
					return err
				}
			} else {
				s = scenario.Defaults()
			}

			sim := s.Build()
			start := &lin.V3{X: startX, Y: startY, Z: startZ}
			points := edynamics.TraceFieldLine(sim, start, stepLen, maxSteps)

			p := message.NewPrinter(language.English)
			for i, pt := range points {
				p.Fprintf(cmd.OutOrStdout(), "%4d  %+8.4f %+8.4f %+8.4f\n", i, pt.X, pt.Y, pt.Z)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a YAML scenario file")
	cmd.Flags().Float64Var(&startX, "x", 1, "probe start x")
	cmd.Flags().Float64Var(&startY, "y", 0, "probe start y")
	cmd.Flags().Float64Var(&startZ, "z", 0, "probe start z")
	cmd.Flags().Float64Var(&stepLen, "step", 0.1, "field line step length")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 50, "maximum number of steps to trace")

	return cmd
}
