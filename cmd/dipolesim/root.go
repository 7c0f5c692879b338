package main

import "github.com/spf13/cobra"

// rootCmd assembles the dipolesim command tree. Each invocation gets a fresh
// *cobra.Command so tests can exercise Execute without global state leaking
// between cases.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dipolesim",
		Short: "Simulate point-charge and rigid-dipole electrodynamics",
		Long: "dipolesim integrates a small population of point charges or rigid electric\n" +
			"dipoles under Coulomb's law and reports the observables that should stay\n" +
			"conserved along the way.",
		SilenceUsage: true,
	}
	root.AddCommand(runCmd())
	root.AddCommand(probeCmd())
	return root
}
