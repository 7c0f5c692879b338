// Command dipolesim drives the edynamics engine from a terminal: it loads a
// scenario, steps it forward, and reports the conserved observables a
// headless run would otherwise have no way to inspect.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
