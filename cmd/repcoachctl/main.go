// Command repcoachctl holds the operational tasks of the RepCoach API:
// connectivity checks, development seed data and trash maintenance.
package main

import (
	"fmt"
	"os"
)

// Set by ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
