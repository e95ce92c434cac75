// Package main implements tracelog, a CLI for tracing nested execution to
// a text stream and inspecting the traces it leaves behind.
package main

import (
	"fmt"
	"os"

	"tracelog/cmd"
)

// main is the entry point of the CLI application
func main() {
	cmd.SetVersionInfo(Version, Commit, Date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
