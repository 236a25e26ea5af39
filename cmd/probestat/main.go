// Package main provides the probestat CLI, which reports hash set probe lengths per collision
// resolution technique.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
