// Command ikernel exposes the SAT core and symbolic algebra engine as a
// small CLI, primarily for ad hoc manual testing and profiling.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ikernel",
	Short: "a non-learning SAT solver and symbolic algebra engine",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simplifyCmd)
}
