package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhartert/yass/internal/dimacs"
	"github.com/rhartert/yass/internal/sat"
)

var (
	flagGzip       bool
	flagProof      string
	flagCPUProfile string
	flagMemProfile string
)

var solveCmd = &cobra.Command{
	Use:   "solve <instance.cnf>",
	Short: "run the solver on a DIMACS CNF instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagGzip, "gzip", false, "the instance file is gzip-compressed")
	solveCmd.Flags().StringVar(&flagProof, "proof", "", "write a DRAT-like clause log to this file")
	solveCmd.Flags().StringVar(&flagCPUProfile, "cpuprofile", "", "write a pprof CPU profile to this file")
	solveCmd.Flags().StringVar(&flagMemProfile, "memprofile", "", "write a pprof heap profile to this file")
}

// recordingBuilder feeds clauses to a solver while optionally mirroring them
// into a proof log; it is the dimacs.Builder passed to dimacs.LoadFile.
type recordingBuilder struct {
	solver *sat.Solver
	proof  *dimacs.ProofWriter
}

func (b *recordingBuilder) AddVariable() int {
	return b.solver.AddVariable()
}

func (b *recordingBuilder) AddClause(lits []sat.Literal) error {
	if b.proof != nil {
		if err := b.proof.AddClause(lits); err != nil {
			return fmt.Errorf("writing proof: %w", err)
		}
	}
	return b.solver.AddClause(lits)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	solver := sat.NewDefaultSolver()
	b := &recordingBuilder{solver: solver}

	if flagProof != "" {
		f, err := os.Create(flagProof)
		if err != nil {
			return fmt.Errorf("creating proof file: %w", err)
		}
		defer f.Close()
		pw := dimacs.NewProofWriter(f)
		defer pw.Flush()
		b.proof = pw
	}

	if err := dimacs.LoadFile(args[0], flagGzip, b); err != nil {
		return fmt.Errorf("loading instance: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "c variables: %d\n", solver.NumVariables())
	fmt.Fprintf(cmd.OutOrStdout(), "c clauses:   %d\n", solver.NumClauses())

	start := time.Now()
	status := solver.Search()
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "c time (sec):  %f\n", elapsed.Seconds())
	fmt.Fprintf(cmd.OutOrStdout(), "c decisions:   %d\n", solver.TotalDecisions)
	fmt.Fprintf(cmd.OutOrStdout(), "c conflicts:   %d\n", solver.TotalConflicts)
	fmt.Fprintf(cmd.OutOrStdout(), "c status:      %s\n", status)

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}
