package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symplect/polar"
	"github.com/katalvlaran/symplect/report"
)

// Shared scalar parameters. Every analysis is parameterized by the field
// order, the ambient dimension, and a float tolerance.
var (
	flagOrder     int
	flagDim       int
	flagTolerance float64
)

var rootCmd = &cobra.Command{
	Use:   "symplect",
	Short: "symplectic polar-space graphs and their invariants",
	Long: `symplect builds the collinearity graph of the symplectic polar space
W(dim-1, order) over GF(order) and computes its combinatorial, group-
theoretic and topological invariants. Each subcommand emits one YAML
record on stdout.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagOrder, "order", polar.DefaultOrder, "field order q (small prime)")
	pf.IntVar(&flagDim, "dim", polar.DefaultDimension, "ambient dimension (even)")
	pf.Float64Var(&flagTolerance, "tolerance", 0, "float comparison tolerance (0 = default)")
}

// buildSpace constructs the polar space from the shared flags.
func buildSpace() (*polar.Space, error) {
	return polar.Build(polar.WithOrder(flagOrder), polar.WithDimension(flagDim))
}

// emit writes the record as one YAML document on stdout.
func emit(r *report.Record) error {
	return r.EncodeYAML(os.Stdout)
}
