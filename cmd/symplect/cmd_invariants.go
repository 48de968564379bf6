package main

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symplect/invariants"
	"github.com/katalvlaran/symplect/report"
)

var invariantsCmd = &cobra.Command{
	Use:   "invariants",
	Short: "degree, strongly-regular parameters, spectrum, Euler characteristic",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSpace()
		if err != nil {
			return err
		}
		g := s.Graph()

		r := report.NewRecord()
		_ = r.Set("order", flagOrder)
		_ = r.Set("vertices", g.N())
		if k, ok := invariants.IsRegular(g); ok {
			_ = r.Set("degree", k)
		}

		if srg, srgErr := invariants.SRGParameters(g); srgErr == nil {
			_ = r.Set("srg", []int{srg.N, srg.K, srg.Lambda, srg.Mu})
		} else {
			slog.Warn("graph is not strongly regular", slog.String("reason", srgErr.Error()))
		}

		opts := invariants.Options{Tolerance: flagTolerance, Logger: slog.Default()}
		eigs, err := invariants.Eigenvalues(g, opts)
		if err != nil {
			return err
		}
		spectrum := report.NewRecord()
		for _, e := range eigs {
			row := report.NewRecord()
			_ = row.Set("value", e.Value)
			_ = row.Set("multiplicity", e.Multiplicity)
			_ = spectrum.Set(formatEigKey(e.Value), row)
		}
		_ = r.Set("spectrum", spectrum)

		counts := []int{g.N(), g.EdgeCount(), len(g.Triangles())}
		_ = r.Set("euler", invariants.EulerCharacteristic(counts))

		return emit(r)
	},
}

// formatEigKey renders a rounded eigenvalue as a stable record key.
func formatEigKey(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func init() {
	rootCmd.AddCommand(invariantsCmd)
}
