package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symplect/invariants"
	"github.com/katalvlaran/symplect/report"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "construct the polar graph and list its lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSpace()
		if err != nil {
			return err
		}
		g := s.Graph()

		r := report.NewRecord()
		_ = r.Set("order", flagOrder)
		_ = r.Set("dim", flagDim)
		_ = r.Set("vertices", g.N())
		_ = r.Set("edges", g.EdgeCount())
		if k, ok := invariants.IsRegular(g); ok {
			_ = r.Set("degree", k)
		}
		_ = r.Set("lines", report.NewLineTable(s.Lines()))

		return emit(r)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
