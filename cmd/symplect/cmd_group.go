package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symplect/autom"
	"github.com/katalvlaran/symplect/polar"
	"github.com/katalvlaran/symplect/report"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "discover the symplectic automorphism group and vertex orbits",
	Long: `group screens the transvection catalog against the symplectic form,
induces vertex permutations, closes them under composition, and reports
the group order together with the orbit/stabilizer split of vertex 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSpace()
		if err != nil {
			return err
		}
		omega, err := polar.Omega(s.Field(), s.Dim())
		if err != nil {
			return err
		}
		cands, err := autom.Transvections(s, omega)
		if err != nil {
			return err
		}
		gens, rejected, err := autom.Screen(cands, omega, s)
		if err != nil {
			return err
		}
		for _, rej := range rejected {
			slog.Debug("candidate rejected",
				slog.Int("index", rej.Index), slog.String("reason", rej.Reason.Error()))
		}
		grp, err := autom.Close(gens)
		if err != nil {
			return err
		}
		orbit, err := grp.Orbit([]int{0})
		if err != nil {
			return err
		}

		r := report.NewRecord()
		_ = r.Set("order", flagOrder)
		_ = r.Set("vertices", s.Graph().N())
		_ = r.Set("generators", len(gens))
		_ = r.Set("rejected", len(rejected))
		_ = r.Set("group_order", grp.Order())
		_ = r.Set("vertex_orbit", len(orbit.Orbit))
		_ = r.Set("vertex_stabilizer", orbit.StabilizerOrder)

		return emit(r)
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
