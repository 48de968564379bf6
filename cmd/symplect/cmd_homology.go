package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symplect/homology"
	"github.com/katalvlaran/symplect/report"
)

var flagModulus int

var homologyCmd = &cobra.Command{
	Use:   "homology",
	Short: "Betti numbers and fundamental group of the clique complex",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSpace()
		if err != nil {
			return err
		}
		c, err := homology.BuildComplex(s.Graph(), s.Lines())
		if err != nil {
			return err
		}
		betti, err := c.BettiNumbers(homology.Options{
			Tolerance: flagTolerance,
			Modulus:   flagModulus,
			Logger:    slog.Default(),
		})
		if err != nil {
			return err
		}
		pres, err := c.FundamentalGroup()
		if err != nil {
			return err
		}

		r := report.NewRecord()
		_ = r.Set("order", flagOrder)
		_ = r.Set("cells", c.Counts())
		_ = r.Set("betti", betti)
		_ = r.Set("euler", c.EulerCharacteristic())
		_ = r.Set("pi1_generators", pres.Rank())
		_ = r.Set("pi1_relators", len(pres.Relators))

		return emit(r)
	},
}

func init() {
	homologyCmd.Flags().IntVar(&flagModulus, "modulus", 0,
		"prime p for exact mod-p ranks (0 = float ranks with tolerance)")
	rootCmd.AddCommand(homologyCmd)
}
