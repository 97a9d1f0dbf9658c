package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphos/kernel"
)

func newLadderCmd() *cobra.Command {
	var (
		f0   float64
		n, m int
	)

	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Evaluate the harmonic ladder f0·(π/π_φ)^n·φ^m",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := kernel.LadderRatio(kernel.Pi, kernel.Phi)
			fmt.Fprintf(cmd.OutOrStdout(), "f(%d,%d)=%.6f Hz  r=%.6f  bridge=%.6f Hz\n",
				n, m, kernel.HarmonicLadder(f0, n, m), r, kernel.Bridge())
			return nil
		},
	}
	cmd.Flags().Float64Var(&f0, "f0", kernel.F432, "Base frequency in Hz")
	cmd.Flags().IntVar(&n, "n", 0, "π/π_φ exponent")
	cmd.Flags().IntVar(&m, "m", 0, "φ exponent")

	return cmd
}
