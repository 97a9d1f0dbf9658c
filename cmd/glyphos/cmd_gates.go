package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/glyphos/gate"
	"github.com/katalvlaran/glyphos/kernel"
)

func newGatesCmd(a *app) *cobra.Command {
	var (
		freqs  []float64
		scales []float64
		nu0    float64
		detail bool
	)

	cmd := &cobra.Command{
		Use:   "gates",
		Short: "Evaluate the GATE11..GATE44 chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, r := range gate.Chain(freqs, scales, nu0) {
				a.logger.Debug("gate", zap.String("id", r.GateID), zap.Bool("eligible", r.Eligible))
				fmt.Fprintln(out, r)
				if !detail {
					continue
				}
				keys := make([]string, 0, len(r.Details))
				for k := range r.Details {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "  %s=%v\n", k, r.Details[k])
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&freqs, "freq", []float64{kernel.F432, kernel.F838776}, "Frequencies ν in Hz")
	cmd.Flags().Float64SliceVar(&scales, "scale", []float64{1.0, 1.618}, "Scales a")
	cmd.Flags().Float64Var(&nu0, "nu0", kernel.F432, "Reference frequency ν0 in Hz")
	cmd.Flags().BoolVar(&detail, "details", false, "Print diagnostic details")

	return cmd
}
