package main

import (
	"fmt"

	"github.com/katalvlaran/gaussquad/quadrature"
	"github.com/spf13/cobra"
)

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List rule families and their natural intervals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, fam := range quadrature.Families() {
				iv := fam.NaturalInterval()
				fmt.Fprintf(out, "%-24s [%g, %g]\n", fam, iv.Lower, iv.Upper)
			}

			return nil
		},
	}
}
