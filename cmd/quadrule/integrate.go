package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gaussquad/quadrature"
	"github.com/spf13/cobra"
)

func newIntegrateCmd(a *app) *cobra.Command {
	var (
		build buildFlags
		order int
	)
	cmd := &cobra.Command{
		Use:   "integrate FUNCTION",
		Short: "Integrate a built-in function (" + strings.Join(functionNames(), ", ") + ")",
		Long: "Integrate a built-in function with a Gauss rule.\n\n" +
			"Legendre families integrate FUNCTION over [lower, upper] (default [-1, 1]);\n" +
			"hermite integrates FUNCTION(x)·exp(-x²) over the real line.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookupFunction(args[0])
			if err != nil {
				return err
			}
			fam, err := quadrature.ParseFamily(build.family)
			if err != nil {
				return err
			}
			f, err := a.factory()
			if err != nil {
				return err
			}
			in, err := f.Integrator(fam, order, build.options(cmd)...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.17g\n", in.Integrate(fn))

			return nil
		},
	}
	build.register(cmd)
	cmd.Flags().IntVarP(&order, "order", "n", 10, "rule order")

	return cmd
}
