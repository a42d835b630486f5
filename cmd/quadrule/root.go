package main

import (
	"errors"

	"github.com/katalvlaran/gaussquad/gauss"
	"github.com/katalvlaran/gaussquad/quadrature"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errZeroPrecision = errors.New("--precision must be > 0")

// app carries the persistent flags shared by every subcommand.
type app struct {
	verbose   bool
	precision uint32
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "quadrule",
		Short:         "Gaussian quadrature rules: Legendre, high-precision Legendre, Hermite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every computed rule order to stderr")
	root.PersistentFlags().Uint32Var(&a.precision, "precision", gauss.DefaultPrecision, "significant digits of the legendre-high-precision family")

	root.AddCommand(
		newFamiliesCmd(),
		newRuleCmd(a),
		newIntegrateCmd(a),
	)

	return root
}

// factory builds a Factory honouring the persistent flags.
func (a *app) factory() (*quadrature.Factory, error) {
	if a.precision == 0 {
		return nil, errZeroPrecision
	}
	logger := zap.NewNop()
	if a.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		logger = l
	}

	return quadrature.NewFactory(gauss.WithLogger(logger), gauss.WithPrecision(a.precision)), nil
}

// buildFlags are the rule-selection flags of rule and integrate.
type buildFlags struct {
	family string
	lower  float64
	upper  float64
}

func (b *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.family, "family", "f", quadrature.Legendre.String(), "rule family: legendre, legendre-high-precision (legendre-hp), hermite")
	cmd.Flags().Float64Var(&b.lower, "lower", -1, "lower bound of the integration interval (Legendre families)")
	cmd.Flags().Float64Var(&b.upper, "upper", 1, "upper bound of the integration interval (Legendre families)")
}

// options returns WithInterval only if a bound was set explicitly, so the
// natural interval stays untouched by default.
func (b *buildFlags) options(cmd *cobra.Command) []quadrature.Option {
	if cmd.Flags().Changed("lower") || cmd.Flags().Changed("upper") {
		return []quadrature.Option{quadrature.WithInterval(b.lower, b.upper)}
	}

	return nil
}
