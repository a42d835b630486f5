package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/gaussquad/quadrature"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const maxParallelOrders = 4

var (
	errExactInterval = errors.New("--exact is only available on the natural interval")
	errFormat        = errors.New("--format must be table, json or yaml")
)

// ruleOutput is one printed rule.
type ruleOutput struct {
	Family   string               `json:"family" yaml:"family"`
	Order    int                  `json:"order" yaml:"order"`
	Interval *quadrature.Interval `json:"interval,omitempty" yaml:"interval,omitempty"`
	Nodes    []string             `json:"nodes" yaml:"nodes"`
	Weights  []string             `json:"weights" yaml:"weights"`
}

func newRuleCmd(a *app) *cobra.Command {
	var (
		build  buildFlags
		orders []int
		format string
		exact  bool
	)
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Print the nodes and weights of one or more rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("%q: %w", format, errFormat)
			}
			fam, err := quadrature.ParseFamily(build.family)
			if err != nil {
				return err
			}
			opts := build.options(cmd)
			if exact && len(opts) > 0 {
				return errExactInterval
			}
			f, err := a.factory()
			if err != nil {
				return err
			}

			// Orders share the factory's cache; the cache serializes the
			// actual computation, later orders then reuse lower ones.
			rules := make([]ruleOutput, len(orders))
			var g errgroup.Group
			g.SetLimit(maxParallelOrders)
			for i, n := range orders {
				i, n := i, n
				g.Go(func() error {
					out, err := buildRule(f, fam, n, exact, opts)
					if err != nil {
						return err
					}
					if len(opts) > 0 {
						iv := quadrature.Interval{Lower: build.lower, Upper: build.upper}
						out.Interval = &iv
					}
					rules[i] = out

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			return writeRules(cmd.OutOrStdout(), format, rules)
		},
	}
	build.register(cmd)
	cmd.Flags().IntSliceVarP(&orders, "order", "n", []int{5}, "rule order(s), comma separated")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "output format: table, json, yaml")
	cmd.Flags().BoolVar(&exact, "exact", false, "print every computed digit (decimal digits for legendre-high-precision)")

	return cmd
}

func buildRule(f *quadrature.Factory, fam quadrature.Family, order int, exact bool, opts []quadrature.Option) (ruleOutput, error) {
	out := ruleOutput{Family: fam.String(), Order: order}
	if exact {
		nodes, weights, err := f.ExactText(fam, order)
		if err != nil {
			return out, err
		}
		out.Nodes, out.Weights = nodes, weights

		return out, nil
	}

	in, err := f.Integrator(fam, order, opts...)
	if err != nil {
		return out, err
	}
	r := in.Rule()
	out.Nodes = make([]string, r.Len())
	out.Weights = make([]string, r.Len())
	for i := range r.Nodes {
		out.Nodes[i] = strconv.FormatFloat(r.Nodes[i], 'g', 17, 64)
		out.Weights[i] = strconv.FormatFloat(r.Weights[i], 'g', 17, 64)
	}

	return out, nil
}

func writeRules(w io.Writer, format string, rules []ruleOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rules)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rules); err != nil {
			return err
		}

		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for k, r := range rules {
			if k > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "# %s order %d", r.Family, r.Order)
			if r.Interval != nil {
				fmt.Fprintf(tw, " on [%g, %g]", r.Interval.Lower, r.Interval.Upper)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "i\tnode\tweight")
			for i := range r.Nodes {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i, r.Nodes[i], r.Weights[i])
			}
		}

		return tw.Flush()
	}

	return fmt.Errorf("%q: %w", format, errFormat)
}
