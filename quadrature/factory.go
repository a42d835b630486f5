// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/gaussquad/gauss"
	"github.com/katalvlaran/gaussquad/integrator"
	"github.com/katalvlaran/gaussquad/numeric"
)

// Factory owns one long-lived cache per family and turns cached rules into
// integrators. It is safe for concurrent use.
type Factory struct {
	legendre   *gauss.Cache[float64]
	legendreHP *gauss.Cache[*apd.Decimal]
	hermite    *gauss.Cache[float64]
}

// NewFactory builds a Factory with empty caches. opts are passed to every
// cache (logger) and to the high-precision family (precision, rounding).
func NewFactory(opts ...gauss.Option) *Factory {
	return &Factory{
		legendre:   gauss.NewLegendre(opts...),
		legendreHP: gauss.NewLegendreHighPrecision(opts...),
		hermite:    gauss.NewHermite(opts...),
	}
}

var defaultFactory = sync.OnceValue(func() *Factory { return NewFactory() })

// Default returns the process-wide Factory used by New.
func Default() *Factory { return defaultFactory() }

// New builds an integrator from the Default factory.
func New(family Family, order int, opts ...Option) (integrator.Integrator, error) {
	return Default().Integrator(family, order, opts...)
}

// Rule returns a copy of the family's rule of the given order on its
// natural interval.
func (f *Factory) Rule(family Family, order int) (gauss.Rule, error) {
	if order < 1 {
		return gauss.Rule{}, fmt.Errorf("quadrature: %s order %d: %w", family, order, ErrInvalidOrder)
	}
	switch family {
	case Legendre:
		return f.legendre.Rule(order)
	case LegendreHighPrecision:
		return f.legendreHP.Rule(order)
	case Hermite:
		return f.hermite.Rule(order)
	}

	return gauss.Rule{}, fmt.Errorf("quadrature: %s: %w", family, ErrUnknownFamily)
}

// ExactText returns the rule of the given order with every digit the family
// computes: 34 significant digits (or the configured precision) for
// LegendreHighPrecision, shortest round-trip float64 text otherwise.
func (f *Factory) ExactText(family Family, order int) (nodes, weights []string, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("quadrature: %s order %d: %w", family, order, ErrInvalidOrder)
	}
	if family == LegendreHighPrecision {
		dn, dw, err := f.legendreHP.Exact(order)
		if err != nil {
			return nil, nil, err
		}

		return decimalText(dn), decimalText(dw), nil
	}

	r, err := f.Rule(family, order)
	if err != nil {
		return nil, nil, err
	}

	return floatText(r.Nodes), floatText(r.Weights), nil
}

// Integrator returns an integrator for the family's rule of the given order.
// With WithInterval the rule is mapped affinely onto that interval; Hermite
// rules yield a Symmetric integrator and reject intervals.
//
// Errors: ErrInvalidOrder, ErrUnknownFamily, ErrInvalidInterval,
// ErrIntervalUnsupported, plus anything the underlying cache reports.
func (f *Factory) Integrator(family Family, order int, opts ...Option) (integrator.Integrator, error) {
	if order < 1 {
		return nil, fmt.Errorf("quadrature: %s order %d: %w", family, order, ErrInvalidOrder)
	}
	if !family.valid() {
		return nil, fmt.Errorf("quadrature: %s: %w", family, ErrUnknownFamily)
	}

	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval != nil {
		if family == Hermite {
			return nil, fmt.Errorf("quadrature: %s: %w", family, ErrIntervalUnsupported)
		}
		if err := o.interval.Validate(); err != nil {
			return nil, fmt.Errorf("quadrature: %w", err)
		}
	}

	r, err := f.Rule(family, order)
	if err != nil {
		return nil, err
	}

	if family == Hermite {
		s, err := integrator.SymmetricFromRule(r)
		if err != nil {
			return nil, err
		}

		return s, nil
	}
	if o.interval != nil {
		r = o.interval.Transform(r)
	}
	g, err := integrator.FromRule(r)
	if err != nil {
		return nil, err
	}

	return g, nil
}

func decimalText(xs []*apd.Decimal) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.Text('f')
	}

	return out
}

func floatText(xs []float64) []string {
	var f numeric.Float64
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = f.Format(x)
	}

	return out
}
