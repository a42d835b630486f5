// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/gaussquad/numeric"
)

// Family names used for caches and log records.
const (
	NameLegendre              = "legendre"
	NameLegendreHighPrecision = "legendre-high-precision"
	NameHermite               = "hermite"
)

// Bisection tolerances, in units of Ulp(midpoint). The decimal family stops
// earlier because its last digits carry rounding noise from the recurrence.
const (
	legendreUlps              = 1
	legendreHighPrecisionUlps = 10
)

// NewLegendre returns a cache of Gauss–Legendre rules in float64, for
// integrals over [-1, 1] with unit weight.
func NewLegendre(opts ...Option) *Cache[float64] {
	var f numeric.Float64

	return NewCache[float64](NameLegendre, f, LegendreRule[float64](f, legendreUlps), opts...)
}

// NewLegendreHighPrecision returns a cache of Gauss–Legendre rules computed
// in decimal arithmetic (see WithPrecision, WithRounding) and rounded to
// float64 on the way out of Rule. Exact exposes the decimal values.
func NewLegendreHighPrecision(opts ...Option) *Cache[*apd.Decimal] {
	o := gatherOptions(opts)
	f := numeric.NewDecimal(o.precision, o.rounding)

	return NewCache[*apd.Decimal](NameLegendreHighPrecision, f, LegendreRule[*apd.Decimal](f, legendreHighPrecisionUlps), opts...)
}

// LegendreRule returns the Gauss–Legendre ComputeFunc over field, bisecting
// each root down to ulps units in the last place.
//
// Recurrence:
//
//	P_0(x) = 1, P_1(x) = x
//	(j+1) P_{j+1}(x) = (2j+1) x P_j(x) - j P_{j-1}(x)
//
// Weight of root c: w = 2(1-c²)/d², d = n (P_{n-1}(c) - c P_n(c)).
func LegendreRule[V any](field numeric.Field[V], ulps int64) ComputeFunc[V] {
	f := field
	one, two := f.FromInt(1), f.FromInt(2)

	rec := recurrence[V]{
		field: f,
		ulps:  f.FromInt(ulps),
		eval: func(n int) func(x V) (V, V) {
			// coef[j] = {2j+1, j, j+1}
			coef := make([][3]V, n)
			for j := 1; j < n; j++ {
				coef[j] = [3]V{f.FromInt(int64(2*j + 1)), f.FromInt(int64(j)), f.FromInt(int64(j + 1))}
			}

			return func(x V) (V, V) {
				pm, p := one, x
				for j := 1; j < n; j++ {
					next := f.Quo(f.Sub(f.Mul(f.Mul(coef[j][0], x), p), f.Mul(coef[j][1], pm)), coef[j][2])
					pm, p = p, next
				}

				return p, pm
			}
		},
		lower: func(int) V { return f.Neg(one) },
		weight: func(n int, c, pn, pnm1 V) V {
			d := f.Mul(f.FromInt(int64(n)), f.Sub(pnm1, f.Mul(c, pn)))

			return f.Quo(f.Mul(two, f.Sub(one, f.Mul(c, c))), f.Mul(d, d))
		},
		middle: func(n int) V {
			// P_{n-1}(0) = Π over odd j < n of -j/(j+1)
			pm := one
			for j := 1; j < n; j += 2 {
				pm = f.Quo(f.Mul(f.Neg(f.FromInt(int64(j))), pm), f.FromInt(int64(j+1)))
			}
			d := f.Mul(f.FromInt(int64(n)), pm)

			return f.Quo(two, f.Mul(d, d))
		},
	}

	return rec.compute()
}
