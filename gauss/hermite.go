// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/gaussquad/numeric"

// Normalized Hermite seeds.
const (
	hermiteH0 = 0.75112554446494248286 // π^(-1/4)
	hermiteH1 = 1.06225193202719691448 // √2 · π^(-1/4)
)

const hermiteUlps = 1

// NewHermite returns a cache of Gauss–Hermite rules in float64, for
// integrals of f(x)·exp(-x²) over the whole real line.
func NewHermite(opts ...Option) *Cache[float64] {
	var f numeric.Float64

	return NewCache[float64](NameHermite, f, HermiteRule[float64](f, hermiteUlps), opts...)
}

// HermiteRule returns the Gauss–Hermite ComputeFunc over field.
//
// The recurrence is that of the orthonormal Hermite functions:
//
//	H_0(x) = π^(-1/4), H_1(x) = √2 π^(-1/4) x
//	H_{j+1}(x) = √(2/(j+1)) x H_j(x) - √(j/(j+1)) H_{j-1}(x)
//
// Weight of root c: w = 2/d², d = √(2n) H_{n-1}(c). The roots are unbounded,
// so the smallest one is bracketed from -√(2(n-1)), which lies below every
// root of H_n.
func HermiteRule[V any](field numeric.Field[V], ulps int64) ComputeFunc[V] {
	f := field
	two := f.FromInt(2)
	h0, h1 := f.FromFloat64(hermiteH0), f.FromFloat64(hermiteH1)

	// sm(j) = √(j/(j+1))
	sm := func(j int) V {
		return f.Sqrt(f.Quo(f.FromInt(int64(j)), f.FromInt(int64(j+1))))
	}
	// d(n, h) = √(2n) h
	scaled := func(n int, h V) V {
		return f.Mul(f.Sqrt(f.FromInt(int64(2*n))), h)
	}

	rec := recurrence[V]{
		field: f,
		ulps:  f.FromInt(ulps),
		eval: func(n int) func(x V) (V, V) {
			// coef[j] = {√(2/(j+1)), √(j/(j+1))}
			coef := make([][2]V, n)
			for j := 1; j < n; j++ {
				coef[j] = [2]V{f.Sqrt(f.Quo(two, f.FromInt(int64(j+1)))), sm(j)}
			}

			return func(x V) (V, V) {
				hm, h := h0, f.Mul(h1, x)
				for j := 1; j < n; j++ {
					next := f.Sub(f.Mul(f.Mul(coef[j][0], x), h), f.Mul(coef[j][1], hm))
					hm, h = h, next
				}

				return h, hm
			}
		},
		lower: func(n int) V {
			return f.Neg(f.Sqrt(f.FromInt(int64(2 * (n - 1)))))
		},
		weight: func(n int, _, _, hnm1 V) V {
			d := scaled(n, hnm1)

			return f.Quo(two, f.Mul(d, d))
		},
		middle: func(n int) V {
			// H_{n-1}(0) = H_0 · Π over odd j < n of -√(j/(j+1))
			hm := h0
			for j := 1; j < n; j += 2 {
				hm = f.Neg(f.Mul(sm(j), hm))
			}
			d := scaled(n, hm)

			return f.Quo(two, f.Mul(d, d))
		},
	}

	return rec.compute()
}
