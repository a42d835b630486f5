// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is the Field of arbitrary-precision decimals. Every arithmetic
// result is rounded to the configured number of significant digits with the
// configured rounding mode.
type Decimal struct {
	ctx *apd.Context
}

var _ Field[*apd.Decimal] = Decimal{}

// NewDecimal returns a decimal field keeping precision significant digits.
// It panics if precision is zero (programmer error).
func NewDecimal(precision uint32, rounding apd.Rounder) Decimal {
	if precision == 0 {
		panic("numeric: NewDecimal: precision must be > 0")
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = rounding

	return Decimal{ctx: ctx}
}

// Precision returns the number of significant digits kept by the field.
func (d Decimal) Precision() uint32 { return d.ctx.Precision }

// Rounding returns the rounding mode applied to every result.
func (d Decimal) Rounding() apd.Rounder { return d.ctx.Rounding }

func (d Decimal) FromInt(i int64) *apd.Decimal {
	return apd.New(i, 0)
}

func (d Decimal) FromFloat64(x float64) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := z.SetFloat64(x); err != nil {
		panic(fmt.Sprintf("numeric: FromFloat64(%g): %v", x, err))
	}
	must(d.ctx.Round(z, z))

	return z
}

func (d Decimal) Add(a, b *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	must(d.ctx.Add(z, a, b))

	return z
}

func (d Decimal) Sub(a, b *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	must(d.ctx.Sub(z, a, b))

	return z
}

func (d Decimal) Mul(a, b *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	must(d.ctx.Mul(z, a, b))

	return z
}

// Quo panics on division by zero; the rule solvers never divide by a value
// that can vanish.
func (d Decimal) Quo(a, b *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	must(d.ctx.Quo(z, a, b))

	return z
}

func (d Decimal) Neg(a *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	must(d.ctx.Neg(z, a))

	return z
}

func (d Decimal) Sqrt(a *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	must(d.ctx.Sqrt(z, a))

	return z
}

func (d Decimal) Cmp(a, b *apd.Decimal) int { return a.Cmp(b) }

func (d Decimal) Sign(a *apd.Decimal) int { return a.Sign() }

// Ulp returns one unit in the last of the Precision() significant digits of a,
// i.e. 10^(adjusted exponent - precision + 1).
func (d Decimal) Ulp(a *apd.Decimal) *apd.Decimal {
	exp := int64(a.Exponent) + a.NumDigits() - int64(d.ctx.Precision)

	return apd.New(1, int32(exp))
}

func (d Decimal) Copy(a *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(a)
}

// Float64 returns the nearest double. Values produced by the solvers are
// always within double range.
func (d Decimal) Float64(a *apd.Decimal) float64 {
	f, err := a.Float64()
	if err != nil {
		panic(fmt.Sprintf("numeric: Float64(%s): %v", a, err))
	}

	return f
}

func (d Decimal) Format(a *apd.Decimal) string {
	return a.Text('f')
}

// must panics on an apd error. Conditions such as Inexact or Rounded are
// expected and ignored; errors only arise from trapped conditions.
func must(_ apd.Condition, err error) {
	if err != nil {
		panic("numeric: decimal operation failed: " + err.Error())
	}
}
