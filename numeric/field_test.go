package numeric_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/gaussquad/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUlp_KnownValues checks Ulp against hand-derived gaps.
func TestUlp_KnownValues(t *testing.T) {
	assert.Equal(t, math.Pow(2, -52), numeric.Ulp(1), "ulp(1) is machine epsilon")
	assert.Equal(t, math.Pow(2, -52), numeric.Ulp(-1), "ulp is symmetric")
	assert.Equal(t, math.Pow(2, -53), numeric.Ulp(0.75), "ulp halves below 1")
	assert.Equal(t, math.SmallestNonzeroFloat64, numeric.Ulp(0), "ulp(0) is the smallest subnormal")
	assert.True(t, math.IsInf(numeric.Ulp(math.Inf(-1)), 1), "ulp(±Inf) is +Inf")
}

// TestFloat64_Arithmetic exercises the double field end to end.
func TestFloat64_Arithmetic(t *testing.T) {
	var f numeric.Float64

	x := f.Quo(f.Add(f.FromInt(1), f.FromFloat64(0.5)), f.FromInt(3))
	assert.Equal(t, 0.5, x)
	assert.Equal(t, -0.5, f.Neg(x))
	assert.Equal(t, 0.25, f.Mul(x, x))
	assert.Equal(t, 0.0, f.Sub(x, x))
	assert.Equal(t, 3.0, f.Sqrt(9))
	assert.Equal(t, -1, f.Cmp(1, 2))
	assert.Equal(t, 1, f.Cmp(2, 1))
	assert.Equal(t, 0, f.Cmp(2, 2))
	assert.Equal(t, -1, f.Sign(-3))
	assert.Equal(t, 0, f.Sign(math.Copysign(0, -1)), "negative zero has sign 0")
	assert.Equal(t, "0.1", f.Format(0.1))
	assert.Equal(t, numeric.Ulp(0.3), f.Ulp(0.3))
}

// TestDecimal_Arithmetic verifies rounding to the configured precision.
func TestDecimal_Arithmetic(t *testing.T) {
	d := numeric.NewDecimal(10, apd.RoundHalfEven)
	require.Equal(t, uint32(10), d.Precision())
	require.Equal(t, apd.RoundHalfEven, d.Rounding())

	third := d.Quo(d.FromInt(1), d.FromInt(3))
	assert.Equal(t, "0.3333333333", d.Format(third), "1/3 keeps 10 digits")

	sum := d.Add(third, d.FromInt(2))
	assert.Equal(t, "2.333333333", d.Format(sum), "sum is rounded to 10 significant digits")

	assert.Equal(t, 0, d.Cmp(d.Sqrt(d.FromInt(4)), d.FromInt(2)), "sqrt(4) = 2")
	assert.Equal(t, "-2", d.Format(d.Neg(d.FromInt(2))))
	assert.Equal(t, "6", d.Format(d.Mul(d.FromInt(2), d.FromInt(3))))
	assert.Equal(t, "-1", d.Format(d.Sub(d.FromInt(2), d.FromInt(3))))
	assert.Equal(t, -1, d.Cmp(third, sum))
	assert.Equal(t, 1, d.Sign(third))
	assert.InDelta(t, 1.0/3, d.Float64(third), 1e-10)
	assert.Equal(t, 0.5, d.Float64(d.FromFloat64(0.5)))
}

// TestDecimal_Ulp checks the last-digit unit for several magnitudes.
func TestDecimal_Ulp(t *testing.T) {
	d := numeric.NewDecimal(10, apd.RoundHalfEven)

	third := d.Quo(d.FromInt(1), d.FromInt(3)) // 0.3333333333
	assert.Equal(t, 0, d.Ulp(third).Cmp(apd.New(1, -10)), "ulp(0.333…) = 1e-10")

	sum := d.Add(third, d.FromInt(2)) // 2.333333333
	assert.Equal(t, 0, d.Ulp(sum).Cmp(apd.New(1, -9)), "ulp(2.33…) = 1e-9")

	assert.Equal(t, 0, d.Ulp(d.FromInt(5)).Cmp(apd.New(1, -9)), "ulp(5) is measured at full precision")
	assert.Equal(t, 1, d.Ulp(d.Neg(third)).Sign(), "ulp is positive for negative input")
}

// TestDecimal_CopyIsIndependent ensures Copy shares no storage.
func TestDecimal_CopyIsIndependent(t *testing.T) {
	d := numeric.NewDecimal(20, apd.RoundHalfUp)
	a := d.FromInt(7)
	b := d.Copy(a)
	b.SetInt64(9)

	assert.Equal(t, "7", d.Format(a), "mutating a copy must not change the original")
}

// TestNewDecimal_ZeroPrecisionPanics guards the programmer-error path.
func TestNewDecimal_ZeroPrecisionPanics(t *testing.T) {
	assert.Panics(t, func() { numeric.NewDecimal(0, apd.RoundHalfEven) })
}
