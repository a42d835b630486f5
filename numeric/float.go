// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
)

// Float64 is the Field of machine doubles. The zero value is ready to use.
type Float64 struct{}

var _ Field[float64] = Float64{}

func (Float64) FromInt(i int64) float64 { return float64(i) }
func (Float64) FromFloat64(x float64) float64 { return x }
func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Quo(a, b float64) float64 { return a / b }
func (Float64) Neg(a float64) float64 { return -a }
func (Float64) Sqrt(a float64) float64 { return math.Sqrt(a) }
func (Float64) Copy(a float64) float64 { return a }
func (Float64) Float64(a float64) float64 { return a }

// Cmp compares a and b. NaN is not expected and compares as equal.
func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sign reports the sign of a; both zeros report 0.
func (Float64) Sign(a float64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

// Ulp returns the gap between |a| and the next larger double.
func (Float64) Ulp(a float64) float64 {
	return Ulp(a)
}

// Format uses the shortest representation that round-trips.
func (Float64) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Ulp returns the gap between |x| and the next larger double, the Go rendering
// of the classic Math.ulp. Ulp(0) is the smallest subnormal.
func Ulp(x float64) float64 {
	ax := math.Abs(x)
	if math.IsInf(ax, 0) {
		return math.Inf(1)
	}

	return math.Nextafter(ax, math.Inf(1)) - ax
}
