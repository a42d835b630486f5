// SPDX-License-Identifier: MIT

package numeric

// Field is the arithmetic a rule family performs on its number type V.
//
// Implementations must be safe for concurrent use and must not mutate their
// arguments. Values returned by one call may be passed back as arguments to
// any other call on the same Field.
type Field[V any] interface {
	// FromInt converts a small integer exactly.
	FromInt(i int64) V
	// FromFloat64 converts x, rounding to the field's precision if needed.
	FromFloat64(x float64) V

	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V
	Quo(a, b V) V
	Neg(a V) V
	Sqrt(a V) V

	// Cmp returns -1, 0 or +1 depending on whether a < b, a == b or a > b.
	Cmp(a, b V) int
	// Sign returns -1, 0 or +1 depending on the sign of a.
	Sign(a V) int

	// Ulp returns the distance between a and the next representable value of
	// larger magnitude. It is strictly positive.
	Ulp(a V) V

	// Copy returns a value equal to a that shares no storage with it.
	Copy(a V) V
	// Float64 returns the nearest machine double.
	Float64(a V) float64
	// Format renders a with every significant digit the field keeps.
	Format(a V) string
}
