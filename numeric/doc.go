// Package numeric defines the small arithmetic surface that quadrature rule
// generation needs from a number type, plus two implementations of it.
//
// 🚀 Why a trait?
//
//	The same root-isolation algorithm runs on machine doubles and on
//	arbitrary-precision decimals. Instead of duplicating the algorithm, the
//	solver is written once against Field[V] and instantiated with:
//	  • Float64 — float64 arithmetic, ulp = gap to the next larger double
//	  • Decimal — *apd.Decimal arithmetic under an explicit precision and
//	    rounding context, ulp = one unit in the last kept digit
//
// ✨ Guarantees:
//   - Every operation returns a fresh value; inputs are never mutated, so
//     values may be shared freely between goroutines once computed.
//   - Ulp is strictly positive for every finite input, which is what makes
//     an ulp-bounded bisection terminate.
//
// ⚙️ Usage:
//
//	f := numeric.NewDecimal(50, apd.RoundHalfEven)
//	half := f.Quo(f.FromInt(1), f.FromInt(2))
//	fmt.Println(f.Format(half)) // 0.5
package numeric
