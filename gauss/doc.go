// Package gauss generates and memoizes Gaussian quadrature rules.
//
// 🚀 What is a Gauss rule?
//
//	An order-n rule is n nodes x_i and weights w_i such that
//	  ∫ f(x) ω(x) dx ≈ Σ w_i f(x_i)
//	is exact for every polynomial f of degree ≤ 2n-1. The nodes are the
//	roots of the degree-n orthogonal polynomial for the weight ω.
//
// ✨ Families:
//   - Legendre              — ω(x) = 1 on [-1, 1], float64
//   - LegendreHighPrecision — same rule computed in apd decimals
//     (34 digits, half-even by default), rounded to float64 on output
//   - Hermite               — ω(x) = exp(-x²) on (-∞, ∞), float64
//
// ⚙️ How rules are built:
//
//  1. Roots of consecutive orders interlace, so each root of order n is
//     bracketed by two neighbouring roots of order n-1 (the family's
//     lower bound stands in for the leftmost one).
//  2. Each bracket is bisected on the sign of P_n, evaluated with the
//     family's three-term recurrence, until its width drops to a few ulps.
//  3. Only the negative half is searched; the rule is mirrored about 0 and
//     the middle node of an odd order is set to 0 with a closed-form weight.
//
// 🔒 Caching & concurrency:
//
//	Cache[V] stores each order once for its lifetime. A miss on order n
//	fills orders lowest-missing..n under one mutex, so a rule is computed
//	at most once and never observed half-built. Every returned slice is a
//	copy; callers may modify it freely.
//
// Usage:
//
//	legendre := gauss.NewLegendre()
//	r, err := legendre.Rule(5)
//	if err != nil {
//		// gauss.ErrInvalidOrder
//	}
//	fmt.Println(r.Nodes, r.Weights)
//
// Complexity: building order n alone costs O(n² · log(1/ulp)) arithmetic
// operations; a cold miss pays that for every order up to n. A warm read is
// an O(n) copy.
package gauss
