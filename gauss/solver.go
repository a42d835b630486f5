// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/gaussquad/numeric"

// recurrence describes one orthogonal-polynomial family to the solver.
// All callbacks receive the order n of the rule being built.
type recurrence[V any] struct {
	field numeric.Field[V]

	// eval returns an evaluator of (P_n(x), P_{n-1}(x)) built from the
	// three-term recurrence. It is called once per order so coefficient
	// tables can be prepared up front.
	eval func(n int) func(x V) (pn, pnm1 V)

	// lower is the left end of the bracket of the smallest root.
	lower func(n int) V

	// weight returns the weight of root c given P_n(c) and P_{n-1}(c).
	weight func(n int, c, pn, pnm1 V) V

	// middle returns the weight of the root at 0 of an odd order, in closed
	// form. For n == 1 it is the weight of the single node.
	middle func(n int) V

	// ulps is the bisection tolerance in units of Ulp(midpoint).
	ulps V
}

// rule computes the order-n rule. The roots of P_n interlace those of
// P_{n-1}, so the i-th root lies in (previous[i-1], previous[i]) with the
// family's lower bound standing in for previous[-1]. Only the negative half
// is searched; each root c is mirrored to -c with the same weight.
func (r recurrence[V]) rule(n int, previous []V) (nodes, weights []V) {
	f := r.field
	nodes = make([]V, n)
	weights = make([]V, n)

	if n == 1 {
		nodes[0] = f.FromInt(0)
		weights[0] = r.middle(1)

		return nodes, weights
	}

	eval := r.eval(n)
	two := f.FromInt(2)
	half := n / 2

	for i := 0; i < half; i++ {
		a := r.lower(n)
		if i > 0 {
			a = previous[i-1]
		}
		b := previous[i]

		pa, _ := eval(a)
		c := f.Quo(f.Add(a, b), two)
		pc, pmc := eval(c)
		for f.Cmp(f.Sub(b, a), f.Mul(r.ulps, f.Ulp(c))) > 0 {
			if f.Sign(pa)*f.Sign(pc) <= 0 {
				b = c
			} else {
				a, pa = c, pc
			}
			c = f.Quo(f.Add(a, b), two)
			pc, pmc = eval(c)
		}

		w := r.weight(n, c, pc, pmc)
		nodes[i], weights[i] = c, w
		nodes[n-1-i], weights[n-1-i] = f.Neg(c), f.Copy(w)
	}

	// 0 is a root of every odd-order symmetric family. Sign-change bisection
	// cannot land on it reliably, so it is set directly.
	if n%2 == 1 {
		nodes[half] = f.FromInt(0)
		weights[half] = r.middle(n)
	}

	return nodes, weights
}

// compute adapts the recurrence to the Cache.
func (r recurrence[V]) compute() ComputeFunc[V] {
	return r.rule
}
