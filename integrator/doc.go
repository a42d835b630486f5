// Package integrator applies a fixed quadrature rule to a function.
//
// Gauss evaluates Σ w_i f(x_i) with Kahan compensated summation, so the
// rounding error of the sum stays roughly independent of the node count.
// Symmetric assumes a rule mirrored about 0 and pairs f(x_i) with f(-x_i),
// halving the loop length and summing each pair before weighting.
//
// Both types copy their inputs and are immutable afterwards; a single value
// may be shared by any number of goroutines.
//
//	g, err := integrator.New([]float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, []float64{1, 1})
//	if err != nil {
//		// ErrDimensionMismatch or ErrNonMonotonic
//	}
//	area := g.Integrate(func(x float64) float64 { return x * x }) // 2/3
package integrator
