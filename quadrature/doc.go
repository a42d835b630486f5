// Package quadrature is the front door of gaussquad: pick a family and an
// order, optionally an interval, and get an integrator back.
//
// 🚀 Quick start:
//
//	in, err := quadrature.New(quadrature.Legendre, 8, quadrature.WithInterval(0, math.Pi))
//	if err != nil {
//		// ErrInvalidOrder, ErrInvalidInterval, ...
//	}
//	fmt.Println(in.Integrate(math.Sin)) // ≈ 2
//
// ✨ What it does:
//   - keeps one gauss.Cache per family inside a Factory, so rules are
//     built once per order and shared by every integrator;
//   - maps Legendre rules from [-1, 1] onto [a, b] with
//     x' = x·(b-a)/2 + (a+b)/2 and w' = w·(b-a)/2;
//   - returns integrator.Symmetric for Hermite rules (natural domain only)
//     and integrator.Gauss for Legendre ones.
//
// Orders are validated before any cache is touched. New uses a
// process-wide Factory; build your own with NewFactory to pass a logger or
// a different decimal precision.
package quadrature
