// Package gaussquad is your toolbox for Gaussian quadrature: generating,
// caching and applying Gauss–Legendre and Gauss–Hermite rules.
//
// 🚀 What is gaussquad?
//
//	A thread-safe, memoizing rule engine that brings together:
//		• Rule generation: bisection on interlacing roots of a three-term recurrence
//		• Caching: every order computed once per process, copies handed out
//		• Precision: float64 rules and 34-digit decimal Legendre rules
//		• Evaluation: compensated (Kahan) sums, symmetric fast path
//		• Facade: one call from (family, order, interval) to an integrator
//
// ✨ Why choose gaussquad?
//
//   - Simple – Integrator{Integrate(f)} is the whole evaluation API
//   - Safe – concurrent first requests compute a rule exactly once
//   - Observable – plug a *zap.Logger in and see every computed order
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/    — Field[V]: float64 and apd decimal arithmetic behind one interface
//	gauss/      — rule caches and the Legendre, high-precision Legendre, Hermite families
//	integrator/ — Gauss and Symmetric integrators with Kahan summation
//	quadrature/ — Family, Interval and the Factory facade
//
// and one command:
//
//	cmd/quadrule — print rules as table, JSON or YAML; integrate built-in functions
//
// Quick example:
//
//	in, _ := quadrature.New(quadrature.Legendre, 5, quadrature.WithInterval(0, math.Pi))
//	in.Integrate(math.Sin) // ≈ 2
//
//	go get github.com/katalvlaran/gaussquad/quadrature
package gaussquad
