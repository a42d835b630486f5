// SPDX-License-Identifier: MIT

package integrator

import "github.com/katalvlaran/gaussquad/gauss"

// Symmetric integrates with a rule whose nodes and weights are mirrored
// about 0 (x_i = -x_{n-1-i}, w_i = w_{n-1-i}). Symmetry is assumed, not
// checked; a non-symmetric rule gives a wrong result.
type Symmetric struct {
	Gauss
}

var _ Integrator = (*Symmetric)(nil)

// NewSymmetric validates like New.
func NewSymmetric(nodes, weights []float64) (*Symmetric, error) {
	g, err := New(nodes, weights)
	if err != nil {
		return nil, err
	}

	return &Symmetric{Gauss: *g}, nil
}

// SymmetricFromRule is NewSymmetric(r.Nodes, r.Weights).
func SymmetricFromRule(r gauss.Rule) (*Symmetric, error) {
	return NewSymmetric(r.Nodes, r.Weights)
}

// Integrate returns Σ_{i<n/2} weights[i]·(f(nodes[i]) + f(-nodes[i])), plus
// weights[n/2]·f(0) when n is odd.
func (s *Symmetric) Integrate(f Func) float64 {
	n := len(s.nodes)
	switch n {
	case 0:
		return 0
	case 1:
		return s.weights[0] * f(0)
	}

	var sum kahan
	half := n / 2
	for i := 0; i < half; i++ {
		x := s.nodes[i]
		sum.add(s.weights[i] * (f(x) + f(-x)))
	}
	if n%2 == 1 {
		sum.add(s.weights[half] * f(0))
	}

	return sum.s
}
