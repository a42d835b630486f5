// SPDX-License-Identifier: MIT

package integrator

import (
	"fmt"

	"github.com/katalvlaran/gaussquad/gauss"
)

// Func is a real function of one real variable. Integrators call it only at
// rule nodes and never retain it.
type Func func(x float64) float64

// Integrator is a ready-to-use quadrature rule.
type Integrator interface {
	// Integrate returns the rule's approximation of the integral of f.
	Integrate(f Func) float64
	// Len returns the number of nodes.
	Len() int
	// Rule returns a copy of the nodes and weights.
	Rule() gauss.Rule
}

// Gauss integrates with an arbitrary rule.
type Gauss struct {
	nodes   []float64
	weights []float64
}

var _ Integrator = (*Gauss)(nil)

// New builds an integrator from copies of nodes and weights.
//
// Errors:
//   - ErrDimensionMismatch if len(nodes) != len(weights).
//   - ErrNonMonotonic      if nodes are not strictly increasing.
func New(nodes, weights []float64) (*Gauss, error) {
	if len(nodes) != len(weights) {
		return nil, fmt.Errorf("integrator: %d nodes, %d weights: %w", len(nodes), len(weights), ErrDimensionMismatch)
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i] <= nodes[i-1] {
			return nil, fmt.Errorf("integrator: node[%d]=%g after node[%d]=%g: %w", i, nodes[i], i-1, nodes[i-1], ErrNonMonotonic)
		}
	}

	return &Gauss{
		nodes:   append([]float64(nil), nodes...),
		weights: append([]float64(nil), weights...),
	}, nil
}

// FromRule is New(r.Nodes, r.Weights).
func FromRule(r gauss.Rule) (*Gauss, error) {
	return New(r.Nodes, r.Weights)
}

// Integrate returns Σ weights[i]·f(nodes[i]).
func (g *Gauss) Integrate(f Func) float64 {
	var sum kahan
	for i, x := range g.nodes {
		sum.add(g.weights[i] * f(x))
	}

	return sum.s
}

func (g *Gauss) Len() int { return len(g.nodes) }

// Node returns the i-th node; it panics if i is out of range.
func (g *Gauss) Node(i int) float64 { return g.nodes[i] }

// Weight returns the i-th weight; it panics if i is out of range.
func (g *Gauss) Weight(i int) float64 { return g.weights[i] }

func (g *Gauss) Rule() gauss.Rule {
	return gauss.Rule{Nodes: g.nodes, Weights: g.weights}.Clone()
}

// kahan is a compensated running sum.
type kahan struct {
	s float64 // sum
	c float64 // lost low-order bits, subtracted from the next term
}

func (k *kahan) add(v float64) {
	y := v - k.c
	t := k.s + y
	k.c = (t - k.s) - y
	k.s = t
}
