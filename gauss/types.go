// SPDX-License-Identifier: MIT

package gauss

// Rule is a quadrature rule in machine precision: Weights[i] pairs with
// Nodes[i]. Rules handed out by a Cache are fresh copies owned by the caller.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// Len returns the number of nodes.
func (r Rule) Len() int { return len(r.Nodes) }

// Clone returns a deep copy of r.
func (r Rule) Clone() Rule {
	return Rule{
		Nodes:   append([]float64(nil), r.Nodes...),
		Weights: append([]float64(nil), r.Weights...),
	}
}

// ComputeFunc builds the rule of the given order. previous holds the nodes of
// the rule of order-1 in increasing order, or is nil when order == 1.
// Implementations must not retain or modify previous.
type ComputeFunc[V any] func(order int, previous []V) (nodes, weights []V)

// exact is a cached rule in the cache's native representation.
type exact[V any] struct {
	nodes   []V
	weights []V
}
