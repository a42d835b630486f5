// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/gaussquad/numeric"
	"go.uber.org/zap"
)

// Cache memoizes the rules of one family, keyed by order.
//
// Rules are computed at most once per order and are never evicted or
// mutated. Computing order n needs the nodes of order n-1, so a miss fills
// every missing order from the lowest uncached one up to n. A single mutex
// guards the whole cache for the duration of that fill: concurrent callers
// asking for an order being built block until it is stored, then read it.
// Requests for different orders on the same Cache are serialized as well.
//
// Alongside the native rules the Cache keeps a float64 view of each order,
// built lazily on first Rule call. Both maps are only touched under mu, and
// every slice leaving the Cache is a copy.
type Cache[V any] struct {
	mu sync.Mutex

	name    string
	field   numeric.Field[V]
	compute ComputeFunc[V]
	logger  *zap.Logger

	rules   map[int]exact[V] // order -> native rule
	doubles map[int]Rule     // order -> float64 view of rules[order]
}

// NewCache returns an empty cache for a family named name whose rules are
// produced by compute over field. Only WithLogger is relevant here; the
// numeric options are consumed by the family constructors.
func NewCache[V any](name string, field numeric.Field[V], compute ComputeFunc[V], opts ...Option) *Cache[V] {
	o := gatherOptions(opts)

	return &Cache[V]{
		name:    name,
		field:   field,
		compute: compute,
		logger:  o.logger.With(zap.String("family", name)),
		rules:   make(map[int]exact[V]),
		doubles: make(map[int]Rule),
	}
}

// Name returns the family name the cache was built with.
func (c *Cache[V]) Name() string { return c.name }

// Rule returns a copy of the rule of the given order in machine precision.
//
// Errors:
//   - ErrInvalidOrder      if order < 1.
//   - ErrDimensionMismatch if the family produced a malformed rule.
func (c *Cache[V]) Rule(order int) (Rule, error) {
	if order < 1 {
		return Rule{}, fmt.Errorf("Rule(%d): %w", order, ErrInvalidOrder)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.doubles[order]; ok {
		return r.Clone(), nil
	}
	e, err := c.ruleLocked(order)
	if err != nil {
		return Rule{}, err
	}

	r := Rule{
		Nodes:   make([]float64, len(e.nodes)),
		Weights: make([]float64, len(e.weights)),
	}
	for i := range e.nodes {
		r.Nodes[i] = c.field.Float64(e.nodes[i])
		r.Weights[i] = c.field.Float64(e.weights[i])
	}
	c.doubles[order] = r

	return r.Clone(), nil
}

// Exact returns copies of the nodes and weights of the given order in the
// cache's native representation.
func (c *Cache[V]) Exact(order int) (nodes, weights []V, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("Exact(%d): %w", order, ErrInvalidOrder)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.ruleLocked(order)
	if err != nil {
		return nil, nil, err
	}
	nodes = make([]V, len(e.nodes))
	weights = make([]V, len(e.weights))
	for i := range e.nodes {
		nodes[i] = c.field.Copy(e.nodes[i])
		weights[i] = c.field.Copy(e.weights[i])
	}

	return nodes, weights, nil
}

// Cached reports whether the native rule of the given order is stored.
func (c *Cache[V]) Cached(order int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.rules[order]

	return ok
}

// ruleLocked returns the native rule of the given order, computing every
// missing order up to it. Callers must hold c.mu.
func (c *Cache[V]) ruleLocked(order int) (exact[V], error) {
	if e, ok := c.rules[order]; ok {
		return e, nil
	}

	// lowest uncached order; everything below it is present.
	start := order
	for start > 1 {
		if _, ok := c.rules[start-1]; ok {
			break
		}
		start--
	}

	for k := start; k <= order; k++ {
		var previous []V
		if k > 1 {
			previous = c.rules[k-1].nodes
		}

		began := time.Now()
		nodes, weights := c.compute(k, previous)
		if err := c.addRule(nodes, weights); err != nil {
			return exact[V]{}, fmt.Errorf("order %d: %w", k, err)
		}
		if _, ok := c.rules[k]; !ok {
			return exact[V]{}, fmt.Errorf("order %d: computed %d nodes: %w", k, len(nodes), ErrDimensionMismatch)
		}
		c.logger.Debug("rule computed", zap.Int("order", k), zap.Duration("elapsed", time.Since(began)))
	}

	return c.rules[order], nil
}

// addRule stores a freshly computed rule under its actual length. The map is
// append-only: an order already present is never replaced.
func (c *Cache[V]) addRule(nodes, weights []V) error {
	if len(nodes) != len(weights) {
		return fmt.Errorf("%d nodes, %d weights: %w", len(nodes), len(weights), ErrDimensionMismatch)
	}
	if _, ok := c.rules[len(nodes)]; ok {
		return nil
	}
	c.rules[len(nodes)] = exact[V]{nodes: nodes, weights: weights}

	return nil
}
