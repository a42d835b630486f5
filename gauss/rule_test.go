package gauss_test

import (
	"math"
	"sort"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/gaussquad/gauss"
	"github.com/katalvlaran/gaussquad/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

// ruleSource is the float64 surface shared by every family cache.
type ruleSource interface {
	Rule(order int) (gauss.Rule, error)
	Name() string
}

// families lists every family with the highest order its tests walk to.
func families() []struct {
	cache    ruleSource
	maxOrder int
} {
	return []struct {
		cache    ruleSource
		maxOrder int
	}{
		{gauss.NewLegendre(), 40},
		{gauss.NewLegendreHighPrecision(), 12},
		{gauss.NewHermite(), 30},
	}
}

// TestRule_WellFormed checks length, ordering, symmetry and positivity of
// every rule up to each family's maximum order.
func TestRule_WellFormed(t *testing.T) {
	for _, fam := range families() {
		t.Run(fam.cache.Name(), func(t *testing.T) {
			for n := 1; n <= fam.maxOrder; n++ {
				r, err := fam.cache.Rule(n)
				require.NoError(t, err, "order %d", n)
				require.Len(t, r.Nodes, n, "order %d node count", n)
				require.Len(t, r.Weights, n, "order %d weight count", n)

				for i := 0; i < n; i++ {
					assert.Greater(t, r.Weights[i], 0.0, "order %d weight %d must be positive", n, i)
					if i > 0 {
						assert.Less(t, r.Nodes[i-1], r.Nodes[i], "order %d nodes must increase at %d", n, i)
					}
					assert.Equal(t, -r.Nodes[i], r.Nodes[n-1-i], "order %d nodes must mirror at %d", n, i)
					assert.Equal(t, r.Weights[i], r.Weights[n-1-i], "order %d weights must mirror at %d", n, i)
				}
				if n%2 == 1 {
					assert.Equal(t, 0.0, r.Nodes[n/2], "odd order %d has a middle node at 0", n)
				}
			}
		})
	}
}

// TestRule_KnownValues pins the closed-form low orders.
func TestRule_KnownValues(t *testing.T) {
	legendre := gauss.NewLegendre()

	r, err := legendre.Rule(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, r.Nodes)
	assert.Equal(t, []float64{2}, r.Weights)

	r, err = legendre.Rule(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, r.Nodes, 1e-15)
	assert.InDeltaSlice(t, []float64{1, 1}, r.Weights, 1e-15)

	r, err = legendre.Rule(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)}, r.Nodes, 1e-15)
	assert.InDeltaSlice(t, []float64{5.0 / 9, 8.0 / 9, 5.0 / 9}, r.Weights, 1e-15)

	hermite := gauss.NewHermite()

	r, err = hermite.Rule(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, r.Nodes)
	assert.InDelta(t, 1.7724538509055159, r.Weights[0], 1e-14, "order-1 Hermite weight is √π")

	r, err = hermite.Rule(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-math.Sqrt2 / 2, math.Sqrt2 / 2}, r.Nodes, 1e-15)
	assert.InDeltaSlice(t, []float64{math.Sqrt(math.Pi) / 2, math.Sqrt(math.Pi) / 2}, r.Weights, 1e-14)

	r, err = hermite.Rule(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-math.Sqrt(1.5), 0, math.Sqrt(1.5)}, r.Nodes, 1e-15)
	sp := math.Sqrt(math.Pi)
	assert.InDeltaSlice(t, []float64{sp / 6, 2 * sp / 3, sp / 6}, r.Weights, 1e-14)
}

// TestRule_InvalidOrder verifies non-positive orders are rejected.
func TestRule_InvalidOrder(t *testing.T) {
	for _, fam := range families() {
		for _, n := range []int{0, -5} {
			_, err := fam.cache.Rule(n)
			assert.ErrorIs(t, err, gauss.ErrInvalidOrder, "%s order %d", fam.cache.Name(), n)
		}
	}

	_, _, err := gauss.NewLegendreHighPrecision().Exact(0)
	assert.ErrorIs(t, err, gauss.ErrInvalidOrder)
}

// TestRule_DefensiveCopy verifies repeated reads are equal and independent.
func TestRule_DefensiveCopy(t *testing.T) {
	for _, fam := range families() {
		first, err := fam.cache.Rule(6)
		require.NoError(t, err)
		second, err := fam.cache.Rule(6)
		require.NoError(t, err)
		require.Equal(t, first, second, "%s: cached reads must be value-equal", fam.cache.Name())

		first.Nodes[0] = 42
		first.Weights[0] = -1

		third, err := fam.cache.Rule(6)
		require.NoError(t, err)
		assert.Equal(t, second, third, "%s: mutating a returned rule must not leak into the cache", fam.cache.Name())
	}
}

// TestLegendre_PolynomialExactness checks the degree ≤ 2n-1 guarantee.
func TestLegendre_PolynomialExactness(t *testing.T) {
	legendre := gauss.NewLegendre()
	for n := 1; n <= 20; n++ {
		r, err := legendre.Rule(n)
		require.NoError(t, err)
		for k := 0; k <= 2*n-1; k++ {
			want := 0.0
			if k%2 == 0 {
				want = 2 / float64(k+1)
			}
			got := 0.0
			for i := range r.Nodes {
				got += r.Weights[i] * math.Pow(r.Nodes[i], float64(k))
			}
			assert.InDelta(t, want, got, 1e-13, "order %d, monomial x^%d", n, k)
		}
	}
}

// TestHermite_MomentExactness checks ∫x^k exp(-x²) = Γ((k+1)/2) for even k.
func TestHermite_MomentExactness(t *testing.T) {
	hermite := gauss.NewHermite()
	for n := 1; n <= 15; n++ {
		r, err := hermite.Rule(n)
		require.NoError(t, err)
		for k := 0; k <= 2*n-1; k++ {
			want := 0.0
			if k%2 == 0 {
				want = math.Gamma(float64(k+1) / 2)
			}
			got, scale := 0.0, 0.0
			for i := range r.Nodes {
				term := r.Weights[i] * math.Pow(r.Nodes[i], float64(k))
				got += term
				scale += math.Abs(term)
			}
			assert.InDelta(t, want, got, 1e-12*math.Max(1, scale), "order %d, moment %d", n, k)
		}
	}
}

// TestLegendre_MatchesGonum compares against gonum's independent rule.
func TestLegendre_MatchesGonum(t *testing.T) {
	legendre := gauss.NewLegendre()
	for n := 1; n <= 30; n++ {
		r, err := legendre.Rule(n)
		require.NoError(t, err)

		x, w := make([]float64, n), make([]float64, n)
		quad.Legendre{}.FixedLocations(x, w, -1, 1)
		x, w = sortedPairs(x, w)

		assert.InDeltaSlice(t, x, r.Nodes, 1e-13, "order %d nodes", n)
		assert.InDeltaSlice(t, w, r.Weights, 1e-13, "order %d weights", n)
	}
}

// TestHermite_MatchesGonum compares against gonum's independent rule.
func TestHermite_MatchesGonum(t *testing.T) {
	hermite := gauss.NewHermite()
	for n := 2; n <= 12; n++ {
		r, err := hermite.Rule(n)
		require.NoError(t, err)

		x, w := make([]float64, n), make([]float64, n)
		quad.Hermite{}.FixedLocations(x, w, math.Inf(-1), math.Inf(1))
		x, w = sortedPairs(x, w)

		assert.InDeltaSlice(t, x, r.Nodes, 1e-9, "order %d nodes", n)
		assert.InDeltaSlice(t, w, r.Weights, 1e-9, "order %d weights", n)
	}
}

// TestLegendreHighPrecision_AgreesWithDouble checks the two Legendre
// families round to the same doubles up to recurrence noise.
func TestLegendreHighPrecision_AgreesWithDouble(t *testing.T) {
	double := gauss.NewLegendre()
	decimal := gauss.NewLegendreHighPrecision()
	for n := 1; n <= 12; n++ {
		a, err := double.Rule(n)
		require.NoError(t, err)
		b, err := decimal.Rule(n)
		require.NoError(t, err)
		assert.InDeltaSlice(t, a.Nodes, b.Nodes, 1e-14, "order %d nodes", n)
		assert.InDeltaSlice(t, a.Weights, b.Weights, 1e-14, "order %d weights", n)
	}
}

// TestLegendreHighPrecision_Digits checks the decimal rule beyond float64
// resolution: the order-2 nodes are ±1/√3 and both weights are 1.
func TestLegendreHighPrecision_Digits(t *testing.T) {
	cache := gauss.NewLegendreHighPrecision()
	nodes, weights, err := cache.Exact(2)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	f := numeric.NewDecimal(gauss.DefaultPrecision, gauss.DefaultRounding)
	invSqrt3, _, err := apd.NewFromString("0.5773502691896257645091487805019574556476")
	require.NoError(t, err)
	tol := apd.New(1, -30)

	assert.Negative(t, f.Cmp(abs(f, f.Add(nodes[0], invSqrt3)), tol), "node 0 = -1/√3 to 30 digits, got %s", nodes[0])
	assert.Negative(t, f.Cmp(abs(f, f.Sub(nodes[1], invSqrt3)), tol), "node 1 = 1/√3 to 30 digits, got %s", nodes[1])
	for i, w := range weights {
		assert.Negative(t, f.Cmp(abs(f, f.Sub(w, f.FromInt(1))), tol), "weight %d = 1 to 30 digits, got %s", i, w)
	}

	// Exact hands out copies too.
	nodes[0].SetInt64(7)
	again, _, err := cache.Exact(2)
	require.NoError(t, err)
	assert.NotEqual(t, "7", again[0].String())
}

// TestLegendreHighPrecision_Options verifies a coarser context still
// yields a valid rule close to the double one.
func TestLegendreHighPrecision_Options(t *testing.T) {
	cache := gauss.NewLegendreHighPrecision(gauss.WithPrecision(20), gauss.WithRounding(apd.RoundHalfUp))
	r, err := cache.Rule(5)
	require.NoError(t, err)

	ref, err := gauss.NewLegendre().Rule(5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ref.Nodes, r.Nodes, 1e-15)
	assert.InDeltaSlice(t, ref.Weights, r.Weights, 1e-15)

	assert.Panics(t, func() { gauss.WithPrecision(0) })
}

func abs(f numeric.Decimal, x *apd.Decimal) *apd.Decimal {
	if f.Sign(x) < 0 {
		return f.Neg(x)
	}

	return x
}

// sortedPairs orders (x, w) by increasing x.
func sortedPairs(x, w []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	xs, ws := make([]float64, len(x)), make([]float64, len(w))
	for i, j := range idx {
		xs[i], ws[i] = x[j], w[j]
	}

	return xs, ws
}
