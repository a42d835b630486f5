// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaussquad/gauss"
)

// Interval is a finite integration domain [Lower, Upper].
type Interval struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Validate returns ErrInvalidInterval unless both bounds are finite and
// Lower < Upper.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Lower) || math.IsNaN(iv.Upper) ||
		math.IsInf(iv.Lower, 0) || math.IsInf(iv.Upper, 0) || iv.Lower >= iv.Upper {
		return fmt.Errorf("[%g, %g]: %w", iv.Lower, iv.Upper, ErrInvalidInterval)
	}

	return nil
}

// Scale is (Upper-Lower)/2, the Jacobian of the map from [-1, 1].
func (iv Interval) Scale() float64 { return (iv.Upper - iv.Lower) / 2 }

// Shift is Lower+Scale(), the image of 0.
func (iv Interval) Shift() float64 { return iv.Lower + iv.Scale() }

// Transform maps a rule on [-1, 1] onto iv: x' = x·scale + shift and
// w' = w·scale. r is not modified.
func (iv Interval) Transform(r gauss.Rule) gauss.Rule {
	scale, shift := iv.Scale(), iv.Shift()
	out := r.Clone()
	for i := range out.Nodes {
		out.Nodes[i] = out.Nodes[i]*scale + shift
		out.Weights[i] *= scale
	}

	return out
}
