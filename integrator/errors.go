// SPDX-License-Identifier: MIT

package integrator

import (
	"errors"

	"github.com/katalvlaran/gaussquad/gauss"
)

var (
	// ErrDimensionMismatch indicates nodes and weights of different lengths.
	// It is the same sentinel as gauss.ErrDimensionMismatch.
	ErrDimensionMismatch = gauss.ErrDimensionMismatch

	// ErrNonMonotonic indicates nodes that are not strictly increasing.
	ErrNonMonotonic = errors.New("integrator: nodes must be strictly increasing")
)
