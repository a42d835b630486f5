// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"

	"github.com/katalvlaran/gaussquad/gauss"
	"github.com/katalvlaran/gaussquad/integrator"
)

// Re-exported so callers of this package need only one import to match
// every failure with errors.Is.
var (
	ErrInvalidOrder      = gauss.ErrInvalidOrder
	ErrDimensionMismatch = gauss.ErrDimensionMismatch
	ErrNonMonotonic      = integrator.ErrNonMonotonic
)

var (
	// ErrUnknownFamily indicates a Family value or name outside the known set.
	ErrUnknownFamily = errors.New("quadrature: unknown rule family")

	// ErrInvalidInterval indicates non-finite bounds or lower >= upper.
	ErrInvalidInterval = errors.New("quadrature: interval bounds must be finite with lower < upper")

	// ErrIntervalUnsupported indicates an interval was requested for a family
	// whose natural domain is unbounded.
	ErrIntervalUnsupported = errors.New("quadrature: family does not support a custom interval")
)
