// SPDX-License-Identifier: MIT

package gauss

import "errors"

// Every message is prefixed with "gauss: ". Callers match with errors.Is;
// returned errors may wrap these sentinels with the offending order.
var (
	// ErrInvalidOrder indicates a rule order < 1 was requested.
	ErrInvalidOrder = errors.New("gauss: rule order must be positive")

	// ErrDimensionMismatch indicates a rule whose node and weight counts
	// differ, or whose node count differs from the order it was computed for.
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")
)
