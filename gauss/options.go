// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/apd/v3"
	"go.uber.org/zap"
)

// Defaults for the high-precision family, matching IEEE 754 decimal128.
const (
	// DefaultPrecision is the number of significant decimal digits kept by
	// the high-precision Legendre family.
	DefaultPrecision uint32 = 34

	// DefaultRounding is the rounding mode of the high-precision family.
	DefaultRounding = apd.RoundHalfEven
)

const panicPrecisionInvalid = "gauss: WithPrecision: precision must be > 0"

// Option configures a rule cache at construction time.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	precision uint32
	rounding  apd.Rounder
}

func defaultOptions() options {
	return options{
		logger:    zap.NewNop(),
		precision: DefaultPrecision,
		rounding:  DefaultRounding,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger that receives one Debug record per computed
// order. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithPrecision sets the significant digits of the high-precision family.
// Other families ignore it. Panics if p == 0.
func WithPrecision(p uint32) Option {
	if p == 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = p }
}

// WithRounding sets the rounding mode of the high-precision family.
// Other families ignore it.
func WithRounding(r apd.Rounder) Option {
	return func(o *options) { o.rounding = r }
}
