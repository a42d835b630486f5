// SPDX-License-Identifier: MIT

package quadrature

// Option configures one Integrator build.
type Option func(*buildOptions)

type buildOptions struct {
	interval *Interval
}

// WithInterval maps the rule onto [lower, upper]. Bounds are validated when
// the integrator is built; Hermite rejects any interval.
func WithInterval(lower, upper float64) Option {
	return func(o *buildOptions) {
		o.interval = &Interval{Lower: lower, Upper: upper}
	}
}
