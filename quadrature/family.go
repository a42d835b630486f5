// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gaussquad/gauss"
)

// Family selects an orthogonal-polynomial rule family.
type Family int

const (
	// Legendre rules integrate f over [-1, 1].
	Legendre Family = iota
	// LegendreHighPrecision rules are Legendre rules computed in decimal
	// arithmetic and rounded to float64.
	LegendreHighPrecision
	// Hermite rules integrate f(x)·exp(-x²) over the real line.
	Hermite
)

// Families lists every Family in declaration order.
func Families() []Family {
	return []Family{Legendre, LegendreHighPrecision, Hermite}
}

// String returns the family name shared with gauss caches and log records.
func (f Family) String() string {
	switch f {
	case Legendre:
		return gauss.NameLegendre
	case LegendreHighPrecision:
		return gauss.NameLegendreHighPrecision
	case Hermite:
		return gauss.NameHermite
	}

	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily maps a name as printed by String back to its Family.
// Matching ignores case; "legendre-hp" is accepted as a short form.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case gauss.NameLegendre:
		return Legendre, nil
	case gauss.NameLegendreHighPrecision, "legendre-hp":
		return LegendreHighPrecision, nil
	case gauss.NameHermite:
		return Hermite, nil
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrUnknownFamily)
}

// NaturalInterval returns the domain the family's rules are defined on.
func (f Family) NaturalInterval() Interval {
	if f == Hermite {
		return Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
	}

	return Interval{Lower: -1, Upper: 1}
}

func (f Family) valid() bool {
	return f >= Legendre && f <= Hermite
}
