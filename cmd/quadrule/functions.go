package main

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gaussquad/integrator"
)

var errUnknownFunction = errors.New("unknown function")

// builtins are the integrands the CLI knows by name.
var builtins = map[string]integrator.Func{
	"one":   func(float64) float64 { return 1 },
	"x":     func(x float64) float64 { return x },
	"x2":    func(x float64) float64 { return x * x },
	"x3":    func(x float64) float64 { return x * x * x },
	"sin":   math.Sin,
	"cos":   math.Cos,
	"exp":   math.Exp,
	"runge": func(x float64) float64 { return 1 / (1 + 25*x*x) },
	"gauss": func(x float64) float64 { return math.Exp(-x * x) },
}

func lookupFunction(name string) (integrator.Func, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, functionNames(), errUnknownFunction)
	}

	return f, nil
}

func functionNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
