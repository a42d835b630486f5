// Command quadrule prints Gaussian quadrature rules and integrates built-in
// functions with them.
//
//	quadrule families
//	quadrule rule --family legendre --order 3,5 --format yaml
//	quadrule rule --family legendre-hp --order 4 --exact --precision 50
//	quadrule integrate sin --family legendre --order 10 --lower 0 --upper 3.14159
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
