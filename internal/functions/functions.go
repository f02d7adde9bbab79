// Package functions holds the named objectives the algopt command can
// minimize.
package functions

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/btracey/algopt/univariate"
)

// Default is the objective used when none is named.
const Default = "expsin"

var registry = map[string]univariate.Function{
	// exp(x)·sin(x/4 + x²), local minimum near -0.1172 closest to the origin
	"expsin": func(x float64) float64 { return math.Exp(x) * math.Sin(x/4+x*x) },
	// (x-2)², minimum at 2
	"quadratic": func(x float64) float64 { return (x - 2) * (x - 2) },
	// cos(x), minima at odd multiples of π
	"cos": math.Cos,
	// |x+7|+1, a kink at -7
	"abs": func(x float64) float64 { return math.Abs(x+7) + 1 },
	// no minimum, the bracket search fails
	"linear": func(x float64) float64 { return x },
}

// Lookup returns the objective registered under name.
func Lookup(name string) (univariate.Function, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown function %q, have %s", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
