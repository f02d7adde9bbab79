// Package differentiate estimates derivatives of univariate functions.
package differentiate

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// centralStep is the full width of the central difference stencil,
// the cube root of machine epsilon.
var centralStep = math.Cbrt(math.Nextafter(1, 2) - 1)

// ComplexStep is the imaginary perturbation used by Complex.
const ComplexStep = 1e-20

// Central estimates f'(x) as (f(x+h/2) - f(x-h/2)) / h with h the cube root of
// machine epsilon. The error is of order h.
func Central(f func(float64) float64, x float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    centralStep / 2,
	})
}

// Complex estimates f'(x) by the complex step method, Im(f(x+ih)) / h. f
// must be the analytic extension of a real function. There is no
// subtractive cancellation, so the estimate is accurate to near machine
// precision.
func Complex(f func(complex128) complex128, x float64) float64 {
	return imag(f(complex(x, ComplexStep))) / ComplexStep
}
