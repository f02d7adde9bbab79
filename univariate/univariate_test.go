package univariate

import "math"

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Obj(x float64) float64 {
	return (x-q.b)*(x-q.b) + q.c
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}

// expSin has many local minima; the one nearest the origin is near -0.1172.
func expSin(x float64) float64 {
	return math.Exp(x) * math.Sin(x/4+x*x)
}

func linear(x float64) float64 { return x }
