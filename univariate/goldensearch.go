package univariate

import (
	"math"

	"github.com/btracey/algopt/common"
)

const (
	// InvPhi is 1/φ, the fraction of the interval kept every reduction.
	InvPhi = 0.6180339887498949
	// InvPhi2 is 1 - 1/φ.
	InvPhi2 = 0.38196601125010515
)

// GoldenSection narrows a bracket by golden-section search. It keeps a
// single interior probe and evaluates the function once per iteration.
//
// The working ends are not kept ordered: when the minimum lies on the far
// side of the new probe the ends swap roles, which leaves the kept probe at
// the golden position of the new interval.
type GoldenSection struct {
	f Function

	left  float64
	right float64

	rightNew  float64
	yRightNew float64
}

// Init starts the search on b and returns the number of function
// evaluations used.
func (g *GoldenSection) Init(b *Bracket) int {
	g.f = b.f
	g.left, g.right = b.Interval()
	g.rightNew = InvPhi*g.right + InvPhi2*g.left
	g.yRightNew = g.f(g.rightNew)
	return 1
}

// Status reports BoundsConverged once the ends are closer than machine
// epsilon.
func (g *GoldenSection) Status() common.Status {
	if math.Abs(g.left-g.right) < epsilon {
		return common.BoundsConverged
	}
	return common.Continue
}

func (g *GoldenSection) Iterate() (loc, obj float64, nFunEvals int) {
	leftNew := InvPhi*g.left + InvPhi2*g.right
	yLeftNew := g.f(leftNew)
	if yLeftNew < g.yRightNew {
		g.right = g.rightNew
		g.rightNew = leftNew
		g.yRightNew = yLeftNew
	} else {
		g.left = g.right
		g.right = leftNew
	}
	return g.rightNew, g.yRightNew, 1
}

// Point returns the best interior probe found so far.
func (g *GoldenSection) Point() Point {
	return Point{X: g.rightNew, Y: g.yRightNew}
}

// GoldenSectionSearch refines b to an approximate local minimizer. If
// settings is nil, DefaultSettings is used.
//
// The search always returns a point. When settings.MaxOptIter reductions
// pass before the interval collapses, the best probe so far is returned.
// A negative MaxOptIter is replaced by the default cap.
func GoldenSectionSearch(b *Bracket, settings *Settings) Point {
	p, _ := goldenSectionSearch(b, settings)
	return p
}

func goldenSectionSearch(b *Bracket, settings *Settings) (Point, *common.CommonResult) {
	if b == nil {
		panic("univariate: nil bracket")
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	maxOptIter := settings.MaxOptIter
	if maxOptIter < 0 {
		maxOptIter = MaxOptIter
	}
	g := &GoldenSection{}
	nFunEvals := g.Init(b)

	helper := NewHelper()
	helper.Init(settings.stage(maxOptIter), "Golden section search", g.rightNew, g.yRightNew, nFunEvals)
	status := run(g, helper)
	return g.Point(), helper.Result(status)
}
