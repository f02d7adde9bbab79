package univariate

import (
	"math"
	"testing"

	"github.com/btracey/algopt/common"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGoldenSectionSearch(t *testing.T) {
	q := quadratic{b: 2}
	br, err := FindBracket(q.Obj, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := GoldenSectionSearch(br, nil)
	// Error in evaluating f near the minimum limits the precision of x.
	if math.Abs(p.X-q.OptLoc()) > 1e-6 {
		t.Errorf("location doesn't match. Expected: %v, Found %v", q.OptLoc(), p.X)
	}
	if !scalar.EqualWithinAbs(p.Y, q.OptVal(), 1e-12) {
		t.Errorf("objective doesn't match. Expected: %v, Found %v", q.OptVal(), p.Y)
	}
	if p.X < br.Left() || p.X > br.Right() {
		t.Errorf("point %v left the bracket [%v, %v]", p.X, br.Left(), br.Right())
	}
}

func TestGoldenSectionSearchExpSin(t *testing.T) {
	br, err := FindBracket(expSin, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := GoldenSectionSearch(br, nil)
	if !(p.X < -0.1172 && p.X > -0.1173) {
		t.Errorf("location %v outside (-0.1173, -0.1172)", p.X)
	}
	if !(p.Y < -0.0138 && p.Y > -0.0139) {
		t.Errorf("objective %v outside (-0.0139, -0.0138)", p.Y)
	}

	again := GoldenSectionSearch(br, nil)
	if again != p {
		t.Errorf("repeated search differs: %v and %v", p, again)
	}
}

func TestGoldenSectionMaxOptIter(t *testing.T) {
	q := quadratic{b: 2}
	br, err := FindBracket(q.Obj, nil)
	if err != nil {
		t.Fatal(err)
	}
	settings := DefaultSettings()
	settings.MaxOptIter = 5
	p, result := goldenSectionSearch(br, settings)
	if result.Status != common.MaximumIterations {
		t.Errorf("expected status %v, found %v", common.MaximumIterations, result.Status)
	}
	if result.Iterations != 5 {
		t.Errorf("expected 5 iterations, found %v", result.Iterations)
	}
	// One evaluation to start and one per iteration.
	if result.FunctionEvaluations != 6 {
		t.Errorf("expected 6 function evaluations, found %v", result.FunctionEvaluations)
	}
	if p.X < br.Left() || p.X > br.Right() {
		t.Errorf("point %v left the bracket [%v, %v]", p.X, br.Left(), br.Right())
	}

	// Zero reductions leave the first interior probe.
	settings.MaxOptIter = 0
	p = GoldenSectionSearch(br, settings)
	want := InvPhi*br.Right() + InvPhi2*br.Left()
	if p.X != want || p.Y != q.Obj(want) {
		t.Errorf("expected the first probe %v, found %v", want, p)
	}
}

// Each reduction keeps 1/φ of the interval.
func TestGoldenSectionShrinks(t *testing.T) {
	q := quadratic{b: 0.3}
	br, err := ExpandBracket(q.Obj, 0, 0.01, 0.01, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := &GoldenSection{}
	if n := g.Init(br); n != 1 {
		t.Errorf("expected one evaluation at init, found %v", n)
	}
	width := math.Abs(g.left - g.right)
	for i := 0; i < 20; i++ {
		if g.Status() != common.Continue {
			t.Fatalf("converged after %v iterations", i)
		}
		loc, obj, n := g.Iterate()
		if n != 1 {
			t.Errorf("expected one evaluation per iteration, found %v", n)
		}
		if loc != g.Point().X || obj != g.Point().Y {
			t.Errorf("iterate returned %v, %v but the point is %v", loc, obj, g.Point())
		}
		next := math.Abs(g.left - g.right)
		if !scalar.EqualWithinRel(next, width*InvPhi, 1e-9) {
			t.Errorf("iteration %v: width %v, expected %v", i, next, width*InvPhi)
		}
		width = next
	}
}

// A negative cap falls back to the default rather than running unbounded.
func TestGoldenSectionNegativeMaxOptIter(t *testing.T) {
	br, err := FindBracket(expSin, nil)
	if err != nil {
		t.Fatal(err)
	}
	settings := DefaultSettings()
	settings.MaxOptIter = -1
	p, result := goldenSectionSearch(br, settings)
	if want := GoldenSectionSearch(br, nil); p != want {
		t.Errorf("expected %v, found %v", want, p)
	}
	if result.Iterations > MaxOptIter {
		t.Errorf("%v iterations exceed the default cap %v", result.Iterations, MaxOptIter)
	}

	settings.MaxOptIter = -5
	res, err := Minimize(expSin, settings)
	if err != nil {
		t.Fatal(err)
	}
	if res.Point != p {
		t.Errorf("Minimize: expected %v, found %v", p, res.Point)
	}
}
