package univariate

import (
	"errors"

	"github.com/btracey/algopt/common"
)

// Bracket is an interval of a Function that contains a local minimum.
// Left is always strictly less than Right.
type Bracket struct {
	f     Function
	left  float64
	right float64
}

// Func returns the function the bracket was found for.
func (b *Bracket) Func() Function { return b.f }

// Left returns the lower end of the bracket.
func (b *Bracket) Left() float64 { return b.left }

// Right returns the upper end of the bracket.
func (b *Bracket) Right() float64 { return b.right }

// Interval returns the ends of the bracket.
func (b *Bracket) Interval() (left, right float64) {
	return b.left, b.right
}

// Infeasible is returned when no bracket is found within the iteration
// budget, typically because the function is monotonic in the direction
// searched.
type Infeasible struct {
	Reason string
}

func (e *Infeasible) Error() string { return e.Reason }

const errExceeded = "Bracketing algorithm exceeded MAX_ITER iterations"

// Bracketer walks along a function with a geometrically growing step until
// the function value increases, at which point the last three probes
// enclose a local minimum.
type Bracketer struct {
	StepFactor float64 // Growth of the step after each decreasing probe

	f      Function
	left   float64
	right  float64
	yRight float64
	step   float64
	found  bool
}

// NewBracketer returns a Bracketer that grows its step by stepFactor.
func NewBracketer(stepFactor float64) *Bracketer {
	return &Bracketer{StepFactor: stepFactor}
}

// Init starts the walk from the probe pair (left, right), moving by step
// (rightward if positive). It returns the number of function evaluations
// used. left must be less than right.
func (b *Bracketer) Init(f Function, left, right, step float64) (int, error) {
	if !(left < right) {
		return 0, errors.New("bracket: left end not less than right end")
	}
	if step == 0 {
		return 0, errors.New("bracket: initial step is zero")
	}
	if b.StepFactor < 1 {
		return 0, errors.New("bracket: step factor less than one")
	}
	b.f = f
	b.left = left
	b.right = right
	b.step = step
	b.found = false
	b.yRight = f(right)
	return 1, nil
}

// Status reports BracketFound once the function has turned upward.
func (b *Bracketer) Status() common.Status {
	if b.found {
		return common.BracketFound
	}
	return common.Continue
}

// Iterate probes one step further and returns the probe.
func (b *Bracketer) Iterate() (loc, obj float64, nFunEvals int) {
	rightNew := b.right + b.step
	yRightNew := b.f(rightNew)

	if yRightNew > b.yRight {
		// The function turned upward, so the minimum lies between left
		// and the new probe. Walking leftward leaves left on the far side.
		if b.left < rightNew {
			b.right = rightNew
		} else {
			b.left, b.right = rightNew, b.left
		}
		b.found = true
		return rightNew, yRightNew, 1
	}

	b.left = b.right
	b.right = rightNew
	b.yRight = yRightNew
	b.step *= b.StepFactor
	return rightNew, yRightNew, 1
}

// Bracket returns the bracket once Status reports BracketFound, and nil
// before that. It is also nil when the first probe of a walk that started
// uphill landed back on left, leaving no interval.
func (b *Bracketer) Bracket() *Bracket {
	if !b.found || !(b.left < b.right) {
		return nil
	}
	return &Bracket{f: b.f, left: b.left, right: b.right}
}

// FindBracket finds a bracket around a local minimum of f, starting with
// the probes settings.InitialLocation and InitialLocation+InitialGap and
// walking downhill. If settings is nil, DefaultSettings is used.
//
// An *Infeasible error is returned if no bracket is found within
// settings.MaxIter steps.
func FindBracket(f Function, settings *Settings) (*Bracket, error) {
	b, _, err := findBracket(f, settings)
	return b, err
}

// ExpandBracket walks from the probe pair (left, right) in the direction of
// step until a local minimum is enclosed. The caller is responsible for
// choosing a step that points downhill; an uphill step that leaves no
// interval is an error.
func ExpandBracket(f Function, left, right, step float64, settings *Settings) (*Bracket, error) {
	b, _, err := expandBracket(f, left, right, step, 0, settings)
	return b, err
}

func findBracket(f Function, settings *Settings) (*Bracket, *common.CommonResult, error) {
	if f == nil {
		panic("univariate: nil function")
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if !(settings.InitialGap > 0) {
		return nil, nil, errors.New("bracket: initial gap must be positive")
	}
	left := settings.InitialLocation
	right := left + settings.InitialGap
	step := -settings.InitialGap
	if f(left) > f(right) {
		step = settings.InitialGap
	}
	return expandBracket(f, left, right, step, 2, settings)
}

// expandBracket runs a Bracketer. preEvals counts evaluations the caller
// made before handing over.
func expandBracket(f Function, left, right, step float64, preEvals int, settings *Settings) (*Bracket, *common.CommonResult, error) {
	if f == nil {
		panic("univariate: nil function")
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.MaxIter < 0 {
		return nil, nil, errors.New("bracket: negative MaxIter")
	}

	bracketer := NewBracketer(settings.StepFactor)
	nFunEvals, err := bracketer.Init(f, left, right, step)
	if err != nil {
		return nil, nil, errors.New("error initializing: " + err.Error())
	}

	helper := NewHelper()
	helper.Init(settings.stage(settings.MaxIter), "Bracket search", right, bracketer.yRight, preEvals+nFunEvals)
	status := run(bracketer, helper)
	result := helper.Result(status)

	if status != common.BracketFound {
		return nil, result, &Infeasible{Reason: errExceeded}
	}
	br := bracketer.Bracket()
	if br == nil {
		return nil, result, errors.New("bracket: step points uphill, no interval enclosed")
	}
	return br, result, nil
}
