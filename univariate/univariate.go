package univariate

import (
	"math"

	"github.com/btracey/algopt/common"
	"github.com/btracey/algopt/write"
)

// Function is a univariate objective.
type Function func(x float64) float64

// Point is a location and the value of the objective there.
type Point struct {
	X float64
	Y float64
}

const (
	// MaxIter is the default cap on bracket expansion steps.
	MaxIter = 1000000
	// MaxOptIter is the default cap on golden-section reductions.
	MaxOptIter = 1000000
	// Gap is the default distance between the first two bracket probes.
	Gap = 1e-2
	// StepFactor is the default growth of the bracket step after every
	// step that still decreases the objective.
	StepFactor = 2.0
)

// epsilon is the spacing of float64 values at 1.
var epsilon = math.Nextafter(1, 2) - 1

// Settings is a structure containing settings for univariate
// optimizers. Some settings may not apply to certain algorithms
type Settings struct {
	InitialLocation float64 // Left end of the first bracket probe pair
	InitialGap      float64 // Distance between the first two probes, must be positive
	StepFactor      float64 // Growth of the step during bracket expansion
	MaxIter         int     // Maximum number of bracket expansion steps, must not be negative
	MaxOptIter      int     // Maximum number of golden-section reductions, the default if negative

	*write.WriteSettings
}

// DefaultSettings returns the default settings for univariate optimizers.
// The bracket search starts at the origin, and the run does not write
// anything.
func DefaultSettings() *Settings {
	return &Settings{
		InitialLocation: 0,
		InitialGap:      Gap,
		StepFactor:      StepFactor,
		MaxIter:         MaxIter,
		MaxOptIter:      MaxOptIter,
		WriteSettings:   write.DefaultWriteSettings(),
	}
}

func (s *Settings) stage(maxIter int) *common.CommonSettings {
	return &common.CommonSettings{
		MaximumIterations: maxIter,
		WriteSettings:     s.WriteSettings,
	}
}

// Helper is a helper struct for optimizers. Not intended for use by
// callers of optimization functions, but exported to aid others who are building
// optimization algorithms
//
// Optimization implementers should call Init() at the beginning of an optimization run
// and should call Status() to check tolerances. At the end of every interation should call
// Iterate()
type Helper struct {
	*common.Common

	locCurr float64
	objCurr float64
}

// NewHelper creates a new univariate helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	return v
}

// Init starts a run. nFunEvals counts the evaluations the optimizer made
// while initializing.
func (u *Helper) Init(s *common.CommonSettings, title string, initLoc, initObj float64, nFunEvals int) {
	u.locCurr = initLoc
	u.objCurr = initObj
	u.Common.Init(s, title, nFunEvals)
}

func (u *Helper) Iterate(loc, obj float64, nFunEvals int) {
	u.locCurr = loc
	u.objCurr = obj
	u.Common.Iterate(nFunEvals)
}

// Result is the outcome of Minimize.
type Result struct {
	*common.CommonResult
	Point

	Bracket *Bracket // Bracket the golden-section search started from
}

// optimizer is the stepwise shape shared by Bracketer and GoldenSection.
type optimizer interface {
	Status() common.Status
	// Iterate performs one step and returns the location probed there.
	Iterate() (loc, obj float64, nFunEvals int)
}

// run iterates opt until it or the helper stops the run. The optimizer is
// checked first, so convergence on the last allowed iteration is reported
// as convergence.
func run(opt optimizer, helper *Helper) common.Status {
	for {
		status := common.CheckStatus(opt, helper)
		if status != common.Continue {
			return status
		}
		loc, obj, nFunEvals := opt.Iterate()
		helper.Iterate(loc, obj, nFunEvals)
	}
}
