package common

import (
	"time"

	"github.com/btracey/algopt/write"
)

// CommonSettings is a set of options available to all optimizers
type CommonSettings struct {
	MaximumIterations int // Sets the maximum number of major iterations that can occur. Negative means no maximum
	*write.WriteSettings
}

// DefaultCommonSettings returns settings with no iteration cap and no writers.
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations: -1,
		WriteSettings:     write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the optimizer
	FunctionEvaluations int           // Total number of function evaluations taken by the optimizer
	Runtime             time.Duration // Total runtime elapsed during the optimization
	Status              Status        // How did the optimizer end
	WriteErr            error         // First error from a display writer. The run itself is unaffected
}

// Add folds another stage's result into r. The status of other wins.
func (r *CommonResult) Add(other *CommonResult) {
	r.Iterations += other.Iterations
	r.FunctionEvaluations += other.FunctionEvaluations
	r.Runtime += other.Runtime
	r.Status = other.Status
	if r.WriteErr == nil {
		r.WriteErr = other.WriteErr
	}
}

// Common provides routines for controlling the settings provided by common.
//
// Errors from the display writers never stop an optimization. The first one
// is kept, further writes are skipped, and it is reported in the result.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings
	err      error

	*write.Display
}

// NewCommon creates a new Common structure, and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init initializes all of the values in common at the start of the optimization.
// title heads the output of every display writer.
func (c *Common) Init(settings *CommonSettings, title string, nFunEvals int) {
	c.iter = 0
	c.funEvals = nFunEvals
	c.startTime = time.Now()
	c.err = nil

	if settings == nil {
		settings = DefaultCommonSettings()
	}
	c.settings = settings

	ws := c.settings.WriteSettings
	if ws == nil {
		ws = write.DefaultWriteSettings()
	}
	c.err = c.Display.Init(ws, title)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if the iteration budget has been spent.
func (c *Common) Status() Status {
	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
		WriteErr:            c.err,
	}
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
	if c.err != nil {
		return
	}
	c.err = c.Display.Iterate()
}
