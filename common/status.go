package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of statusers and
// returns the first one that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

var statusStrings = map[Status]string{
	Continue:          "Continue",
	BracketFound:      "BracketFound",
	BoundsConverged:   "BoundsConverged",
	MaximumIterations: "MaximumIterations",
}

// Status is a type for expressing if the optimizer has finished or not
// Zero signifies no convergence or error so the optimizer should continue.
// Positive values indicate successful convergence
// negative values express the run stopped before converging
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged reports whether the status marks a successful termination.
func (s Status) Converged() bool { return s > 0 }

const (
	Continue Status = iota
	BracketFound
	BoundsConverged
)

const (
	_                        = iota
	MaximumIterations Status = -1 * iota
)
