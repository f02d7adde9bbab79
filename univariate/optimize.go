package univariate

// Minimize finds a bracket around a local minimum of f and refines it with
// golden-section search. If settings is nil, DefaultSettings is used.
//
// The only error is the one from the bracket search, an *Infeasible when
// no bracket is found, returned unchanged. The returned Result counts the
// iterations and function evaluations of both stages. Its Status is the
// one the golden-section stage ended with, so MaximumIterations there
// means the point is approximate, not that the run failed.
func Minimize(f Function, settings *Settings) (*Result, error) {
	if f == nil {
		panic("univariate: nil function")
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	bracket, stats, err := findBracket(f, settings)
	if err != nil {
		return nil, err
	}
	point, search := goldenSectionSearch(bracket, settings)
	stats.Add(search)

	return &Result{
		CommonResult: stats,
		Point:        point,
		Bracket:      bracket,
	}, nil
}
