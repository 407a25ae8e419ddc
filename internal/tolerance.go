package internal

const (
	// Epsilon is the slack used when comparing knots and parameters.
	Epsilon = 1e-10

	// Tolerance is the default flatness tolerance of adaptive curve sampling.
	Tolerance = 1e-6

	// KnotEpsilon treats a blend numerator in knot refinement as an exact
	// knot match, and a profile point as lying on a rotation axis.
	KnotEpsilon = 1e-7
)
