package enneper

import (
	"errors"
	"fmt"
)

var (
	ErrNilControlPoints  = errors.New("control points cannot be nil")
	ErrNilKnots          = errors.New("knots cannot be nil")
	ErrInvalidDegree     = errors.New("degree must be at least 1")
	ErrTooFewPoints      = errors.New("at least degree + 1 control points are required")
	ErrWeightCount       = errors.New("one weight per control point is required")
	ErrKnotsDecreasing   = errors.New("knot vector must be non-decreasing")
	ErrNonPositiveWeight = errors.New("control point weights must be positive")
	ErrRaggedGrid        = errors.New("control point rows must have equal length")
	ErrInvalidDimension  = errors.New("control points must have between 1 and 3 cartesian coordinates")

	ErrUnsortedKnots    = errors.New("knots to insert must be sorted")
	ErrKnotMultiplicity = errors.New("knot multiplicity would exceed degree + 1")

	ErrDegreeMismatch = errors.New("curves must have equal degree")
	ErrDomainMismatch = errors.New("curves must share one parameter domain")
	ErrKnotMismatch   = errors.New("knots outside the domain differ")

	ErrInvalidSpan = errors.New("knot span index out of range")
)

// DomainError is returned when a curve or surface is evaluated or refined
// at a parameter outside of its domain [Min, Max].
type DomainError struct {
	Param    float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter %g outside of domain [%g, %g]", e.Param, e.Min, e.Max)
}

// DimensionError reports a control point count, knot count and degree that
// violate len(knots) == len(controlPoints) + degree + 1. Axis is empty for
// curves and "u" or "v" for surfaces.
type DimensionError struct {
	Axis          string
	ControlPoints int
	Knots         int
	Degree        int
}

func (e *DimensionError) Error() string {
	axis := ""
	if e.Axis != "" {
		axis = " in " + e.Axis + " direction"
	}
	return fmt.Sprintf("%d control points with degree %d require %d knots%s, got %d",
		e.ControlPoints, e.Degree, e.ControlPoints+e.Degree+1, axis, e.Knots)
}
