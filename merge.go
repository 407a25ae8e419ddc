package enneper

import (
	"fmt"

	. "github.com/4ndr345/enneper/internal"
	"gonum.org/v1/gonum/floats/scalar"
)

// MergeKnots refines two curves of equal degree and domain until they share
// one knot vector. Each curve receives the knots, with multiplicity, that
// only the other one holds. The traces of both curves are unchanged.
//
// Knots outside the domain cannot be inserted, so unclamped curves whose
// outer knots differ fail with ErrKnotMismatch.
func MergeKnots(c0, c1 *NurbsCurve) (*NurbsCurve, *NurbsCurve, error) {
	if c0.degree != c1.degree {
		return nil, nil, fmt.Errorf("degrees %d and %d: %w", c0.degree, c1.degree, ErrDegreeMismatch)
	}

	min0, max0 := c0.Domain()
	min1, max1 := c1.Domain()
	if !scalar.EqualWithinAbs(min0, min1, Epsilon) || !scalar.EqualWithinAbs(max0, max1, Epsilon) {
		return nil, nil, fmt.Errorf("[%g, %g] and [%g, %g]: %w", min0, max0, min1, max1, ErrDomainMismatch)
	}

	missing0 := inDomain(c0.knots.Missing(c1.knots), c0.degree, c0.knots)
	missing1 := inDomain(c1.knots.Missing(c0.knots), c1.degree, c1.knots)

	merged0 := c0.knotRefine(missing0)
	merged1 := c1.knotRefine(missing1)

	shared := c0.knots.Union(c1.knots)
	if !sameKnots(merged0.knots, shared) || !sameKnots(merged1.knots, shared) {
		return nil, nil, ErrKnotMismatch
	}
	merged1.knots = merged0.knots.Clone()

	Logger().Debug("merged curve knots",
		"missing0", len(missing0),
		"missing1", len(missing1),
		"knots", len(merged0.knots))

	return merged0, merged1, nil
}

// inDomain keeps the knots of x that refinement of a curve with the given
// degree and knots can insert.
func inDomain(x KnotVec, degree int, knots KnotVec) KnotVec {
	result := x[:0:0]
	for _, knot := range x {
		if knots.InDomain(degree, knot) {
			result = append(result, knot)
		}
	}

	return result
}

func sameKnots(a, b KnotVec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], Epsilon) {
			return false
		}
	}

	return true
}
