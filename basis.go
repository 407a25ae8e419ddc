package enneper

import (
	"fmt"
	"math"

	"github.com/4ndr345/enneper/internal"
)

// FindSpan locates the knot span i with knots[i] <= u < knots[i+1] for a
// curve of the given degree. The right end of the domain maps to the last
// non-empty span. Parameters outside [knots[degree], knots[n+1]] yield a
// *DomainError.
func FindSpan(degree int, knots []float64, u float64) (int, error) {
	if err := checkBasis(degree, knots); err != nil {
		return 0, err
	}

	kv := internal.KnotVec(knots)
	if math.IsNaN(u) || !kv.InDomain(degree, u) {
		min, max := kv.Domain(degree)
		return 0, &DomainError{Param: u, Min: min, Max: max}
	}

	return kv.Span(degree, u), nil
}

// BasisFunctions computes the degree+1 basis functions N[span-degree ..
// span] that are non-zero at u, span being the result of FindSpan.
func BasisFunctions(span int, u float64, degree int, knots []float64) ([]float64, error) {
	if err := checkBasis(degree, knots); err != nil {
		return nil, err
	}
	if n := len(knots) - degree - 2; span < degree || span > n {
		return nil, fmt.Errorf("span %d not in [%d, %d]: %w", span, degree, n, ErrInvalidSpan)
	}

	return internal.BasisFunctionsGivenKnotSpanIndex(span, u, degree, knots), nil
}

// checkBasis requires at least one basis function of the given degree.
func checkBasis(degree int, knots []float64) error {
	if degree < 1 {
		return ErrInvalidDegree
	}
	if len(knots) < 2*degree+2 {
		return fmt.Errorf("%d knots for degree %d: %w", len(knots), degree, ErrTooFewPoints)
	}

	return nil
}
