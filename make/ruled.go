package make

import (
	"fmt"

	"github.com/4ndr345/enneper"
	"github.com/4ndr345/enneper/internal"
	"gonum.org/v1/gonum/floats/scalar"
)

// RuledSurface generates the surface swept by straight lines joining two
// curves of equal degree. Curves on different domains are first
// reparameterized onto [0, 1]. Both are refined to a common knot vector; the
// surface runs along the curves in u, and linearly from c0 at v = 0 to c1
// at v = 1.
func RuledSurface(c0, c1 *enneper.NurbsCurve) (*enneper.NurbsSurface, error) {
	if c0.Degree() != c1.Degree() {
		return nil, fmt.Errorf("ruled surface between degrees %d and %d: %w",
			c0.Degree(), c1.Degree(), enneper.ErrDegreeMismatch)
	}

	min0, max0 := c0.Domain()
	min1, max1 := c1.Domain()
	if !scalar.EqualWithinAbs(min0, min1, internal.Epsilon) || !scalar.EqualWithinAbs(max0, max1, internal.Epsilon) {
		c0, c1 = c0.Reparameterized(0, 1), c1.Reparameterized(0, 1)
	}

	merged0, merged1, err := enneper.MergeKnots(c0, c1)
	if err != nil {
		return nil, fmt.Errorf("ruled surface: %w", err)
	}

	dim := max(merged0.Dim(), merged1.Dim())
	pts0 := merged0.HomogeneousControlPoints()
	pts1 := merged1.HomogeneousControlPoints()

	controlPoints := make([][][]float64, len(pts0))
	for i := range controlPoints {
		controlPoints[i] = [][]float64{
			padded(pts0[i], dim),
			padded(pts1[i], dim),
		}
	}

	srf, err := enneper.NewNurbsSurfaceHomogeneous(
		merged0.Degree(), 1,
		controlPoints,
		merged0.Knots(), []float64{0, 0, 1, 1},
	)
	if err != nil {
		return nil, fmt.Errorf("ruled surface: %w", err)
	}

	enneper.Logger().Debug("built ruled surface",
		"degreeU", srf.DegreeU(),
		"controlPointsU", len(controlPoints))

	return srf, nil
}

// padded widens a homogeneous point (w*x, .., w) to dim cartesian
// coordinates, keeping the weight last.
func padded(homoPt []float64, dim int) []float64 {
	if len(homoPt) == dim+1 {
		return homoPt
	}

	result := make([]float64, dim+1)
	copy(result, homoPt[:len(homoPt)-1])
	result[dim] = homoPt[len(homoPt)-1]

	return result
}
