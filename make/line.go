package make

import (
	"errors"

	"github.com/4ndr345/enneper"
	"github.com/4ndr345/enneper/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

var ErrCoincidentPoints = errors.New("polyline points must not all coincide")

func Line(first, last *vec3.T) (*enneper.NurbsCurve, error) {
	return Polyline([]vec3.T{*first, *last})
}

// Generate the control points, weights, and knots of a polyline curve
//
// **params**
// + array of points in curve, at least 2
//
// **returns**
// + a curve of degree 1 parameterized by chord length on [0, 1]
func Polyline(pts []vec3.T) (*enneper.NurbsCurve, error) {
	if len(pts) < 2 {
		return nil, enneper.ErrTooFewPoints
	}

	knots := make([]float64, len(pts)+2)

	var lsum float64
	for i := 0; i < len(pts)-1; i++ {
		lsum += vec3.Distance(&pts[i], &pts[i+1])
		knots[i+2] = lsum
	}
	knots[len(knots)-1] = lsum

	if lsum < internal.Epsilon {
		return nil, ErrCoincidentPoints
	}

	// normalize the knot array
	for i := range knots {
		knots[i] /= lsum
	}

	weights := make([]float64, len(pts))
	for i := range weights {
		weights[i] = 1
	}

	return enneper.NewNurbsCurve(1, pts, weights, knots)
}
