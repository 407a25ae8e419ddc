package make

import (
	"github.com/4ndr345/enneper"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate the control points, weights, and knots of a surface defined by 4 points
//
// **params**
// + first point in counter-clockwise form
// + second point in counter-clockwise form
// + third point in counter-clockwise form
// + forth point in counter-clockwise form
//
// **returns**
// + a bilinear surface through p1 at (0, 0), p2 at (1, 0), p3 at (1, 1) and
// p4 at (0, 1)
func FourPointSurface(p1, p2, p3, p4 *vec3.T) (*enneper.NurbsSurface, error) {
	bottom, err := Line(p1, p2)
	if err != nil {
		return nil, err
	}

	top, err := Line(p4, p3)
	if err != nil {
		return nil, err
	}

	return RuledSurface(bottom, top)
}
