package make

import (
	"github.com/4ndr345/enneper"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate the control points, weights, and knots of an extruded surface
//
// **params**
// + axis of the extrusion
// + length of the extrusion
// + the profile curve
//
// **returns**
// + a ruled surface from the profile at v = 0 to its translated copy at v = 1
func ExtrudedSurface(axis *vec3.T, length float64, profile *enneper.NurbsCurve) (*enneper.NurbsSurface, error) {
	translation := axis.Scaled(length)

	mat := mat4.Ident
	mat.SetTranslation(&translation)

	return RuledSurface(profile, profile.Transform(&mat))
}

// Generate the control points, weights, and knots of a cylinder
//
// **params**
// + normalized axis of cylinder
// + xaxis in plane of cylinder
// + position of base of cylinder
// + height from base to top
// + radius of the cylinder
//
// **returns**
// + a surface with u running around the axis and v from base to top
func CylindricalSurface(axis, xaxis *vec3.T, base *vec3.T, height, radius float64) (*enneper.NurbsSurface, error) {
	yaxis := vec3.Cross(axis, xaxis)
	circ, err := Circle(base, xaxis, &yaxis, radius)
	if err != nil {
		return nil, err
	}

	return ExtrudedSurface(axis, height, circ)
}
