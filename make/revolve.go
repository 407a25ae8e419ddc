package make

import (
	"errors"
	"fmt"
	"math"

	"github.com/4ndr345/enneper"
	"github.com/4ndr345/enneper/internal"
	"github.com/4ndr345/enneper/intersect"
	"github.com/ungerik/go3d/float64/vec3"
)

var ErrZeroAxis = errors.New("rotation axis must not be zero")

// Generate the control points, weights, and knots of a revolved surface
// (Corresponds to Algorithm A8.1 from Piegl & Tiller)
//
// **params**
// + the generatrix, which becomes the v direction of the surface
// + a point on the rotation axis
// + direction of the rotation axis, need not be normalized
// + angle to revolve around axis, in (0, 2pi]
//
// **returns**
// + a surface of degree 2 in u, made of up to 4 rational arcs, and the
// profile's degree and knots in v
func RevolvedSurface(profile *enneper.NurbsCurve, center *vec3.T, axis *vec3.T, theta float64) (*enneper.NurbsSurface, error) {
	if axis.Length() < internal.Epsilon {
		return nil, ErrZeroAxis
	}
	axisNorm := axis.Normalized()

	narcs, err := arcCount(theta)
	if err != nil {
		return nil, err
	}

	profControlPoints := profile.ControlPoints()
	profWeights := profile.Weights()

	dtheta := theta / float64(narcs) // divide the interval into several points
	wm := math.Cos(dtheta / 2)

	sines, cosines := make([]float64, narcs+1), make([]float64, narcs+1)
	var angle float64
	for i := 1; i <= narcs; i++ {
		angle += dtheta
		cosines[i] = math.Cos(angle)
		sines[i] = math.Sin(angle)
	}

	controlPoints := make([][]vec3.T, 2*narcs+1)
	weights := make([][]float64, 2*narcs+1)
	for i := range controlPoints {
		controlPoints[i] = make([]vec3.T, len(profControlPoints))
		weights[i] = make([]float64, len(profControlPoints))
	}

	axisRay := internal.Ray{Origin: *center, Dir: axisNorm}

	// for each pt in the generatrix
	// i.e. for each column of the control grid
	for j, P := range profControlPoints {
		// foot of the generatrix point on the axis
		O := axisRay.ClosestPoint(P)
		// X is the vector from the axis to generatrix control pt
		X := vec3.Sub(&P, &O)
		// radius at that height
		r := X.Length()

		// the first row is just the generatrix
		controlPoints[0][j] = P
		weights[0][j] = profWeights[j]

		if r < internal.KnotEpsilon {
			// the point stays on the axis in every row
			for i := 1; i <= 2*narcs; i++ {
				controlPoints[i][j] = P
				weights[i][j] = profWeights[j]
				if i%2 == 1 {
					weights[i][j] *= wm
				}
			}
			continue
		}

		X.Scale(1 / r)
		// Y is perpendicular to X and axis, and completes the coordinate system
		Y := vec3.Cross(&axisNorm, &X)

		P0 := P
		T0 := Y
		var index int

		// proceed around the circle
		for i := 1; i <= narcs; i++ {
			// O + r * cos(theta) * X + r * sin(theta) * Y
			xCompon := X.Scaled(r * cosines[i])
			yCompon := Y.Scaled(r * sines[i])
			offset := vec3.Add(&xCompon, &yCompon)
			P2 := vec3.Add(&O, &offset)

			controlPoints[index+2][j] = P2
			weights[index+2][j] = profWeights[j]

			// tangent to the rotation at P2
			temp0 := Y.Scaled(cosines[i])
			temp1 := X.Scaled(sines[i])
			T2 := vec3.Sub(&temp0, &temp1)

			inters, err := intersect.Lines(&P0, &T0, &P2, &T2)
			if err != nil {
				return nil, fmt.Errorf("revolving control point %d: %w", j, err)
			}

			controlPoints[index+1][j] = inters.Point0
			weights[index+1][j] = wm * profWeights[j]

			index += 2

			if i < narcs {
				P0 = P2
				T0 = T2
			}
		}
	}

	enneper.Logger().Debug("built revolved surface",
		"arcs", narcs,
		"controlPointsU", len(controlPoints),
		"controlPointsV", len(profControlPoints))

	return enneper.NewNurbsSurfaceUnchecked(2, profile.Degree(), controlPoints, weights, arcKnots(narcs), profile.Knots()), nil
}

//
// Generate the control points, weights, and knots of a sphere
//
// **params**
// + the center of the sphere
// + normalized axis of sphere
// + vector perpendicular to axis of sphere, starting the rotation of the sphere
// + radius of the sphere
//
// **returns**
// + a surface with u running around the axis and v from pole to pole
//
func SphericalSurface(center *vec3.T, axis, xaxis *vec3.T, radius float64) (*enneper.NurbsSurface, error) {
	invAxis := axis.Inverted()
	arc, err := Arc(center, &invAxis, xaxis, radius, 0, math.Pi)
	if err != nil {
		return nil, err
	}

	return RevolvedSurface(arc, center, axis, 2*math.Pi)
}

//
// Generate the control points, weights, and knots of a cone
//
// **params**
// + normalized axis of cone
// + normalized vector perpendicular to the axis
// + position of base of cone
// + height from base to tip
// + radius at the base of the cone
//
// **returns**
// + a surface with u running around the axis and v from the tip to the base
//
func ConicalSurface(axis, xaxis *vec3.T, base *vec3.T, height, radius float64) (*enneper.NurbsSurface, error) {
	heightCompon := axis.Scaled(height)
	radiusCompon := xaxis.Scaled(radius)
	tip := vec3.Add(base, &heightCompon)
	rim := vec3.Add(base, &radiusCompon)

	prof, err := Line(&tip, &rim)
	if err != nil {
		return nil, err
	}

	return RevolvedSurface(prof, base, axis, 2*math.Pi)
}
