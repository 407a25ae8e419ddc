package make

import (
	"errors"
	"fmt"
	"math"

	"github.com/4ndr345/enneper"
	"github.com/4ndr345/enneper/intersect"
	"github.com/ungerik/go3d/float64/vec3"
)

var ErrInvalidAngle = errors.New("sweep angle must be in (0, 2pi]")

// Generate the control points, weights, and knots of an arbitrary arc
// (Corresponds to Algorithm A7.1 from Piegl & Tiller)
//
// **params**
// + the center of the arc
// + the xaxis of the arc
// + orthogonal yaxis of the arc
// + radius of the arc
// + start angle of the arc, between 0 and 2pi
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a NURBS curve of degree 2
func Arc(center *vec3.T, xaxis, yaxis *vec3.T, radius float64, startAngle, endAngle float64) (*enneper.NurbsCurve, error) {
	xaxisScaled, yaxisScaled := xaxis.Scaled(radius), yaxis.Scaled(radius)
	return EllipseArc(center, &xaxisScaled, &yaxisScaled, startAngle, endAngle)
}

// Create a circle
//
// **params**
// + Length 3 array representing the center of the circle
// + Length 3 array representing the xaxis
// + Length 3 array representing the perpendicular yaxis
// + Radius of the circle
func Circle(center *vec3.T, xaxis, yaxis *vec3.T, radius float64) (*enneper.NurbsCurve, error) {
	return Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi)
}

func Ellipse(center *vec3.T, xaxis, yaxis *vec3.T) (*enneper.NurbsCurve, error) {
	return EllipseArc(center, xaxis, yaxis, 0, 2*math.Pi)
}

// Generate the control points, weights, and knots of an elliptical arc
//
// **params**
// + the center
// + the scaled x axis
// + the scaled y axis
// + start angle of the ellipse arc, between 0 and 2pi, where 0 points at the xaxis
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a NURBS curve of degree 2 made of up to 4 rational arcs
func EllipseArc(center *vec3.T, xaxis, yaxis *vec3.T, startAngle, endAngle float64) (*enneper.NurbsCurve, error) {
	xradius, yradius := xaxis.Length(), yaxis.Length()

	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	// if the end angle is less than the start angle, do a circle
	if endAngle < startAngle {
		endAngle = 2.0*math.Pi + startAngle
	}

	theta := endAngle - startAngle
	numArcs, err := arcCount(theta)
	if err != nil {
		return nil, err
	}

	dtheta := theta / float64(numArcs)
	w1 := math.Cos(dtheta / 2)

	ellipsePoint := func(angle float64) vec3.T {
		xCompon := xaxisNorm.Scaled(xradius * math.Cos(angle))
		yCompon := yaxisNorm.Scaled(yradius * math.Sin(angle))
		offset := vec3.Add(&xCompon, &yCompon)
		return vec3.Add(center, &offset)
	}

	ellipseTangent := func(angle float64) vec3.T {
		temp0 := yaxisNorm.Scaled(yradius * math.Cos(angle))
		temp1 := xaxisNorm.Scaled(xradius * math.Sin(angle))
		return vec3.Sub(&temp0, &temp1)
	}

	P0 := ellipsePoint(startAngle)
	T0 := ellipseTangent(startAngle)

	controlPoints := make([]vec3.T, 2*numArcs+1)
	weights := make([]float64, 2*numArcs+1)
	index := 0
	angle := startAngle

	controlPoints[0] = P0
	weights[0] = 1.0

	for i := 1; i <= numArcs; i++ {
		angle += dtheta
		P2 := ellipsePoint(angle)
		T2 := ellipseTangent(angle)

		weights[index+2] = 1
		controlPoints[index+2] = P2

		inters, err := intersect.Lines(&P0, &T0, &P2, &T2)
		if err != nil {
			return nil, fmt.Errorf("arc %d of %d: %w", i, numArcs, err)
		}

		weights[index+1] = w1
		controlPoints[index+1] = inters.Point0

		index += 2

		if i < numArcs {
			P0 = P2
			T0 = T2
		}
	}

	return enneper.NewNurbsCurveUnchecked(2, controlPoints, weights, arcKnots(numArcs)), nil
}

// arcCount is the number of rational quadratic arcs, each spanning at most
// 90 degrees, needed for a sweep of theta radians.
func arcCount(theta float64) (int, error) {
	switch {
	case !(theta > 0) || theta > 2*math.Pi+1e-12:
		return 0, fmt.Errorf("%g: %w", theta, ErrInvalidAngle)
	case theta <= math.Pi/2:
		return 1, nil
	case theta <= math.Pi:
		return 2, nil
	case theta <= 3*math.Pi/2:
		return 3, nil
	default:
		return 4, nil
	}
}

// arcKnots returns the degree 2 knot vector of numArcs joined arcs, with a
// double knot at every joint: [0,0,0, 1/k,1/k, .., 1,1,1].
func arcKnots(numArcs int) []float64 {
	knots := make([]float64, 2*numArcs+4)

	j := 2*numArcs + 1
	for i := 0; i < 3; i++ {
		knots[i] = 0.0
		knots[i+j] = 1.0
	}

	for i := 1; i < numArcs; i++ {
		knot := float64(i) / float64(numArcs)
		knots[2*i+1] = knot
		knots[2*i+2] = knot
	}

	return knots
}

// generate the control points, weights, and knots for a bezier curve of any degree
//
// **params**
// + the control points, at least 2
//
// **returns**
// + a non-rational curve of degree len(controlPoints)-1 with a single span
func BezierCurve(controlPoints []vec3.T) (*enneper.NurbsCurve, error) {
	degree := len(controlPoints) - 1

	// build uniform weights
	weights := make([]float64, len(controlPoints))
	for i := range weights {
		weights[i] = 1
	}

	knots := make([]float64, 2*degree+2)
	for i := degree + 1; i < len(knots); i++ {
		knots[i] = 1
	}

	return enneper.NewNurbsCurve(degree, controlPoints, weights, knots)
}
