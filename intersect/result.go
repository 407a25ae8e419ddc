package intersect

import "github.com/ungerik/go3d/float64/vec3"

type (
	// LineLineIntersection holds the closest points of two lines
	// p0 + U0*d0 and p1 + U1*d1. Point0 and Point1 coincide when the lines
	// truly intersect.
	LineLineIntersection struct {
		Point0, Point1 vec3.T
		U0, U1         float64
	}
)
