package intersect

import (
	"errors"

	"github.com/4ndr345/enneper/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

var ErrParallel = errors.New("lines are parallel")

//
// Find the closest parameter on two lines
//
// **params**
// + origin of line 0
// + direction of line 0, need not be normalized
// + origin of line 1
// + direction of line 1, need not be normalized
//
// **returns**
// + the closest points on both lines and their parameters, measured in
// multiples of the direction vectors
//
func Lines(p0, d0, p1, d1 *vec3.T) (LineLineIntersection, error) {
	p13 := vec3.Sub(p0, p1)

	d1343 := vec3.Dot(&p13, d1)
	d4321 := vec3.Dot(d1, d0)
	d1321 := vec3.Dot(&p13, d0)
	d4343 := vec3.Dot(d1, d1)
	d2121 := vec3.Dot(d0, d0)

	denom := d2121*d4343 - d4321*d4321
	if !(denom > internal.Epsilon*d2121*d4343) {
		return LineLineIntersection{}, ErrParallel
	}

	mua := (d1343*d4321 - d1321*d4343) / denom
	mub := (d1343 + d4321*mua) / d4343

	s0 := d0.Scaled(mua)
	s1 := d1.Scaled(mub)

	return LineLineIntersection{
		Point0: vec3.Add(p0, &s0),
		Point1: vec3.Add(p1, &s1),
		U0:     mua,
		U1:     mub,
	}, nil
}
