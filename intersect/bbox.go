package intersect

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// BoundingBox is an axis aligned box. The zero value is an empty box
// ready to use.
type BoundingBox struct {
	Min, Max vec3.T
	nonEmpty bool
}

func (this *BoundingBox) Empty() bool {
	return !this.nonEmpty
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.nonEmpty {
		this.Min, this.Max = *point, *point
		this.nonEmpty = true

		return this
	}

	for i, val := range point {
		this.Min[i] = math.Min(this.Min[i], val)
		this.Max[i] = math.Max(this.Max[i], val)
	}

	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

// Union expands the box to enclose bb as well.
func (this *BoundingBox) Union(bb *BoundingBox) *BoundingBox {
	if bb.nonEmpty {
		this.Add(&bb.Min).Add(&bb.Max)
	}

	return this
}

// Determines if point is contained in the bounding box grown by tol on
// every side
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.nonEmpty {
		return false
	}

	for i, val := range point {
		if val < this.Min[i]-tol || val > this.Max[i]+tol {
			return false
		}
	}

	return true
}

// Determines if this bounding box intersects with another
//
// **params**
// + BoundingBox to check for intersection with this one
// + gap between the boxes still counted as an intersection
//
// **returns**
// +  true if the two bounding boxes intersect, otherwise false
func (this *BoundingBox) Intersects(bb *BoundingBox, tol float64) bool {
	if !this.nonEmpty || !bb.nonEmpty {
		return false
	}

	for i := range this.Min {
		if this.Min[i]-tol > bb.Max[i] || bb.Min[i]-tol > this.Max[i] {
			return false
		}
	}

	return true
}

// Get longest axis of bounding box
//
// **returns**
// + Index of longest axis
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		l := this.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}

// Get length of given axis.
//
// **params**
// + Index of axis to inspect (between 0 and 2)
//
// **returns**
// + Length of the given axis.  If axis is out of bounds, returns 0.
func (this *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return this.Max[i] - this.Min[i]
}
