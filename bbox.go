package enneper

import "github.com/4ndr345/enneper/intersect"

// BoundingBox bounds the control polygon, which by the convex hull property
// of positively weighted NURBS also bounds the curve.
func (this *NurbsCurve) BoundingBox() *intersect.BoundingBox {
	return new(intersect.BoundingBox).AddRange(this.ControlPoints())
}

// BoundingBox bounds the control grid and with it the surface.
func (this *NurbsSurface) BoundingBox() *intersect.BoundingBox {
	bb := new(intersect.BoundingBox)
	for _, row := range this.ControlPoints() {
		bb.AddRange(row)
	}

	return bb
}

func (this *Mesh) BoundingBox() *intersect.BoundingBox {
	return new(intersect.BoundingBox).AddRange(this.Points)
}
