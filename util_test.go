package enneper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// The NURBS Book 2nd edition: example 4.1 (page 122), a 2d rational curve
// given in homogeneous coordinates.
func bookCurve(t *testing.T) *NurbsCurve {
	t.Helper()
	c, err := NewNurbsCurveHomogeneous(2, [][]float64{
		{0, 0, 1},
		{4, 4, 4},
		{3, 2, 1},
		{4, 1, 1},
		{5, -1, 1},
	}, []float64{0, 0, 0, 1, 2, 3, 3, 3})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustPoint(t *testing.T, c *NurbsCurve, u float64) vec3.T {
	t.Helper()
	pt, err := c.Point(u)
	if err != nil {
		t.Fatal(err)
	}
	return pt
}

func mustSurfacePoint(t *testing.T, s *NurbsSurface, uv UV) vec3.T {
	t.Helper()
	pt, err := s.Point(uv)
	if err != nil {
		t.Fatal(err)
	}
	return pt
}

// sameTrace compares two curves sharing one domain at evenly spaced
// parameters.
func sameTrace(t *testing.T, want, got *NurbsCurve) {
	t.Helper()
	min, max := want.Domain()
	const n = 25
	for i := 0; i <= n; i++ {
		u := min + (max-min)*float64(i)/n
		diff(t, mustPoint(t, want, u), mustPoint(t, got, u), approx)
	}
}
