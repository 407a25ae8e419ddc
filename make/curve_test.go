package make

import (
	"errors"
	"math"
	"testing"

	"github.com/4ndr345/enneper"
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

func mustPoint(t *testing.T, c *enneper.NurbsCurve, u float64) vec3.T {
	t.Helper()
	pt, err := c.Point(u)
	if err != nil {
		t.Fatal(err)
	}
	return pt
}

var (
	origin = vec3.T{0, 0, 0}
	xaxis  = vec3.T{1, 0, 0}
	yaxis  = vec3.T{0, 1, 0}
	zaxis  = vec3.T{0, 0, 1}
)

func TestArc(t *testing.T) {
	arc, err := Arc(&origin, &xaxis, &yaxis, 1, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, []float64{0, 0, 0, 1, 1, 1}, arc.Knots())
	diff(t, []float64{1, math.Sqrt2 / 2, 1}, arc.Weights(), approx)
	diff(t, []vec3.T{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, arc.ControlPoints(), approx)

	// the midpoint of the parameter range is the midpoint of the arc
	diff(t, vec3.T{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}, mustPoint(t, arc, 0.5), approx)
}

func TestCircle(t *testing.T) {
	center := vec3.T{1, 2, 3}
	circle, err := Circle(&center, &xaxis, &yaxis, 2)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, []float64{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1}, circle.Knots())
	diff(t, vec3.T{3, 2, 3}, mustPoint(t, circle, 0), approx)
	diff(t, vec3.T{1, 4, 3}, mustPoint(t, circle, 0.25), approx)
	diff(t, vec3.T{3, 2, 3}, mustPoint(t, circle, 1), approx)

	for _, s := range circle.RegularSample(40) {
		if d := vec3.Distance(&s.Pt, &center); math.Abs(d-2) > 1e-9 {
			t.Errorf("point at %g is %g from the center, want 2", s.U, d)
		}
	}
}

func TestArcCount(t *testing.T) {
	tests := []struct {
		theta float64
		knots []float64
	}{
		{math.Pi / 3, []float64{0, 0, 0, 1, 1, 1}},
		{math.Pi, []float64{0, 0, 0, 0.5, 0.5, 1, 1, 1}},
		{3 * math.Pi / 2, []float64{0, 0, 0, 1. / 3, 1. / 3, 2. / 3, 2. / 3, 1, 1, 1}},
	}
	for _, tt := range tests {
		arc, err := Arc(&origin, &xaxis, &yaxis, 1, 0, tt.theta)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.knots, arc.Knots(), approx)

		want := vec3.T{math.Cos(tt.theta), math.Sin(tt.theta), 0}
		diff(t, want, mustPoint(t, arc, 1), approx)
	}

	if _, err := Arc(&origin, &xaxis, &yaxis, 1, 1, 1); !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("got error %v, want %v", err, ErrInvalidAngle)
	}
	if _, err := Arc(&origin, &xaxis, &yaxis, 1, 0, 7); !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("got error %v, want %v", err, ErrInvalidAngle)
	}
}

func TestEllipseArc(t *testing.T) {
	center := vec3.T{-1, 0, 0}
	a, b := vec3.T{3, 0, 0}, vec3.T{0, 0, 2}

	ellipse, err := EllipseArc(&center, &a, &b, math.Pi/4, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}

	start := vec3.T{-1 + 3*math.Cos(math.Pi/4), 0, 2 * math.Sin(math.Pi/4)}
	diff(t, start, mustPoint(t, ellipse, 0), approx)
	diff(t, vec3.T{2, 0, 0}, mustPoint(t, ellipse, 1), approx)

	for _, s := range ellipse.RegularSample(30) {
		x, z := (s.Pt[0]+1)/3, s.Pt[2]/2
		if d := x*x + z*z; math.Abs(d-1) > 1e-9 || s.Pt[1] != 0 {
			t.Errorf("point %v at %g is off the ellipse", s.Pt, s.U)
		}
	}
}

func TestPolyline(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {3, 0, 0}, {3, 4, 0}}
	pl, err := Polyline(pts)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, 1, pl.Degree())
	diff(t, []float64{0, 0, 3. / 7, 1, 1}, pl.Knots(), approx)
	diff(t, vec3.T{3, 0, 0}, mustPoint(t, pl, 3./7), approx)
	diff(t, vec3.T{3, 2, 0}, mustPoint(t, pl, 5./7), approx)

	if _, err := Polyline(pts[:1]); !errors.Is(err, enneper.ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, enneper.ErrTooFewPoints)
	}
	if _, err := Line(&origin, &origin); !errors.Is(err, ErrCoincidentPoints) {
		t.Errorf("got error %v, want %v", err, ErrCoincidentPoints)
	}
}

func TestBezierCurve(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {1, 2, 0}, {3, 2, 0}, {4, 0, 0}}
	c, err := BezierCurve(pts)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, c.Knots())
	diff(t, vec3.T{2, 1.5, 0}, mustPoint(t, c, 0.5), approx)
	diff(t, pts[3], mustPoint(t, c, 1), approx)
}
