package intersect

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

var cmpAllow = cmp.AllowUnexported(BoundingBox{})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name           string
		p0, d0, p1, d1 vec3.T
		want           LineLineIntersection
	}{
		{
			"crossing",
			vec3.T{0, 0, 0}, vec3.T{2, 0, 0},
			vec3.T{1, -1, 0}, vec3.T{0, 1, 0},
			LineLineIntersection{vec3.T{1, 0, 0}, vec3.T{1, 0, 0}, 0.5, 1},
		},
		{
			"skew",
			vec3.T{0, 0, 0}, vec3.T{1, 0, 0},
			vec3.T{0, 1, 1}, vec3.T{0, 0, 1},
			LineLineIntersection{vec3.T{0, 0, 0}, vec3.T{0, 1, 0}, 0, -1},
		},
		{
			"oblique",
			vec3.T{1, 0, 0}, vec3.T{0, 1, 0},
			vec3.T{0, 1, 0}, vec3.T{1, 0, 0},
			LineLineIntersection{vec3.T{1, 1, 0}, vec3.T{1, 1, 0}, 1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(&tt.p0, &tt.d0, &tt.p1, &tt.d1)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-12))
		})
	}
}

func TestLinesParallel(t *testing.T) {
	p0, d0 := vec3.T{0, 0, 0}, vec3.T{1, 1, 0}
	p1, d1 := vec3.T{0, 1, 0}, vec3.T{-2, -2, 0}

	if _, err := Lines(&p0, &d0, &p1, &d1); !errors.Is(err, ErrParallel) {
		t.Errorf("got error %v, want %v", err, ErrParallel)
	}

	var zero vec3.T
	if _, err := Lines(&p0, &zero, &p1, &d1); !errors.Is(err, ErrParallel) {
		t.Errorf("got error %v for a zero direction, want %v", err, ErrParallel)
	}
}
