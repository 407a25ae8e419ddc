package enneper

import (
	"errors"
	"math"
	"testing"
)

func TestFindSpan(t *testing.T) {
	knots := []float64{0, 0, 0, 1, 2, 3, 4, 4, 5, 5, 5}

	tests := []struct {
		u    float64
		want int
	}{
		{0, 2},
		{2.5, 4},
		{4, 7},
		{5, 7},
	}
	for _, tt := range tests {
		got, err := FindSpan(2, knots, tt.u)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("FindSpan(2, knots, %g) = %d, want %d", tt.u, got, tt.want)
		}
	}

	for _, u := range []float64{-1, 5.5, math.NaN()} {
		_, err := FindSpan(2, knots, u)
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("FindSpan(2, knots, %g): got error %v, want *DomainError", u, err)
		}
		if domainErr.Min != 0 || domainErr.Max != 5 {
			t.Errorf("got domain [%g, %g], want [0, 5]", domainErr.Min, domainErr.Max)
		}
	}

	if _, err := FindSpan(3, []float64{0, 1}, 0.5); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
	for _, degree := range []int{0, -1} {
		if _, err := FindSpan(degree, knots, 0.5); !errors.Is(err, ErrInvalidDegree) {
			t.Errorf("degree %d: got error %v, want %v", degree, err, ErrInvalidDegree)
		}
	}
}

func TestBasisFunctions(t *testing.T) {
	knots := []float64{0, 0, 0, 1, 2, 3, 4, 4, 5, 5, 5}

	span, err := FindSpan(2, knots, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := BasisFunctions(span, 2.5, 2, knots)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0.125, 0.75, 0.125}, got)

	// only the last basis function is non-zero at the right end
	span, err = FindSpan(2, knots, 5)
	if err != nil {
		t.Fatal(err)
	}
	got, err = BasisFunctions(span, 5, 2, knots)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0, 0, 1}, got)

	for _, span := range []int{1, 8} {
		if _, err := BasisFunctions(span, 2.5, 2, knots); !errors.Is(err, ErrInvalidSpan) {
			t.Errorf("span %d: got error %v, want %v", span, err, ErrInvalidSpan)
		}
	}
	if _, err := BasisFunctions(2, 0.5, 2, knots[:5]); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
}
