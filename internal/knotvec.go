package internal

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

type KnotVec []float64

// Clone copies the vector. A nil vector stays nil, an empty one stays empty.
func (this KnotVec) Clone() KnotVec {
	if this == nil {
		return nil
	}
	return append(make(KnotVec, 0, len(this)), this...)
}

// Domain returns the valid parameter range [U[p], U[n+1]] for the given degree.
func (this KnotVec) Domain(degree int) (min, max float64) {
	return this[degree], this[len(this)-degree-1]
}

// Find the span on the knot vector without supplying n.
// Parameters outside the domain are clamped to the first or last span.
func (this KnotVec) Span(degree int, u float64) int {
	n := len(this) - degree - 2

	return this.SpanGivenN(n, degree, u)
}

// InDomain reports whether u lies within the domain, up to Epsilon.
func (this KnotVec) InDomain(degree int, u float64) bool {
	min, max := this.Domain(degree)
	return u >= min-Epsilon && u <= max+Epsilon
}

// Find the span on the knot vector of the given parameter
// (corresponds to algorithm 2.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + integer number of basis functions - 1 = knots.length - degree - 2
// + integer degree of function
// + parameter
//
// **returns**
// + the index of the knot span
//
func (this KnotVec) SpanGivenN(n int, degree int, u float64) int {
	if u >= this[n+1] {
		return n
	}

	if u <= this[degree] {
		// skip over repeated leading knots so the span is non-empty
		low := degree
		for low < n && this[low+1] <= u {
			low++
		}
		return low
	}

	low, high := degree, n+1
	mid := (low + high) / 2

	for u < this[mid] || u >= this[mid+1] {
		if u < this[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

//
// Determine the multiplicities of the values in a knot vector
//
// **returns**
// + slice of (knot value, multiplicity) pairs in increasing order
//
func (this KnotVec) Multiplicities() []KnotMultiplicity {
	if len(this) == 0 {
		return nil
	}

	mults := []KnotMultiplicity{{this[0], 0}}

	var currI int
	for _, knot := range this {
		if !scalar.EqualWithinAbs(knot, mults[currI].Knot, Epsilon) {
			mults = append(mults, KnotMultiplicity{knot, 0})
			currI++
		}

		mults[currI].Mult++
	}

	return mults
}

func (this KnotVec) IsNonDecreasing() bool {
	if len(this) == 0 || floats.HasNaN(this) {
		return false
	}

	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep-Epsilon {
			return false
		}
		rep = knot
	}
	return true
}

// Missing walks this vector and other in parallel and collects the knots,
// with multiplicity, that other contains but this does not. Both vectors
// must be non-decreasing.
func (this KnotVec) Missing(other KnotVec) KnotVec {
	missing := make(KnotVec, 0)

	var thisI, otherI int
	for thisI < len(this) && otherI < len(other) {
		switch a, b := this[thisI], other[otherI]; {
		case scalar.EqualWithinAbs(a, b, Epsilon):
			thisI++
			otherI++
		case a < b:
			thisI++
		default:
			missing = append(missing, b)
			otherI++
		}
	}

	return missing
}

// Rescaled maps the vector linearly onto [min, max].
func (this KnotVec) Rescaled(min, max float64) KnotVec {
	first, last := this[0], this[len(this)-1]
	scale := (max - min) / (last - first)

	result := make(KnotVec, len(this))
	for i, knot := range this {
		result[i] = min + (knot-first)*scale
	}
	// pin the ends so they compare exactly
	result[0], result[len(result)-1] = min, max

	return result
}

func (this KnotVec) Reversed() KnotVec {
	l := make(KnotVec, len(this))
	l[0] = this[0]

	length := len(this)
	for i := 1; i < length; i++ {
		l[i] = l[i-1] + (this[length-i] - this[length-i-1])
	}

	return l
}

type KnotMultiplicity struct {
	Knot float64
	Mult int
}

// Union merges two non-decreasing vectors, keeping each knot value with
// the larger of its two multiplicities.
func (this KnotVec) Union(other KnotVec) KnotVec {
	merged := make(KnotVec, 0, len(this)+len(other))

	var thisI, otherI int
	for thisI < len(this) || otherI < len(other) {
		switch {
		case thisI >= len(this):
			merged = append(merged, other[otherI])
			otherI++
		case otherI >= len(other):
			merged = append(merged, this[thisI])
			thisI++
		case scalar.EqualWithinAbs(this[thisI], other[otherI], Epsilon):
			merged = append(merged, this[thisI])
			thisI++
			otherI++
		case this[thisI] > other[otherI]:
			merged = append(merged, other[otherI])
			otherI++
		default:
			merged = append(merged, this[thisI])
			thisI++
		}
	}

	return merged
}
