package enneper

import (
	"fmt"
	"math"
	"slices"

	. "github.com/4ndr345/enneper/internal"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

type (
	CurvePoint struct {
		U  float64
		Pt vec3.T
	}
)

type NurbsCurve struct {
	// degree of curve
	degree int

	// slice of control points, each a homogeneous coordinate
	controlPoints []HomoPoint

	// slice of nondecreasing knot values
	knots KnotVec

	// number of cartesian coordinates in use, 1 to 3
	dim int
}

func NewNurbsCurve(degree int, controlPoints []vec3.T, weights []float64, knots []float64) (*NurbsCurve, error) {
	if controlPoints == nil {
		return nil, ErrNilControlPoints
	}
	if len(weights) != len(controlPoints) {
		return nil, fmt.Errorf("%d weights for %d control points: %w", len(weights), len(controlPoints), ErrWeightCount)
	}

	this := NewNurbsCurveUnchecked(degree, controlPoints, weights, knots)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func NewNurbsCurveUnchecked(degree int, controlPoints []vec3.T, weights []float64, knots []float64) *NurbsCurve {
	return &NurbsCurve{degree, Homogenize1d(controlPoints, weights), KnotVec(knots).Clone(), 3}
}

// NewNurbsCurveHomogeneous builds a curve from control points given as
// (w*x, .., w) rows, the layout of the persisted form. The cartesian
// dimension is one less than the row length.
func NewNurbsCurveHomogeneous(degree int, controlPoints [][]float64, knots []float64) (*NurbsCurve, error) {
	if controlPoints == nil {
		return nil, ErrNilControlPoints
	}

	dim, err := rowDim(controlPoints)
	if err != nil {
		return nil, err
	}

	this := &NurbsCurve{
		degree:        degree,
		controlPoints: make([]HomoPoint, len(controlPoints)),
		knots:         KnotVec(knots).Clone(),
		dim:           dim,
	}
	for i, coords := range controlPoints {
		this.controlPoints[i] = HomoPointFromSlice(coords)
	}

	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func rowDim(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	width := len(rows[0])
	if width < 2 || width > 4 {
		return 0, ErrInvalidDimension
	}
	for _, row := range rows {
		if len(row) != width {
			return 0, ErrInvalidDimension
		}
	}

	return width - 1, nil
}

// newResizedCurve allocates storage for a curve of the given shape, to be
// filled in before it is handed out.
func newResizedCurve(numControlPoints, degree, dim int) *NurbsCurve {
	return &NurbsCurve{
		degree:        degree,
		controlPoints: make([]HomoPoint, numControlPoints),
		knots:         make(KnotVec, numControlPoints+degree+1),
		dim:           dim,
	}
}

func (this *NurbsCurve) Degree() int {
	return this.degree
}

// Dim is the number of cartesian coordinates of the control points.
func (this *NurbsCurve) Dim() int {
	return this.dim
}

func (this *NurbsCurve) ControlPoints() []vec3.T {
	return Dehomogenize1d(this.controlPoints)
}

func (this *NurbsCurve) Weights() []float64 {
	return Weight1d(this.controlPoints)
}

func (this *NurbsCurve) Knots() []float64 {
	return []float64(this.knots.Clone())
}

// HomogeneousControlPoints returns the control points as (w*x, .., w) rows
// of length Dim()+1.
func (this *NurbsCurve) HomogeneousControlPoints() [][]float64 {
	result := make([][]float64, len(this.controlPoints))
	for i := range this.controlPoints {
		result[i] = this.controlPoints[i].Slice(this.dim)
	}

	return result
}

// clone() is not exported because NurbsCurve is immutable to the client,
// so there's no point in making a deep copy.
// Should only be used when control points and knots can't be shared
func (this *NurbsCurve) clone() *NurbsCurve {
	return &NurbsCurve{
		degree:        this.degree,
		controlPoints: append([]HomoPoint(nil), this.controlPoints...),
		knots:         this.knots.Clone(),
		dim:           this.dim,
	}
}

// Determine the valid domain of the curve
//
// **returns**
// + the start and end parameter of the curve
func (this *NurbsCurve) Domain() (min, max float64) {
	return this.knots.Domain(this.degree)
}

// Validate the curve data
func (this *NurbsCurve) check() error {
	if this.controlPoints == nil {
		return ErrNilControlPoints
	}

	if this.degree < 1 {
		return ErrInvalidDegree
	}

	if this.knots == nil {
		return ErrNilKnots
	}

	if len(this.knots) != len(this.controlPoints)+this.degree+1 {
		return &DimensionError{
			ControlPoints: len(this.controlPoints),
			Knots:         len(this.knots),
			Degree:        this.degree,
		}
	}

	if len(this.controlPoints) < this.degree+1 {
		return ErrTooFewPoints
	}

	if !this.knots.IsNonDecreasing() {
		return ErrKnotsDecreasing
	}

	for _, pt := range this.controlPoints {
		if !(pt.W > Epsilon) {
			return ErrNonPositiveWeight
		}
	}

	return nil
}

// Split a curve into two parts
//
// **params**
// + location to split the curve, strictly inside the domain
//
// **returns**
// + two new curves, the first ending and the second starting at u
//
func (this *NurbsCurve) Split(u float64) (*NurbsCurve, *NurbsCurve, error) {
	min, max := this.Domain()
	if !(u > min+Epsilon && u < max-Epsilon) {
		return nil, nil, &DomainError{Param: u, Min: min, Max: max}
	}

	degree := this.degree

	var mult int
	for _, km := range this.knots.Multiplicities() {
		if math.Abs(km.Knot-u) < Epsilon {
			mult = km.Mult
			u = km.Knot
		}
	}

	knotsToInsert := make(KnotVec, degree+1-mult)
	for i := range knotsToInsert {
		knotsToInsert[i] = u
	}
	res := this.knotRefine(knotsToInsert)

	// first index of u in the refined knots, which now holds it degree+1 times
	s := slices.Index([]float64(res.knots), u)

	knots0 := res.knots[:s+degree+1 : s+degree+1]
	knots1 := res.knots[s:]

	cpts0 := res.controlPoints[:s:s]
	cpts1 := res.controlPoints[s:]

	return &NurbsCurve{degree, cpts0, knots0, this.dim}, &NurbsCurve{degree, cpts1, knots1, this.dim}, nil
}

// KnotRefine inserts a collection of knots into the curve without changing
// its shape or parametrization.
//
// **params**
// + sorted knots to insert, each inside the domain of the curve
//
// **returns**
// + a new curve with len(knotsToInsert) additional control points
//
func (this *NurbsCurve) KnotRefine(knotsToInsert []float64) (*NurbsCurve, error) {
	if err := this.checkKnotsToInsert(knotsToInsert); err != nil {
		return nil, err
	}

	refined := this.knotRefine(knotsToInsert)

	Logger().Debug("refined curve knots",
		"inserted", len(knotsToInsert),
		"controlPoints", len(refined.controlPoints),
		"knots", len(refined.knots))

	return refined, nil
}

func (this *NurbsCurve) checkKnotsToInsert(knotsToInsert []float64) error {
	if len(knotsToInsert) == 0 {
		return nil
	}

	x := KnotVec(knotsToInsert)
	if !x.IsNonDecreasing() {
		return ErrUnsortedKnots
	}

	min, max := this.Domain()
	for _, knot := range x {
		if knot < min-Epsilon || knot > max+Epsilon {
			return &DomainError{Param: knot, Min: min, Max: max}
		}
	}

	merged := append(this.knots.Clone(), x...)
	slices.Sort(merged)
	for _, km := range merged.Multiplicities() {
		if km.Mult > this.degree+1 {
			return fmt.Errorf("knot %g: %w", km.Knot, ErrKnotMultiplicity)
		}
	}

	return nil
}

// Insert a collection of knots on a curve
//
// Corresponds to Algorithm A5.4 (Piegl & Tiller)
//
// **params**
// + sorted array of knots to insert
//
// **returns**
// + a new curve, the receiver is left untouched
//
func (this *NurbsCurve) knotRefine(knotsToInsert KnotVec) *NurbsCurve {
	if len(knotsToInsert) == 0 {
		return this.clone()
	}

	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots

	n := len(controlPoints) - 1
	m := n + degree + 1
	r := len(knotsToInsert) - 1
	a := knots.Span(degree, knotsToInsert[0])
	b := knots.Span(degree, knotsToInsert[r]) + 1

	refined := newResizedCurve(n+r+2, degree, this.dim)
	controlPointsPost, knotsPost := refined.controlPoints, refined.knots

	// unaffected control points
	for i := 0; i <= a-degree; i++ {
		controlPointsPost[i] = controlPoints[i]
	}

	for i := b - 1; i <= n; i++ {
		controlPointsPost[i+r+1] = controlPoints[i]
	}

	// unaffected knots
	for i := 0; i <= a; i++ {
		knotsPost[i] = knots[i]
	}

	for i := b + degree; i <= m; i++ {
		knotsPost[i+r+1] = knots[i]
	}

	i := b + degree - 1
	k := b + degree + r

	for j := r; j >= 0; j-- {
		for knotsToInsert[j] <= knots[i] && i > a {
			controlPointsPost[k-degree-1] = controlPoints[i-degree-1]
			knotsPost[k] = knots[i]
			k--
			i--
		}

		controlPointsPost[k-degree-1] = controlPointsPost[k-degree]

		for l := 1; l <= degree; l++ {
			ind := k - degree + l
			alfa := knotsPost[k+l] - knotsToInsert[j]

			if math.Abs(alfa) < KnotEpsilon {
				controlPointsPost[ind-1] = controlPointsPost[ind]
			} else {
				alfa /= knotsPost[k+l] - knots[i-degree+l]
				controlPointsPost[ind-1] = HomoInterpolated(&controlPointsPost[ind], &controlPointsPost[ind-1], alfa)
			}
		}

		knotsPost[k] = knotsToInsert[j]
		k--
	}

	return refined
}

// Reparameterized returns the same curve with its knot vector mapped
// linearly onto [min, max]. The trace of the curve is unchanged.
func (this *NurbsCurve) Reparameterized(min, max float64) *NurbsCurve {
	clone := this.clone()
	clone.knots = this.knots.Rescaled(min, max)

	return clone
}

func (this *NurbsCurve) Reverse() *NurbsCurve {
	reversed := NurbsCurve{
		degree:        this.degree,
		controlPoints: make([]HomoPoint, 0, len(this.controlPoints)),
		knots:         this.knots.Reversed(),
		dim:           this.dim,
	}

	for i := len(this.controlPoints) - 1; i >= 0; i-- {
		reversed.controlPoints = append(reversed.controlPoints, this.controlPoints[i])
	}

	return &reversed
}

// Transform applies an affine transformation to the control points. The
// result is promoted to three dimensions unless mat leaves z untouched.
func (this *NurbsCurve) Transform(mat *mat4.T) *NurbsCurve {
	pts := Dehomogenize1d(this.controlPoints)

	for i := range pts {
		pts[i] = mat.MulVec3(&pts[i])
	}

	dim := this.dim
	for _, pt := range pts {
		if pt[2] != 0 {
			dim = 3
			break
		}
	}

	return &NurbsCurve{
		this.degree,
		Homogenize1d(pts, Weight1d(this.controlPoints)),
		this.knots.Clone(),
		dim,
	}
}

//
// Sample a NURBS curve at equally spaced parametric intervals
//
// **params**
// + integer number of samples, at least 2
//
// **returns**
// + an array of parameter - point pairs
//
func (this *NurbsCurve) RegularSample(numSamples int) []CurvePoint {
	min, max := this.Domain()
	return this.regularSampleRange(min, max, numSamples)
}

func (this *NurbsCurve) regularSampleRange(start, end float64, numSamples int) []CurvePoint {
	if numSamples < 2 {
		numSamples = 2
	}

	samples := make([]CurvePoint, numSamples)
	span := (end - start) / float64(numSamples-1)
	var u float64

	for i := range samples {
		u = start + span*float64(i)
		if i == numSamples-1 {
			u = end
		}

		homoPt := this.nonRationalPoint(u)
		samples[i] = CurvePoint{u, homoPt.Dehomogenized()}
	}

	return samples
}

// Compute a point on a NURBS curve
//
// **params**
// + parameter on the curve at which the point is to be evaluated
//
// **returns**
// + the cartesian point; unused coordinates of curves with Dim() < 3 are 0
func (this *NurbsCurve) Point(u float64) (vec3.T, error) {
	homoPt, err := this.homogeneousPoint(u)
	if err != nil {
		return vec3.Zero, err
	}

	return homoPt.Dehomogenized(), nil
}

// HomogeneousPoint evaluates the curve without the perspective divide and
// returns (w*x, .., w) with Dim()+1 coordinates.
func (this *NurbsCurve) HomogeneousPoint(u float64) ([]float64, error) {
	homoPt, err := this.homogeneousPoint(u)
	if err != nil {
		return nil, err
	}

	return homoPt.Slice(this.dim), nil
}

func (this *NurbsCurve) homogeneousPoint(u float64) (HomoPoint, error) {
	if _, err := FindSpan(this.degree, this.knots, u); err != nil {
		return HomoPoint{}, err
	}

	return this.nonRationalPoint(u), nil
}

// Compute a point on a non-uniform, non-rational b-spline curve
// (corresponds to algorithm 3.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + parameter on the curve at which the point is to be evaluated
//
// **returns**
// + the homogeneous point
func (this *NurbsCurve) nonRationalPoint(u float64) HomoPoint {
	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots

	knotSpanIndex := knots.Span(degree, u)
	basisValues := BasisFunctionsGivenKnotSpanIndex(knotSpanIndex, u, degree, knots)
	var position HomoPoint

	for j := 0; j <= degree; j++ {
		scaled := controlPoints[knotSpanIndex-degree+j]
		scaled.Scale(basisValues[j])
		position.Add(&scaled)
	}

	return position
}

// position of the interior probe of adaptiveSampleRange, off-centre
const adaptiveSampleMid = 0.5 + 0.2*0.382

// Tessellate samples the curve adaptively over its whole domain until every
// piece is straight within tol, see Figueiredo, Adaptive Sampling of
// Parametric Curves. tol <= 0 selects Tolerance. Curves of degree 1 yield
// their control points.
//
// **returns**
// + the sampled parameter - point pairs, in increasing parameter order
func (this *NurbsCurve) Tessellate(tol float64) []CurvePoint {
	if tol <= 0 {
		tol = Tolerance
	}

	if this.degree == 1 {
		samples := make([]CurvePoint, len(this.controlPoints))
		for i := range this.controlPoints {
			samples[i] = CurvePoint{this.knots[i+1], this.controlPoints[i].Dehomogenized()}
		}
		return samples
	}

	min, max := this.Domain()
	samples := this.adaptiveSampleRange(min, max, tol)

	Logger().Debug("tessellated curve", "samples", len(samples), "tolerance", tol)

	return samples
}

//
// Sample a NURBS curve at 3 points, facilitating adaptive sampling
//
// **params**
// + start parameter for sampling
// + end parameter for sampling
// + tolerance of the three point test
//
// **returns**
// + the samples from start to end, both included
//
func (this *NurbsCurve) adaptiveSampleRange(start, end, tol float64) []CurvePoint {
	p1h, p3h := this.nonRationalPoint(start), this.nonRationalPoint(end)
	p1, p3 := p1h.Dehomogenized(), p3h.Dehomogenized()

	mid := start + (end-start)*adaptiveSampleMid
	p2h := this.nonRationalPoint(mid)
	p2 := p2h.Dehomogenized()

	// coincident ends make the three point test pass for any closed loop
	p1p3 := vec3.Sub(&p1, &p3)
	p1p2 := vec3.Sub(&p1, &p2)
	loop := vec3.Dot(&p1p3, &p1p3) < tol && vec3.Dot(&p1p2, &p1p2) > tol

	if end-start > KnotEpsilon && (loop || !threePointsAreCollinear(&p1, &p2, &p3, tol)) {
		exactMid := start + (end-start)*0.5

		leftPts := this.adaptiveSampleRange(start, exactMid, tol)
		rightPts := this.adaptiveSampleRange(exactMid, end, tol)

		leftEnd := len(leftPts) - 1
		return append(leftPts[:leftEnd:leftEnd], rightPts...)
	}

	return []CurvePoint{{start, p1}, {end, p3}}
}
