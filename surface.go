package enneper

import (
	"fmt"

	. "github.com/4ndr345/enneper/internal"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

type UV [2]float64

type NurbsSurface struct {
	// integer degree of surface in u direction
	degreeU int

	// integer degree of surface in v direction
	degreeV int

	// 2d array of control points, the vertical direction (u) increases from top to bottom, the v direction from left to right
	controlPoints [][]HomoPoint

	// array of nondecreasing knot values in u direction
	knotsU KnotVec

	// array of nondecreasing knot values in v direction
	knotsV KnotVec

	// number of cartesian coordinates in use, 1 to 3
	dim int
}

func NewNurbsSurfaceUnchecked(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) *NurbsSurface {
	return &NurbsSurface{
		degreeU, degreeV,
		Homogenize2d(controlPoints, weights),
		KnotVec(knotsU).Clone(), KnotVec(knotsV).Clone(),
		3,
	}
}

func NewNurbsSurface(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) (*NurbsSurface, error) {
	if controlPoints == nil {
		return nil, ErrNilControlPoints
	}
	if len(weights) != len(controlPoints) {
		return nil, ErrWeightCount
	}
	for i := range controlPoints {
		if len(weights[i]) != len(controlPoints[i]) {
			return nil, ErrWeightCount
		}
	}

	this := NewNurbsSurfaceUnchecked(degreeU, degreeV, controlPoints, weights, knotsU, knotsV)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

// NewNurbsSurfaceHomogeneous builds a surface from a grid of (w*x, .., w)
// control points, indexed [u][v].
func NewNurbsSurfaceHomogeneous(degreeU, degreeV int, controlPoints [][][]float64, knotsU, knotsV []float64) (*NurbsSurface, error) {
	if controlPoints == nil {
		return nil, ErrNilControlPoints
	}

	this := &NurbsSurface{
		degreeU: degreeU,
		degreeV: degreeV,
		knotsU:  KnotVec(knotsU).Clone(),
		knotsV:  KnotVec(knotsV).Clone(),
	}

	this.controlPoints = make([][]HomoPoint, len(controlPoints))
	for i, row := range controlPoints {
		dim, err := rowDim(row)
		if err != nil {
			return nil, err
		}
		if i > 0 && dim != this.dim {
			return nil, ErrInvalidDimension
		}
		this.dim = dim

		this.controlPoints[i] = make([]HomoPoint, len(row))
		for j, coords := range row {
			this.controlPoints[i][j] = HomoPointFromSlice(coords)
		}
	}

	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func (this *NurbsSurface) DegreeU() int {
	return this.degreeU
}

func (this *NurbsSurface) DegreeV() int {
	return this.degreeV
}

// Dim is the number of cartesian coordinates of the control points.
func (this *NurbsSurface) Dim() int {
	return this.dim
}

func (this *NurbsSurface) ControlPoints() [][]vec3.T {
	return Dehomogenize2d(this.controlPoints)
}

func (this *NurbsSurface) Weights() [][]float64 {
	return Weight2d(this.controlPoints)
}

func (this *NurbsSurface) KnotsU() []float64 {
	return []float64(this.knotsU.Clone())
}

func (this *NurbsSurface) KnotsV() []float64 {
	return []float64(this.knotsV.Clone())
}

// HomogeneousControlPoints returns the control grid as (w*x, .., w) rows of
// length Dim()+1.
func (this *NurbsSurface) HomogeneousControlPoints() [][][]float64 {
	result := make([][][]float64, len(this.controlPoints))
	for i, row := range this.controlPoints {
		result[i] = make([][]float64, len(row))
		for j := range row {
			result[i][j] = row[j].Slice(this.dim)
		}
	}

	return result
}

func (this *NurbsSurface) DomainU() (min, max float64) {
	return this.knotsU.Domain(this.degreeU)
}

func (this *NurbsSurface) DomainV() (min, max float64) {
	return this.knotsV.Domain(this.degreeV)
}

// Validate the surface data
func (this *NurbsSurface) check() error {
	if this.controlPoints == nil {
		return ErrNilControlPoints
	}

	if this.degreeU < 1 || this.degreeV < 1 {
		return ErrInvalidDegree
	}

	if this.knotsU == nil || this.knotsV == nil {
		return ErrNilKnots
	}

	if len(this.knotsU) != len(this.controlPoints)+this.degreeU+1 {
		return &DimensionError{"u", len(this.controlPoints), len(this.knotsU), this.degreeU}
	}
	if len(this.controlPoints) < this.degreeU+1 {
		return ErrTooFewPoints
	}

	numV := len(this.controlPoints[0])
	for _, row := range this.controlPoints {
		if len(row) != numV {
			return ErrRaggedGrid
		}
	}

	if len(this.knotsV) != numV+this.degreeV+1 {
		return &DimensionError{"v", numV, len(this.knotsV), this.degreeV}
	}
	if numV < this.degreeV+1 {
		return ErrTooFewPoints
	}

	if !this.knotsU.IsNonDecreasing() || !this.knotsV.IsNonDecreasing() {
		return ErrKnotsDecreasing
	}

	for _, row := range this.controlPoints {
		for _, pt := range row {
			if !(pt.W > Epsilon) {
				return ErrNonPositiveWeight
			}
		}
	}

	return nil
}

func (this *NurbsSurface) Transform(mat *mat4.T) *NurbsSurface {
	pts := Dehomogenize2d(this.controlPoints)

	dim := this.dim
	for i := range pts {
		for j := range pts[i] {
			pts[i][j] = mat.MulVec3(&pts[i][j])
			if pts[i][j][2] != 0 {
				dim = 3
			}
		}
	}

	return &NurbsSurface{
		this.degreeU,
		this.degreeV,

		Homogenize2d(pts, Weight2d(this.controlPoints)),

		this.knotsU.Clone(),
		this.knotsV.Clone(),

		dim,
	}
}

// KnotRefine inserts knots in the u direction, or in v if useV is set,
// without changing the shape of the surface.
func (this *NurbsSurface) KnotRefine(knotsToInsert []float64, useV bool) (*NurbsSurface, error) {
	if err := this.rowCurve(useV).checkKnotsToInsert(knotsToInsert); err != nil {
		return nil, fmt.Errorf("%s direction: %w", direction(useV), err)
	}

	refined := this.knotRefine(knotsToInsert, useV)

	Logger().Debug("refined surface knots",
		"direction", direction(useV),
		"inserted", len(knotsToInsert),
		"controlPointsU", len(refined.controlPoints),
		"controlPointsV", len(refined.controlPoints[0]))

	return refined, nil
}

func direction(useV bool) string {
	if useV {
		return "v"
	}
	return "u"
}

// rowCurve is a curve sharing degree and knots of one parametric direction,
// with no control points of its own.
func (this *NurbsSurface) rowCurve(useV bool) *NurbsCurve {
	if useV {
		return &NurbsCurve{degree: this.degreeV, knots: this.knotsV, dim: this.dim}
	}
	return &NurbsCurve{degree: this.degreeU, knots: this.knotsU, dim: this.dim}
}

func (this *NurbsSurface) knotRefine(knotsToInsert KnotVec, useV bool) *NurbsSurface {
	var ctrlPts [][]HomoPoint

	// every row of ctrlPts runs along the refined direction
	if !useV {
		ctrlPts = transposed(this.controlPoints)
	} else {
		ctrlPts = this.controlPoints
	}

	baseCurve := this.rowCurve(useV)
	newPts := make([][]HomoPoint, 0, len(ctrlPts))
	var c *NurbsCurve
	for _, cptrow := range ctrlPts {
		baseCurve.controlPoints = cptrow
		c = baseCurve.knotRefine(knotsToInsert)
		newPts = append(newPts, c.controlPoints)
	}

	newknots := c.knots

	if !useV {
		return &NurbsSurface{
			this.degreeU, this.degreeV,
			transposed(newPts),
			newknots, this.knotsV.Clone(),
			this.dim,
		}
	}

	return &NurbsSurface{
		this.degreeU, this.degreeV,
		newPts,
		this.knotsU.Clone(), newknots,
		this.dim,
	}
}

func transposed(mat [][]HomoPoint) [][]HomoPoint {
	result := make([][]HomoPoint, len(mat[0]))
	for col := range result {
		result[col] = make([]HomoPoint, len(mat))
		for row := range mat {
			result[col][row] = mat[row][col]
		}
	}

	return result
}

//
// Compute a point on a NURBS surface
//
// **params**
// + u and v parameter at which to evaluate the surface point
//
// **returns**
// + the cartesian point; unused coordinates of surfaces with Dim() < 3 are 0
func (this *NurbsSurface) Point(uv UV) (vec3.T, error) {
	homoPt, err := this.homogeneousPoint(uv)
	if err != nil {
		return vec3.Zero, err
	}

	return homoPt.Dehomogenized(), nil
}

// HomogeneousPoint evaluates the surface without the perspective divide and
// returns (w*x, .., w) with Dim()+1 coordinates.
func (this *NurbsSurface) HomogeneousPoint(uv UV) ([]float64, error) {
	homoPt, err := this.homogeneousPoint(uv)
	if err != nil {
		return nil, err
	}

	return homoPt.Slice(this.dim), nil
}

func (this *NurbsSurface) homogeneousPoint(uv UV) (HomoPoint, error) {
	if _, err := FindSpan(this.degreeU, this.knotsU, uv[0]); err != nil {
		return HomoPoint{}, fmt.Errorf("u: %w", err)
	}
	if _, err := FindSpan(this.degreeV, this.knotsV, uv[1]); err != nil {
		return HomoPoint{}, fmt.Errorf("v: %w", err)
	}

	return this.nonRationalPoint(uv), nil
}

// Compute a point on a non-uniform, non-rational B spline surface
// (corresponds to algorithm 3.5 from The NURBS book, Piegl & Tiller 2nd edition)
//
// The u direction is contracted first for each of the degreeV+1 rows of the
// local control window, then the resulting points are blended along v.
func (this *NurbsSurface) nonRationalPoint(uv UV) HomoPoint {
	degreeU := this.degreeU
	degreeV := this.degreeV
	controlPoints := this.controlPoints
	knotsU := this.knotsU
	knotsV := this.knotsV

	knotSpanIndexU := knotsU.Span(degreeU, uv[0])
	knotSpanIndexV := knotsV.Span(degreeV, uv[1])
	uBasisVals := BasisFunctionsGivenKnotSpanIndex(knotSpanIndexU, uv[0], degreeU, knotsU)
	vBasisVals := BasisFunctionsGivenKnotSpanIndex(knotSpanIndexV, uv[1], degreeV, knotsV)
	uind := knotSpanIndexU - degreeU
	var position HomoPoint

	for l := 0; l <= degreeV; l++ {
		temp := HomoPoint{}
		vind := knotSpanIndexV - degreeV + l

		// sample u isoline
		for k := 0; k <= degreeU; k++ {
			scaled := controlPoints[uind+k][vind]
			scaled.Scale(uBasisVals[k])
			temp.Add(&scaled)
		}

		// add point from u isoline
		temp.Scale(vBasisVals[l])
		position.Add(&temp)
	}

	return position
}

// Extract the boundary curves from a surface
//
// **returns**
// + an array containing 4 elements, first the curves at u = min and u = max
// running along v, then the curves at v = min and v = max running along u
func (this *NurbsSurface) Boundaries() []*NurbsCurve {
	minU, maxU := this.DomainU()
	minV, maxV := this.DomainV()

	// the domain ends are always valid parameters
	c0, _ := this.Isocurve(minU, false)
	c1, _ := this.Isocurve(maxU, false)
	c2, _ := this.Isocurve(minV, true)
	c3, _ := this.Isocurve(maxV, true)

	return []*NurbsCurve{c0, c1, c2, c3}
}

// Isocurve returns the curve of constant u = t running along v, or with
// useV the curve of constant v = t running along u. Its control points are
// the control grid contracted with the basis functions at t, so it traces
// the surface exactly.
func (this *NurbsSurface) Isocurve(t float64, useV bool) (*NurbsCurve, error) {
	var (
		degree, otherDegree int
		knots, otherKnots   KnotVec
		ctrlPts             [][]HomoPoint
	)

	if useV {
		degree, knots = this.degreeV, this.knotsV
		otherDegree, otherKnots = this.degreeU, this.knotsU
		ctrlPts = this.controlPoints
	} else {
		degree, knots = this.degreeU, this.knotsU
		otherDegree, otherKnots = this.degreeV, this.knotsV
		ctrlPts = transposed(this.controlPoints)
	}

	span, err := FindSpan(degree, knots, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", direction(useV), err)
	}
	basisVals := BasisFunctionsGivenKnotSpanIndex(span, t, degree, knots)

	controlPoints := make([]HomoPoint, len(ctrlPts))
	for i, row := range ctrlPts {
		for k := 0; k <= degree; k++ {
			scaled := row[span-degree+k]
			scaled.Scale(basisVals[k])
			controlPoints[i].Add(&scaled)
		}
	}

	return &NurbsCurve{otherDegree, controlPoints, otherKnots.Clone(), this.dim}, nil
}
