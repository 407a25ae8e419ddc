package enneper

import (
	"encoding/json"
	"fmt"
)

type curveJSON struct {
	CtrlPnts [][]float64 `json:"ctrl_pnts"`
	Knots    []float64   `json:"knots"`
	Deg      *int        `json:"deg,omitempty"`
}

type surfaceJSON struct {
	CtrlPnts [][][]float64 `json:"ctrl_pnts"`
	KnotsU   []float64     `json:"knots_u"`
	KnotsV   []float64     `json:"knots_v"`
	DegU     *int          `json:"deg_u,omitempty"`
	DegV     *int          `json:"deg_v,omitempty"`
}

// MarshalJSON encodes the curve with homogeneous control points of
// Dim()+1 coordinates each.
func (this *NurbsCurve) MarshalJSON() ([]byte, error) {
	deg := this.degree
	return json.Marshal(curveJSON{
		CtrlPnts: this.HomogeneousControlPoints(),
		Knots:    this.knots,
		Deg:      &deg,
	})
}

// UnmarshalJSON decodes and validates a curve. A missing degree is derived
// from the number of knots and control points.
func (this *NurbsCurve) UnmarshalJSON(data []byte) error {
	var raw curveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	deg := len(raw.Knots) - len(raw.CtrlPnts) - 1
	if raw.Deg != nil {
		deg = *raw.Deg
	}

	curve, err := NewNurbsCurveHomogeneous(deg, raw.CtrlPnts, raw.Knots)
	if err != nil {
		return fmt.Errorf("decoding curve: %w", err)
	}

	*this = *curve
	return nil
}

func (this *NurbsSurface) MarshalJSON() ([]byte, error) {
	degU, degV := this.degreeU, this.degreeV
	return json.Marshal(surfaceJSON{
		CtrlPnts: this.HomogeneousControlPoints(),
		KnotsU:   this.knotsU,
		KnotsV:   this.knotsV,
		DegU:     &degU,
		DegV:     &degV,
	})
}

func (this *NurbsSurface) UnmarshalJSON(data []byte) error {
	var raw surfaceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	degU := len(raw.KnotsU) - len(raw.CtrlPnts) - 1
	if raw.DegU != nil {
		degU = *raw.DegU
	}

	var numV int
	if len(raw.CtrlPnts) > 0 {
		numV = len(raw.CtrlPnts[0])
	}
	degV := len(raw.KnotsV) - numV - 1
	if raw.DegV != nil {
		degV = *raw.DegV
	}

	surface, err := NewNurbsSurfaceHomogeneous(degU, degV, raw.CtrlPnts, raw.KnotsU, raw.KnotsV)
	if err != nil {
		return fmt.Errorf("decoding surface: %w", err)
	}

	*this = *surface
	return nil
}
