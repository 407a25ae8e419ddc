package enneper

import "github.com/ungerik/go3d/float64/vec3"

type Tri [3]int

type Mesh struct {
	Faces  []Tri
	Points []vec3.T
	UVs    []UV
}

type TessellateOptions struct {
	// number of divisions of the u domain, at least 1
	DivsU int

	// number of divisions of the v domain, at least 1
	DivsV int
}

var DefaultTessellateOptions = TessellateOptions{
	DivsU: 10,
	DivsV: 10,
}

//
// Tessellate a NURBS surface on equal spaced intervals in the parametric domain
//
// **params**
// + tessellation options, nil selects DefaultTessellateOptions
//
// **returns**
// + a mesh with (DivsU+1)*(DivsV+1) points stored row by row along v,
// and two triangles per grid cell
//
func (this *NurbsSurface) Tessellate(options *TessellateOptions) (*Mesh, error) {
	if options == nil {
		options = &DefaultTessellateOptions
	}

	divsU, divsV := options.DivsU, options.DivsV
	if divsU < 1 {
		divsU = 1
	}
	if divsV < 1 {
		divsV = 1
	}

	minU, maxU := this.DomainU()
	minV, maxV := this.DomainV()

	spanU := (maxU - minU) / float64(divsU)
	spanV := (maxV - minV) / float64(divsV)

	numPoints := (divsU + 1) * (divsV + 1)
	mesh := &Mesh{
		Faces:  make([]Tri, 0, 2*divsU*divsV),
		Points: make([]vec3.T, 0, numPoints),
		UVs:    make([]UV, 0, numPoints),
	}

	for i := 0; i <= divsU; i++ {
		u := minU + float64(i)*spanU
		if i == divsU {
			u = maxU
		}

		for j := 0; j <= divsV; j++ {
			v := minV + float64(j)*spanV
			if j == divsV {
				v = maxV
			}

			uv := UV{u, v}
			homoPt := this.nonRationalPoint(uv)

			mesh.UVs = append(mesh.UVs, uv)
			mesh.Points = append(mesh.Points, homoPt.Dehomogenized())
		}
	}

	for i := 0; i < divsU; i++ {
		for j := 0; j < divsV; j++ {
			ai := i*(divsV+1) + j
			bi := (i+1)*(divsV+1) + j
			ci := bi + 1
			di := ai + 1

			mesh.Faces = append(mesh.Faces, Tri{ai, bi, ci}, Tri{ai, ci, di})
		}
	}

	Logger().Debug("tessellated surface",
		"points", len(mesh.Points),
		"faces", len(mesh.Faces))

	return mesh, nil
}
