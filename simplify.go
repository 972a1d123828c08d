package objview

import (
	"fmt"
	"io"

	"github.com/fogleman/simplify"
)

// Simplify returns a decimated copy of o as a self-contained model holding
// one object of the same name. Faces are fan-triangulated first; factor is
// the fraction of triangles to keep, in (0, 1]. Vertices shared by
// position are merged. Out-of-range indices are passed to warn and dropped,
// along with any triangle that loses a corner.
func Simplify(o *Object, verts []Vertex, factor float64, warn func(Index)) (*Model, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("objview: simplify factor %v out of range (0, 1]", factor)
	}
	var triangles []*simplify.Triangle
	for _, f := range o.Faces {
		corners := make([]simplify.Vector, 0, len(f.Indices))
		for _, idx := range f.Indices {
			v, ok := Lookup(verts, idx)
			if !ok {
				if warn != nil {
					warn(idx)
				}
				continue
			}
			corners = append(corners, simplify.Vector{X: v.X, Y: v.Y, Z: v.Z})
		}
		for i := 1; i+1 < len(corners); i++ {
			triangles = append(triangles, &simplify.Triangle{
				V1: corners[0], V2: corners[i], V3: corners[i+1],
			})
		}
	}

	mesh := simplify.NewMesh(triangles)
	if factor < 1 && len(triangles) > 0 {
		mesh = mesh.Simplify(factor)
	}

	model := NewModel()
	out := NewObject(o.Name)
	slots := make(map[simplify.Vector]Index)
	add := func(p simplify.Vector) Index {
		if idx, ok := slots[p]; ok {
			return idx
		}
		model.Vertices = append(model.Vertices, Vertex{p.X, p.Y, p.Z})
		idx := Index(len(model.Vertices))
		slots[p] = idx
		return idx
	}
	for _, t := range mesh.Triangles {
		out.AddFace(add(t.V1), add(t.V2), add(t.V3))
	}
	model.Add(out)
	return model, nil
}

// ExportSimplified simplifies o and writes the result the way Export does.
func ExportSimplified(w io.Writer, o *Object, verts []Vertex, factor float64, warn func(Index)) (ExportStats, error) {
	model, err := Simplify(o, verts, factor, warn)
	if err != nil {
		return ExportStats{}, err
	}
	simple, _ := model.Lookup(o.Name)
	return Export(w, simple, model.Vertices, nil)
}

// SaveSimplified is SaveOBJ for a simplified copy of o. The factor is
// checked before the file is created.
func SaveSimplified(path string, o *Object, verts []Vertex, factor float64, warn func(Index)) (ExportStats, error) {
	if path == "" {
		return ExportStats{}, ErrNoFilename
	}
	model, err := Simplify(o, verts, factor, warn)
	if err != nil {
		return ExportStats{}, err
	}
	simple, _ := model.Lookup(o.Name)
	return SaveOBJ(path, simple, model.Vertices, nil)
}
