package objview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a fixed perspective camera. Fovy is in degrees.
type Camera struct {
	Eye, Center, Up mgl64.Vec3
	Fovy            float64
	Near, Far       float64
}

// DefaultCamera looks at the origin from 5 units down +Z.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl64.Vec3{0, 0, 5},
		Center: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		Fovy:   45,
		Near:   0.1,
		Far:    50,
	}
}

// View returns the world to eye matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Center, c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
// A non-positive aspect, as reported for a minimized window, is treated as 1.
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 || math.IsNaN(aspect) {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Bounds returns the box around the vertices referenced by o. ok is false
// when o references no valid vertex.
func Bounds(o *Object, verts []Vertex) (box Box, ok bool) {
	for _, f := range o.Faces {
		for _, idx := range f.Indices {
			v, valid := Lookup(verts, idx)
			if !valid {
				continue
			}
			p := v.Vec3()
			if !ok {
				box = Box{p, p}
				ok = true
				continue
			}
			for i := 0; i < 3; i++ {
				box.Min[i] = math.Min(box.Min[i], p[i])
				box.Max[i] = math.Max(box.Max[i], p[i])
			}
		}
	}
	return box, ok
}
