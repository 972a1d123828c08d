package objview

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a position in model space.
type Vertex struct {
	X, Y, Z float64
}

func (v Vertex) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// String formats the vertex the way it is written to an OBJ file.
func (v Vertex) String() string {
	return ff(v.X) + " " + ff(v.Y) + " " + ff(v.Z)
}

// Index is a 1-based reference into the global vertex list, as it appears
// in OBJ face lines.
type Index int

// Slot converts i to a 0-based offset into a list of n vertices.
// ok is false when i is outside 1..n.
func (i Index) Slot(n int) (slot int, ok bool) {
	if i < 1 || int(i) > n {
		return 0, false
	}
	return int(i) - 1, true
}

// Lookup resolves i against verts.
func Lookup(verts []Vertex, i Index) (Vertex, bool) {
	slot, ok := i.Slot(len(verts))
	if !ok {
		return Vertex{}, false
	}
	return verts[slot], true
}

// shortest representation that parses back to the same float64
func ff(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
