package objview

// Primitive is the kind of geometry a stream of vertices describes.
type Primitive int

const (
	_ Primitive = iota
	Points
	Lines
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	}
	return "none"
}

// Emitter receives the vertex stream of one draw call. The viewer backs it
// with OpenGL immediate mode.
type Emitter interface {
	Begin(Primitive)
	Vertex(Vertex)
	End()
}

// DefaultPointSize is the point size used in PointCloud mode.
const DefaultPointSize = 5

// Context holds the state of one drawing surface.
type Context struct {
	Emitter   Emitter
	Mode      DisplayMode
	PointSize float64

	// Warn is called for every face index that does not resolve to a
	// vertex. It may be nil.
	Warn func(Index)
}

func NewContext(e Emitter, mode DisplayMode) *Context {
	return &Context{
		Emitter:   e,
		Mode:      mode,
		PointSize: DefaultPointSize,
	}
}

// DrawObject emits the vertices of every face of o in one primitive batch
// and returns how many were emitted. Invalid indices are skipped without
// affecting the rest of the face.
//
// Faces are flattened into a single stream: in Wireframe mode consecutive
// pairs become line segments rather than closed outlines, and in Solid mode
// consecutive triples become triangles, so faces are expected to already be
// triangles.
func (dc *Context) DrawObject(o *Object, verts []Vertex) int {
	return Draw(dc.Emitter, o, verts, dc.Mode, dc.Warn)
}

// Draw is DrawObject without a Context.
func Draw(e Emitter, o *Object, verts []Vertex, mode DisplayMode, warn func(Index)) int {
	n := 0
	e.Begin(mode.Primitive())
	for _, f := range o.Faces {
		for _, idx := range f.Indices {
			v, ok := Lookup(verts, idx)
			if !ok {
				if warn != nil {
					warn(idx)
				}
				continue
			}
			e.Vertex(v)
			n++
		}
	}
	e.End()
	return n
}

// WarnOnce forwards each distinct index to fn the first time it is seen.
// The viewer redraws every frame and uses it to keep the log readable.
type WarnOnce struct {
	fn   func(Index)
	seen map[Index]bool
}

func NewWarnOnce(fn func(Index)) *WarnOnce {
	return &WarnOnce{fn: fn, seen: make(map[Index]bool)}
}

func (w *WarnOnce) Warn(idx Index) {
	if w.seen[idx] {
		return
	}
	w.seen[idx] = true
	w.fn(idx)
}

// Reset forgets every index reported so far.
func (w *WarnOnce) Reset() {
	clear(w.seen)
}
