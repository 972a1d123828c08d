package objview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is an Emitter that remembers every call.
type recorder struct {
	prims    []Primitive
	vertices []Vertex
	ends     int
}

func (r *recorder) Begin(p Primitive) { r.prims = append(r.prims, p) }
func (r *recorder) Vertex(v Vertex)   { r.vertices = append(r.vertices, v) }
func (r *recorder) End()              { r.ends++ }

var square = []Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

func TestDrawPrimitivePerMode(t *testing.T) {
	obj := NewObject("tri")
	obj.AddFace(1, 2, 3)

	for mode, prim := range map[DisplayMode]Primitive{
		PointCloud: Points,
		Wireframe:  Lines,
		Solid:      Triangles,
	} {
		rec := &recorder{}
		n := NewContext(rec, mode).DrawObject(obj, square)
		assert.Equal(t, 3, n, mode.String())
		assert.Equal(t, []Primitive{prim}, rec.prims, mode.String())
		assert.Equal(t, 1, rec.ends, mode.String())
	}
}

func TestDrawSkipsInvalidIndices(t *testing.T) {
	obj := NewObject("bad")
	obj.AddFace(0, 1, 9, 2)
	obj.AddFace(-3, 3)

	for _, mode := range []DisplayMode{PointCloud, Wireframe, Solid} {
		rec := &recorder{}
		var skipped []Index
		dc := NewContext(rec, mode)
		dc.Warn = func(i Index) { skipped = append(skipped, i) }

		n := dc.DrawObject(obj, square)
		assert.Equal(t, 3, n, mode.String())
		assert.Equal(t, []Vertex{square[0], square[1], square[2]}, rec.vertices, mode.String())
		assert.Equal(t, []Index{0, 9, -3}, skipped, mode.String())
	}
}

func TestDrawNilWarn(t *testing.T) {
	obj := NewObject("bad")
	obj.AddFace(7)
	rec := &recorder{}
	assert.Equal(t, 0, Draw(rec, obj, square, Solid, nil))
	assert.Equal(t, 1, rec.ends)
}

// Wireframe emits a flat line list: a quad gives two segments, 1-2 and 3-4,
// not the four edges of its outline.
func TestWireframeIsLineList(t *testing.T) {
	obj := NewObject("quad")
	obj.AddFace(1, 2, 3, 4)
	rec := &recorder{}
	Draw(rec, obj, square, Wireframe, nil)

	require.Len(t, rec.vertices, 4)
	assert.Equal(t, []Vertex{square[0], square[1], square[2], square[3]}, rec.vertices)
}

// Solid mode does not triangulate: a quad's four vertices go out as is.
func TestSolidDoesNotTriangulate(t *testing.T) {
	obj := NewObject("quad")
	obj.AddFace(1, 2, 3, 4)
	rec := &recorder{}
	assert.Equal(t, 4, Draw(rec, obj, square, Solid, nil))
}

func TestModes(t *testing.T) {
	for in, want := range map[string]DisplayMode{
		"1": PointCloud, "2": Wireframe, "3": Solid,
		"PointCloud": PointCloud, "wireframe": Wireframe, " Solid ": Solid,
	} {
		got, err := ParseDisplayMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "0", "4", "solidd", "1 2"} {
		_, err := ParseDisplayMode(in)
		assert.ErrorIs(t, err, ErrInvalidMode, in)
	}
	assert.Equal(t, "Invalid", DisplayMode(0).String())
	assert.Equal(t, Primitive(0), DisplayMode(9).Primitive())
	assert.Equal(t, "lines", Wireframe.Primitive().String())
}

func TestWarnOnceAcrossFrames(t *testing.T) {
	obj := NewObject("bad")
	obj.AddFace(0, 1, 9)
	obj.AddFace(9, 2)

	var logged []Index
	once := NewWarnOnce(func(i Index) { logged = append(logged, i) })
	dc := NewContext(&recorder{}, Solid)
	dc.Warn = once.Warn

	for frame := 0; frame < 3; frame++ {
		assert.Equal(t, 2, dc.DrawObject(obj, square))
	}
	assert.Equal(t, []Index{0, 9}, logged)

	once.Reset()
	dc.DrawObject(obj, square)
	assert.Equal(t, []Index{0, 9, 0, 9}, logged)
}
