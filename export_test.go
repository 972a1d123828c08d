package objview

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoObjects = `v 9 9 9
v 0 0 0
g first
v 1 0 0
v 0 1 0
f 2 3 4
g second
v 0 0 1
v 0.25 -1.5 3e-7
f 4 5 6
f 6 5 2
f 2 4 5
`

func TestExportRenumbers(t *testing.T) {
	m, err := LoadOBJFromBytes([]byte(twoObjects))
	require.NoError(t, err)
	second, _ := m.Lookup("second")

	var buf bytes.Buffer
	stats, err := Export(&buf, second, m.Vertices, nil)
	require.NoError(t, err)

	want := `o second
g second
v 0 1 0
v 0 0 1
v 0.25 -1.5 3e-07
f 1 2 3
v 0 0 0
f 3 2 4
f 4 1 2
`
	assert.Equal(t, want, buf.String())
	assert.Equal(t, ExportStats{Vertices: 4, Faces: 3}, stats)
}

func TestExportRoundTrip(t *testing.T) {
	m, err := LoadOBJFromBytes([]byte(twoObjects))
	require.NoError(t, err)

	for _, name := range m.Names() {
		orig, _ := m.Lookup(name)
		var buf bytes.Buffer
		_, err := Export(&buf, orig, m.Vertices, nil)
		require.NoError(t, err)

		back, err := LoadOBJFromBytes(buf.Bytes())
		require.NoError(t, err)
		require.Equal(t, []string{name}, back.Names())
		got, _ := back.Lookup(name)
		require.Len(t, got.Faces, len(orig.Faces))

		for fi := range orig.Faces {
			require.Len(t, got.Faces[fi].Indices, len(orig.Faces[fi].Indices))
			for i, idx := range orig.Faces[fi].Indices {
				want, ok := Lookup(m.Vertices, idx)
				require.True(t, ok)
				have, ok := Lookup(back.Vertices, got.Faces[fi].Indices[i])
				require.True(t, ok)
				assert.Equal(t, want, have, "%s face %d corner %d", name, fi, i)
			}
		}
	}
}

func TestExportWritesEachVertexOnce(t *testing.T) {
	obj := NewObject("fan")
	obj.AddFace(1, 2, 3)
	obj.AddFace(1, 3, 4)
	obj.AddFace(4, 3, 1)

	var buf bytes.Buffer
	stats, err := Export(&buf, obj, square, nil)
	require.NoError(t, err)

	back, err := LoadOBJFromBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, back.Vertices, 4)
	assert.Equal(t, 4, stats.Vertices)
	assert.LessOrEqual(t, stats.Vertices, obj.IndexCount())
}

func TestExportSkipsInvalidIndices(t *testing.T) {
	obj := NewObject("bad")
	obj.AddFace(1, 0, 2, 5)
	obj.AddFace(7, -1)
	obj.AddFace(2, 3)

	var skipped []Index
	var buf bytes.Buffer
	stats, err := Export(&buf, obj, square, func(i Index) { skipped = append(skipped, i) })
	require.NoError(t, err)

	assert.Equal(t, []Index{0, 5, 7, -1}, skipped)
	assert.Equal(t, ExportStats{Vertices: 3, Faces: 2, Skipped: 4}, stats)
	assert.Equal(t, "o bad\ng bad\nv 0 0 0\nv 1 0 0\nf 1 2\nv 1 1 0\nf 2 3\n", buf.String())
}

func TestExportDoesNotMutateModel(t *testing.T) {
	m, err := LoadOBJFromBytes([]byte(twoObjects))
	require.NoError(t, err)
	second, _ := m.Lookup("second")
	before := append([]Vertex(nil), m.Vertices...)
	faces := len(second.Faces)

	_, err = Export(&bytes.Buffer{}, second, m.Vertices, nil)
	require.NoError(t, err)
	assert.Equal(t, before, m.Vertices)
	assert.Len(t, second.Faces, faces)
	assert.Equal(t, []Index{4, 5, 6}, second.Faces[0].Indices)
}

// limitWriter accepts n bytes, then fails.
type limitWriter struct {
	n int
	bytes.Buffer
}

var errFull = errors.New("disk full")

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.Len()+len(p) > w.n {
		k := w.n - w.Len()
		w.Buffer.Write(p[:k])
		return k, errFull
	}
	return w.Buffer.Write(p)
}

func TestExportWriteErrorTruncates(t *testing.T) {
	obj := NewObject("big")
	verts := make([]Vertex, 2000)
	for i := range verts {
		verts[i] = Vertex{float64(i), float64(i) / 3, -float64(i)}
		obj.AddFace(Index(i + 1))
	}
	w := &limitWriter{n: 100}
	_, err := Export(w, obj, verts, nil)
	require.ErrorIs(t, err, errFull)
	assert.Equal(t, 100, w.Len())
}

func TestSaveOBJ(t *testing.T) {
	obj := NewObject("tri")
	obj.AddFace(1, 2, 3)
	path := filepath.Join(t.TempDir(), "tri.obj")

	stats, err := SaveOBJ(path, obj, square, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Vertices)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "o tri\ng tri\nv 0 0 0\n"))

	_, err = SaveOBJ("", obj, square, nil)
	assert.ErrorIs(t, err, ErrNoFilename)

	_, err = SaveOBJ(filepath.Join(t.TempDir(), "missing", "x.obj"), obj, square, nil)
	assert.Error(t, err)
}
