package objview

import (
	"errors"

	"cogentcore.org/core/ordmap"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrNotFound is returned when a requested object is not in the catalog.
var ErrNotFound = errors.New("objview: object not found")

// Face is one polygon of an object, as an ordered list of vertex references.
type Face struct {
	Indices []Index
}

// Object is a named group of faces. It holds no vertex data of its own;
// every face references the model's global vertex list.
type Object struct {
	Name  string
	Faces []Face
}

// NewObject returns an empty object with the given name
func NewObject(name string) *Object {
	return &Object{Name: name}
}

// AddFace appends a face built from the given indices.
func (o *Object) AddFace(indices ...Index) {
	o.Faces = append(o.Faces, Face{Indices: indices})
}

// IndexCount returns the total number of face-vertex references.
func (o *Object) IndexCount() int {
	n := 0
	for _, f := range o.Faces {
		n += len(f.Indices)
	}
	return n
}

// Model is everything decoded from one OBJ file: the global vertex list and
// the catalog of named objects, kept in declaration order.
type Model struct {
	Vertices []Vertex
	Objects  *ordmap.Map[string, *Object]

	// Warnings holds one message per line that was skipped while decoding.
	Warnings []string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Objects: ordmap.New[string, *Object]()}
}

// Add stores o in the catalog. An object with the same name is replaced
// in place, keeping its original position.
func (m *Model) Add(o *Object) {
	m.Objects.Add(o.Name, o)
}

// Names returns the object names in catalog order.
func (m *Model) Names() []string {
	return m.Objects.Keys()
}

// Len returns the number of objects in the catalog.
func (m *Model) Len() int {
	return m.Objects.Len()
}

// Lookup returns the object with exactly the given name.
func (m *Model) Lookup(name string) (*Object, bool) {
	return m.Objects.ValueByKeyTry(name)
}

// Find is Lookup with an error for use in error-returning call chains.
func (m *Model) Find(name string) (*Object, error) {
	o, ok := m.Lookup(name)
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

// suggestThreshold is the minimum similarity for Suggest to return a name.
const suggestThreshold = 0.5

// Suggest returns the catalog name most similar to name, or "" when nothing
// is close. It is only meant for "did you mean" messages.
func (m *Model) Suggest(name string) string {
	best, score := "", 0.0
	lev := metrics.NewLevenshtein()
	for _, n := range m.Names() {
		if s := strutil.Similarity(name, n, lev); s >= suggestThreshold && s > score {
			best, score = n, s
		}
	}
	return best
}
