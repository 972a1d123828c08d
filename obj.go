package objview

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineSize bounds a single OBJ line; long face lines exceed bufio's default.
const maxLineSize = 1 << 20

// LoadOBJ decodes the file at path. The returned model is never nil: when
// the file is missing it is empty, and when reading fails part way it holds
// everything decoded before the failure. The error wraps fs.ErrNotExist
// for a missing file.
func LoadOBJ(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return NewModel(), fmt.Errorf("objview: open %s: %w", path, err)
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Model, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// LoadOBJFromReader decodes g, v and f lines from r. Every other line is
// ignored. Malformed v and f lines are skipped and recorded in
// Model.Warnings.
func LoadOBJFromReader(r io.Reader) (*Model, error) {
	dec := newDecoder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		dec.step(scanner.Text())
	}
	model := dec.finish()
	if err := scanner.Err(); err != nil {
		return model, fmt.Errorf("objview: read line %d: %w", dec.line+1, err)
	}
	return model, nil
}

// decoder is the accumulator threaded through the lines of one file.
type decoder struct {
	model   *Model
	current *Object
	line    int
}

func newDecoder() *decoder {
	return &decoder{model: NewModel()}
}

func (dec *decoder) step(text string) {
	dec.line++
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "g":
		dec.group(fields[1:])
	case "v":
		dec.vertex(fields[1:])
	case "f":
		if dec.current != nil {
			dec.face(fields[1:])
		}
	}
}

// finish closes the object still open at end of input and returns the model.
func (dec *decoder) finish() *Model {
	dec.flush()
	return dec.model
}

func (dec *decoder) flush() {
	if dec.current != nil {
		dec.model.Add(dec.current)
		dec.current = nil
	}
}

func (dec *decoder) warnf(format string, args ...any) {
	msg := fmt.Sprintf("line %d: ", dec.line) + fmt.Sprintf(format, args...)
	dec.model.Warnings = append(dec.model.Warnings, msg)
}

func (dec *decoder) group(args []string) {
	if len(args) == 0 {
		dec.warnf("group without a name")
		return
	}
	dec.flush()
	dec.current = NewObject(args[0])
}

func (dec *decoder) vertex(args []string) {
	if len(args) < 3 {
		dec.warnf("vertex needs 3 coordinates, got %d", len(args))
		return
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			dec.warnf("bad vertex coordinate %q", args[i])
			return
		}
		xyz[i] = f
	}
	dec.model.Vertices = append(dec.model.Vertices, Vertex{xyz[0], xyz[1], xyz[2]})
}

func (dec *decoder) face(args []string) {
	if len(args) == 0 {
		dec.warnf("face without vertices")
		return
	}
	indices := make([]Index, len(args))
	for i, arg := range args {
		idx, err := parseIndex(arg)
		if err != nil {
			dec.warnf("bad face index %q", arg)
			return
		}
		indices[i] = idx
	}
	dec.current.AddFace(indices...)
}

// parseIndex reads the position index of a face token: v, v/vt, v//vn or
// v/vt/vn. Texture and normal references are discarded.
func parseIndex(token string) (Index, error) {
	if i := strings.IndexByte(token, '/'); i >= 0 {
		token = token[:i]
	}
	n, err := strconv.Atoi(token)
	return Index(n), err
}

// Reload decodes path again and finds the object called name in it. On any
// error, including a missing object, the caller keeps its current model.
func Reload(path, name string) (*Model, *Object, error) {
	model, err := LoadOBJ(path)
	if err != nil {
		return nil, nil, err
	}
	obj, ok := model.Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w after reload: %s", ErrNotFound, name)
	}
	return model, obj, nil
}
