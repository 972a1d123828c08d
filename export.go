package objview

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoFilename is returned by SaveOBJ when no output path is given.
var ErrNoFilename = errors.New("objview: no filename given")

// ExportStats summarizes one export.
type ExportStats struct {
	Vertices int // v lines written
	Faces    int // f lines written
	Skipped  int // face indices dropped as out of range
}

// Export writes o as a standalone OBJ: an o line, a g line, then the
// vertices o references, each once and renumbered from 1 in order of first
// use, interleaved with the faces rewritten to the new numbers. Indices
// that do not resolve against verts are skipped and passed to warn, which
// may be nil. A face left with no valid index is not written.
func Export(w io.Writer, o *Object, verts []Vertex, warn func(Index)) (ExportStats, error) {
	var stats ExportStats
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", o.Name)
	fmt.Fprintf(bw, "g %s\n", o.Name)

	written := make(map[Index]int)
	var sb strings.Builder
	for _, f := range o.Faces {
		sb.Reset()
		sb.WriteString("f")
		n := 0
		for _, idx := range f.Indices {
			v, ok := Lookup(verts, idx)
			if !ok {
				stats.Skipped++
				if warn != nil {
					warn(idx)
				}
				continue
			}
			local, seen := written[idx]
			if !seen {
				stats.Vertices++
				local = stats.Vertices
				written[idx] = local
				if _, err := fmt.Fprintf(bw, "v %s\n", v); err != nil {
					return stats, fmt.Errorf("objview: export %s: %w", o.Name, err)
				}
			}
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(local))
			n++
		}
		if n == 0 {
			continue
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return stats, fmt.Errorf("objview: export %s: %w", o.Name, err)
		}
		stats.Faces++
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("objview: export %s: %w", o.Name, err)
	}
	return stats, nil
}

// SaveOBJ exports o to a new file at path, replacing any existing file.
func SaveOBJ(path string, o *Object, verts []Vertex, warn func(Index)) (ExportStats, error) {
	if path == "" {
		return ExportStats{}, ErrNoFilename
	}
	file, err := os.Create(path)
	if err != nil {
		return ExportStats{}, fmt.Errorf("objview: create %s: %w", path, err)
	}
	stats, err := Export(file, o, verts, warn)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("objview: close %s: %w", path, cerr)
	}
	return stats, err
}
