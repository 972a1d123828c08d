package objview

import (
	"errors"
	"strings"
)

// ErrInvalidMode is returned by ParseDisplayMode for unrecognized input.
var ErrInvalidMode = errors.New("objview: invalid display mode")

// DisplayMode selects how an object's vertices are drawn.
type DisplayMode int

const (
	_ DisplayMode = iota
	PointCloud
	Wireframe
	Solid
)

func (m DisplayMode) String() string {
	switch m {
	case PointCloud:
		return "PointCloud"
	case Wireframe:
		return "Wireframe"
	case Solid:
		return "Solid"
	}
	return "Invalid"
}

// Primitive returns the primitive the mode emits vertices as.
func (m DisplayMode) Primitive() Primitive {
	switch m {
	case PointCloud:
		return Points
	case Wireframe:
		return Lines
	case Solid:
		return Triangles
	}
	return 0
}

// ParseDisplayMode accepts the menu numbers 1, 2 and 3 or the mode names,
// case-insensitively.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "pointcloud", "points":
		return PointCloud, nil
	case "2", "wireframe":
		return Wireframe, nil
	case "3", "solid":
		return Solid, nil
	}
	return 0, ErrInvalidMode
}
