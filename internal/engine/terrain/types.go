// Package terrain builds voxel-column height grids and their shaded surface meshes.
package terrain

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidArgument reports a caller contract violation such as a non-positive size.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// MinHeight and MaxHeight bound every column height.
	MinHeight = 0
	MaxHeight = 16

	// tintScale maps a height to the V texture coordinate.
	tintScale = 1.0 / MaxHeight
)

// Vertex is one corner of a quad. Normal length carries the occlusion factor.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh holds the stage surface ready for GPU upload.
// Vertices are never shared between quads: every quad owns 4 vertices and 6 indices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	TopQuads  int
	WallQuads int
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// HeightField is anything that yields an elevation for absolute column coordinates.
type HeightField interface {
	Height(worldX, worldZ float64) float64
}
