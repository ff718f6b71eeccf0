// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

// WireframeVertexCount is the number of vertices for a bounds wireframe (12 edges × 2).
const WireframeVertexCount = 24

// boxEdges lists the 12 edges of a box as pairs of corner indices.
// Corner i has bit 0 = max X, bit 1 = max Y, bit 2 = max Z.
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top face
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical edges
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// BoxCorners returns the 8 corners of b.
func BoxCorners(b terrain.Bounds) [8]mgl32.Vec3 {
	var corners [8]mgl32.Vec3
	for i := range corners {
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				corners[i][axis] = b.Max[axis]
			} else {
				corners[i][axis] = b.Min[axis]
			}
		}
	}
	return corners
}

// BoundsWireframe creates line vertices for a wireframe box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func BoundsWireframe(b terrain.Bounds) []float32 {
	corners := BoxCorners(b)
	out := make([]float32, 0, WireframeVertexCount*3)
	for _, e := range boxEdges {
		a, c := corners[e[0]], corners[e[1]]
		out = append(out, a.X(), a.Y(), a.Z(), c.X(), c.Y(), c.Z())
	}
	return out
}

// PadBounds expands b by padding on all sides, swapping inverted axes first.
func PadBounds(b terrain.Bounds, padding float32) terrain.Bounds {
	for axis := range 3 {
		if b.Min[axis] > b.Max[axis] {
			b.Min[axis], b.Max[axis] = b.Max[axis], b.Min[axis]
		}
	}
	pad := mgl32.Vec3{padding, padding, padding}
	return terrain.Bounds{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// Translate offsets b by origin, e.g. to move a chunk-local box into world space.
func Translate(b terrain.Bounds, origin mgl32.Vec3) terrain.Bounds {
	return terrain.Bounds{Min: b.Min.Add(origin), Max: b.Max.Add(origin)}
}
