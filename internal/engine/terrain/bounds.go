package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComputeBounds reduces vertex positions to their axis-aligned bounding box.
// An empty slice yields the zero Bounds.
func ComputeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for i := 1; i < len(vertices); i++ {
		updateBounds(&b, vertices[i].Position)
	}
	return b
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for axis := range 3 {
		if p[axis] < b.Min[axis] {
			b.Min[axis] = p[axis]
		}
		if p[axis] > b.Max[axis] {
			b.Max[axis] = p[axis]
		}
	}
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for axis := range 3 {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Size returns the box extent on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
