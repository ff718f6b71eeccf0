package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// objectScale is the uniform scale applied to decorations.
const objectScale = 1.0 / 16.0

// Prototype identifies a decoration model. Its meaning belongs to the factory.
type Prototype int

// StageObject is a decoration placed on top of a column.
type StageObject struct {
	Prototype Prototype
	Position  mgl32.Vec3
	Rotation  mgl32.Vec3
	Scale     mgl32.Vec3
}

// ObjectFactory decides which decoration, if any, belongs on a column of the given height.
type ObjectFactory interface {
	Create(height int) (Prototype, bool)
}

// ObjectFactoryFunc adapts a function to ObjectFactory.
type ObjectFactoryFunc func(height int) (Prototype, bool)

// Create implements ObjectFactory.
func (f ObjectFactoryFunc) Create(height int) (Prototype, bool) {
	return f(height)
}

// NopFactory never places anything.
type NopFactory struct{}

// Create implements ObjectFactory.
func (NopFactory) Create(int) (Prototype, bool) { return 0, false }

// PlaceObjects scans hm row by row and asks factory for a decoration per column.
// Accepted objects sit centered on the column top.
func PlaceObjects(hm *HeightMap, factory ObjectFactory) []StageObject {
	if hm == nil || factory == nil {
		return nil
	}

	var objects []StageObject
	for z := range hm.depth {
		for x := range hm.width {
			y := hm.At(x, z)
			proto, ok := factory.Create(y)
			if !ok {
				continue
			}
			objects = append(objects, StageObject{
				Prototype: proto,
				Position:  mgl32.Vec3{float32(x) + 0.5, float32(y), float32(z) + 0.5},
				Scale:     mgl32.Vec3{objectScale, objectScale, objectScale},
			})
		}
	}
	return objects
}

// HeightBand maps an inclusive height range to a prototype.
type HeightBand struct {
	Min, Max  int
	Prototype Prototype
}

// BandFactory places the prototype of the first band containing the column height.
type BandFactory []HeightBand

// Create implements ObjectFactory.
func (f BandFactory) Create(height int) (Prototype, bool) {
	for _, b := range f {
		if height >= b.Min && height <= b.Max {
			return b.Prototype, true
		}
	}
	return 0, false
}
