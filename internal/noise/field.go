package noise

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinHeight and MaxHeight bound every value the field produces.
	MinHeight = 0.0
	MaxHeight = 16.0

	// baseElevation lifts flat areas to a small positive height.
	baseElevation = 2.0
)

// Field combines an fBm elevation with a simplex-driven amplitude so that hill
// magnitude varies across the map.
//
// Scale.X is the base noise frequency, Scale.Y the amplitude-noise frequency
// (relative to the scaled position) and Scale.Z the amplitude magnitude.
type Field struct {
	Source Source
	Scale  mgl32.Vec3
}

// NewField creates a field over src.
func NewField(src Source, scale mgl32.Vec3) *Field {
	return &Field{Source: src, Scale: scale}
}

// Height evaluates the field at absolute column coordinates.
// The result is always within [MinHeight, MaxHeight].
func (f *Field) Height(worldX, worldZ float64) float64 {
	px := worldX * float64(f.Scale.X())
	pz := worldZ * float64(f.Scale.X())

	h := f.Source.FBM(px, pz)

	ay := float64(f.Scale.Y())
	a := (f.Source.Simplex(px*ay, pz*ay) + 1) / 2 * float64(f.Scale.Z())

	return clamp(h*a+baseElevation, MinHeight, MaxHeight)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
