// Package noise provides the deterministic height field used to synthesize stages.
package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a pair of seeded 2D noise functions.
type Source interface {
	// FBM returns multi-octave (fractal) noise at (x, y).
	FBM(x, y float64) float64
	// Simplex returns single-octave simplex noise in [-1, 1].
	Simplex(x, y float64) float64
}

// Options configures the default noise source.
type Options struct {
	Seed    int64
	Alpha   float64 // amplitude divisor per octave
	Beta    float64 // frequency multiplier per octave
	Octaves int32
}

// DefaultOptions mirrors the usual fBm setup: 4 octaves, halving amplitude, doubling frequency.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Alpha:   2,
		Beta:    2,
		Octaves: 4,
	}
}

// PerlinSource backs FBM with go-perlin and Simplex with opensimplex.
type PerlinSource struct {
	fbm     *perlin.Perlin
	simplex opensimplex.Noise
}

// NewSource creates a seeded source. Zero-valued option fields fall back to defaults.
func NewSource(opts Options) *PerlinSource {
	def := DefaultOptions()
	if opts.Alpha == 0 {
		opts.Alpha = def.Alpha
	}
	if opts.Beta == 0 {
		opts.Beta = def.Beta
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}

	return &PerlinSource{
		fbm: perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, opts.Seed),
		// Simplex is seeded one past the fBm seed.
		simplex: opensimplex.New(opts.Seed + 1),
	}
}

// FBM implements Source.
func (s *PerlinSource) FBM(x, y float64) float64 {
	return s.fbm.Noise2D(x, y)
}

// Simplex implements Source.
func (s *PerlinSource) Simplex(x, y float64) float64 {
	return s.simplex.Eval2(x, y)
}
