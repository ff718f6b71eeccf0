package world

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/blueocean-stage/internal/config"
	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
	"github.com/Faultbox/blueocean-stage/internal/logger"
	"github.com/Faultbox/blueocean-stage/internal/noise"
)

// Params are the construction inputs of a Stage.
type Params struct {
	Width   int // columns along X
	Depth   int // columns along Z
	OffsetX int // chunk coordinate, multiplied by Width
	OffsetZ int // chunk coordinate, multiplied by Depth

	Noise noise.Source
	Scale mgl32.Vec3 // base frequency, amplitude frequency, amplitude magnitude

	// Factory decides decorations. Nil means no decorations.
	Factory terrain.ObjectFactory
	// PlaceObjects enables the decoration pass. Off by default.
	PlaceObjects bool
}

// Stage is one generated chunk of landscape. It is immutable after New returns.
type Stage struct {
	width, depth     int
	offsetX, offsetZ int

	heights *terrain.HeightMap
	mesh    *terrain.Mesh
	bounds  terrain.Bounds
	objects []terrain.StageObject
}

// New generates a stage. Either the whole stage is built or an error is returned.
func New(p Params) (*Stage, error) {
	if p.Width <= 0 || p.Depth <= 0 {
		return nil, fmt.Errorf("%w: stage size must be positive, got %dx%d", terrain.ErrInvalidArgument, p.Width, p.Depth)
	}
	if p.Noise == nil {
		return nil, fmt.Errorf("%w: nil noise source", terrain.ErrInvalidArgument)
	}

	start := time.Now()

	field := noise.NewField(p.Noise, p.Scale)
	grid, err := terrain.BuildHeightGrid(p.Width, p.Depth, p.OffsetX, p.OffsetZ, field)
	if err != nil {
		return nil, err
	}

	mesh := terrain.BuildMesh(grid)
	bounds := terrain.ComputeBounds(mesh.Vertices)

	s := &Stage{
		width:   p.Width,
		depth:   p.Depth,
		offsetX: p.OffsetX,
		offsetZ: p.OffsetZ,
		heights: grid.Interior(),
		mesh:    mesh,
		bounds:  bounds,
	}

	if p.PlaceObjects && p.Factory != nil {
		s.objects = terrain.PlaceObjects(s.heights, p.Factory)
	}

	logger.Debug("stage built",
		zap.Int("width", p.Width),
		zap.Int("depth", p.Depth),
		zap.Int("offset_x", p.OffsetX),
		zap.Int("offset_z", p.OffsetZ),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
		zap.Int("wall_quads", mesh.WallQuads),
		zap.Int("objects", len(s.objects)),
		zap.Duration("elapsed", time.Since(start)))

	return s, nil
}

// NewFromConfig builds the chunk at (offsetX, offsetZ) using the configured noise.
// A nil factory falls back to the configured object bands.
func NewFromConfig(cfg *config.Config, offsetX, offsetZ int, factory terrain.ObjectFactory) (*Stage, error) {
	if factory == nil {
		factory = BandFactory(cfg.Stage.ObjectBands)
	}
	src := noise.NewSource(noise.Options{
		Seed:    cfg.Noise.Seed,
		Alpha:   cfg.Noise.Alpha,
		Beta:    cfg.Noise.Beta,
		Octaves: cfg.Noise.Octaves,
	})
	return New(Params{
		Width:        cfg.Stage.Width,
		Depth:        cfg.Stage.Depth,
		OffsetX:      offsetX,
		OffsetZ:      offsetZ,
		Noise:        src,
		Scale:        mgl32.Vec3(cfg.Stage.Scale),
		Factory:      factory,
		PlaceObjects: cfg.Stage.PlaceObjects,
	})
}

// BandFactory converts configured object bands into a factory.
func BandFactory(bands []config.ObjectBand) terrain.BandFactory {
	f := make(terrain.BandFactory, 0, len(bands))
	for _, b := range bands {
		f = append(f, terrain.HeightBand{Min: b.Min, Max: b.Max, Prototype: terrain.Prototype(b.Prototype)})
	}
	return f
}

// HeightMap returns the border-free height grid.
func (s *Stage) HeightMap() *terrain.HeightMap { return s.heights }

// Mesh returns the surface mesh. Callers must not modify it.
func (s *Stage) Mesh() *terrain.Mesh { return s.mesh }

// Bounds returns the mesh bounding box.
func (s *Stage) Bounds() terrain.Bounds { return s.bounds }

// Size returns the stage dimensions in columns.
func (s *Stage) Size() (width, depth int) { return s.width, s.depth }

// Offset returns the chunk coordinate the stage was generated at.
func (s *Stage) Offset() (x, z int) { return s.offsetX, s.offsetZ }

// Origin is the world translation of the chunk-local mesh.
func (s *Stage) Origin() mgl32.Vec3 {
	return mgl32.Vec3{float32(s.offsetX * s.width), 0, float32(s.offsetZ * s.depth)}
}

// Objects returns a copy of the placed decorations. Empty unless placement was requested.
func (s *Stage) Objects() []terrain.StageObject {
	return append([]terrain.StageObject{}, s.objects...)
}
