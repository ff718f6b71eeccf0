// Package world owns generated stages and maps world positions onto them.
package world

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/blueocean-stage/internal/config"
	"github.com/Faultbox/blueocean-stage/internal/engine/picking"
	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
	"github.com/Faultbox/blueocean-stage/internal/logger"
)

// ChunkCoord addresses a stage in chunk units.
type ChunkCoord struct {
	X, Z int
}

// Manager holds a rectangle of adjacent stages generated from one config.
type Manager struct {
	cfg     *config.Config
	factory terrain.ObjectFactory
	stages  map[ChunkCoord]*Stage
}

// NewManager creates an empty manager. factory may be nil.
func NewManager(cfg *config.Config, factory terrain.ObjectFactory) *Manager {
	return &Manager{
		cfg:     cfg,
		factory: factory,
		stages:  make(map[ChunkCoord]*Stage),
	}
}

// Generate builds every chunk in [0, ChunksX) × [0, ChunksZ).
// Chunks are generated one after another; the first failure aborts.
func (m *Manager) Generate() error {
	for cz := range m.cfg.Stage.ChunksZ {
		for cx := range m.cfg.Stage.ChunksX {
			if _, err := m.Load(ChunkCoord{X: cx, Z: cz}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load returns the stage at c, generating it on first use.
func (m *Manager) Load(c ChunkCoord) (*Stage, error) {
	if s, ok := m.stages[c]; ok {
		return s, nil
	}

	s, err := NewFromConfig(m.cfg, c.X, c.Z, m.factory)
	if err != nil {
		return nil, fmt.Errorf("generating chunk (%d, %d): %w", c.X, c.Z, err)
	}
	m.stages[c] = s

	lo, hi := s.HeightMap().Range()
	logger.Info("chunk ready",
		zap.Int("chunk_x", c.X),
		zap.Int("chunk_z", c.Z),
		zap.Int("min_height", lo),
		zap.Int("max_height", hi),
		zap.Int("wall_quads", s.Mesh().WallQuads))

	return s, nil
}

// Stage returns an already generated stage.
func (m *Manager) Stage(c ChunkCoord) (*Stage, bool) {
	s, ok := m.stages[c]
	return s, ok
}

// Chunks lists generated chunk coordinates in row-major order.
func (m *Manager) Chunks() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(m.stages))
	for c := range m.stages {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Z != coords[j].Z {
			return coords[i].Z < coords[j].Z
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// WorldToCell converts a world position to a chunk and a column inside it.
func (m *Manager) WorldToCell(pos mgl32.Vec3) (c ChunkCoord, x, z int) {
	wx := int(math.Floor(float64(pos.X())))
	wz := int(math.Floor(float64(pos.Z())))
	w, d := m.cfg.Stage.Width, m.cfg.Stage.Depth

	c = ChunkCoord{X: floorDiv(wx, w), Z: floorDiv(wz, d)}
	return c, wx - c.X*w, wz - c.Z*d
}

// CellToWorld returns the world position of the top center of a column.
// The height is zero if the chunk has not been generated.
func (m *Manager) CellToWorld(c ChunkCoord, x, z int) mgl32.Vec3 {
	wx := c.X*m.cfg.Stage.Width + x
	wz := c.Z*m.cfg.Stage.Depth + z

	var y float32
	if s, ok := m.stages[c]; ok && s.HeightMap().InRange(x, z) {
		y = float32(s.HeightMap().At(x, z))
	}
	return mgl32.Vec3{float32(wx) + 0.5, y, float32(wz) + 0.5}
}

// HeightAt returns the column height under a world position.
func (m *Manager) HeightAt(worldX, worldZ float32) (int, bool) {
	c, x, z := m.WorldToCell(mgl32.Vec3{worldX, 0, worldZ})
	s, ok := m.stages[c]
	if !ok {
		return 0, false
	}
	return s.HeightMap().At(x, z), true
}

// Pick returns the nearest column struck by a world-space ray across all generated chunks.
func (m *Manager) Pick(r picking.Ray, maxDist float32) (ChunkCoord, picking.Hit, bool) {
	var (
		best  picking.Hit
		chunk ChunkCoord
		found bool
	)
	for c, s := range m.stages {
		origin := s.Origin()
		local := picking.Ray{Origin: r.Origin.Sub(origin), Direction: r.Direction}
		hit, ok := picking.PickColumn(local, s.HeightMap(), maxDist)
		if !ok || (found && hit.Distance >= best.Distance) {
			continue
		}
		hit.Point = hit.Point.Add(origin)
		best, chunk, found = hit, c, true
	}
	return chunk, best, found
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
