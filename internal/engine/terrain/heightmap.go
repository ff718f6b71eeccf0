package terrain

import (
	"fmt"
	"math"
)

// HeightGrid is the padded working grid used while meshing.
//
// It stores (depth+2)×(width+2) cells row-major. Columns are addressed with
// interior coordinates: x ∈ [-1, width], z ∈ [-1, depth], where -1 and
// width/depth are the border ring. The border is evaluated from the same
// height source as the interior so edge columns see real neighbors.
type HeightGrid struct {
	width  int
	depth  int
	stride int
	cells  []int
}

// BuildHeightGrid samples field over the chunk at (offsetX, offsetZ) plus a one-cell border.
// Chunk offsets are in chunk units and are multiplied by the chunk size.
func BuildHeightGrid(width, depth, offsetX, offsetZ int, field HeightField) (*HeightGrid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: stage size must be positive, got %dx%d", ErrInvalidArgument, width, depth)
	}
	if field == nil {
		return nil, fmt.Errorf("%w: nil height field", ErrInvalidArgument)
	}

	g := newHeightGrid(width, depth)
	baseX := offsetX * width
	baseZ := offsetZ * depth

	for z := -1; z <= depth; z++ {
		for x := -1; x <= width; x++ {
			h := field.Height(float64(x+baseX), float64(z+baseZ))
			g.cells[g.index(x, z)] = quantize(h)
		}
	}

	return g, nil
}

// NewHeightGrid builds a padded grid from explicit rows.
// rows must hold depth+2 rows of width+2 values, border included.
func NewHeightGrid(width, depth int, rows [][]int) (*HeightGrid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: stage size must be positive, got %dx%d", ErrInvalidArgument, width, depth)
	}
	if len(rows) != depth+2 {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidArgument, depth+2, len(rows))
	}

	g := newHeightGrid(width, depth)
	for r, row := range rows {
		if len(row) != width+2 {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidArgument, r, len(row), width+2)
		}
		for c, h := range row {
			g.cells[r*g.stride+c] = clampHeight(h)
		}
	}

	return g, nil
}

func newHeightGrid(width, depth int) *HeightGrid {
	return &HeightGrid{
		width:  width,
		depth:  depth,
		stride: width + 2,
		cells:  make([]int, (width+2)*(depth+2)),
	}
}

func (g *HeightGrid) index(x, z int) int {
	return (z+1)*g.stride + (x + 1)
}

// Width returns the number of interior columns along X.
func (g *HeightGrid) Width() int { return g.width }

// Depth returns the number of interior columns along Z.
func (g *HeightGrid) Depth() int { return g.depth }

// At returns the height at (x, z). Border coordinates -1 and width/depth are valid.
func (g *HeightGrid) At(x, z int) int {
	return g.cells[g.index(x, z)]
}

// Interior copies the grid without its border.
func (g *HeightGrid) Interior() *HeightMap {
	hm := &HeightMap{
		width:  g.width,
		depth:  g.depth,
		values: make([]int, g.width*g.depth),
	}
	for z := range g.depth {
		start := g.index(0, z)
		copy(hm.values[z*g.width:(z+1)*g.width], g.cells[start:start+g.width])
	}
	return hm
}

// HeightMap is the published, border-free height grid. It is read-only.
type HeightMap struct {
	width  int
	depth  int
	values []int
}

// Width returns the number of columns along X.
func (m *HeightMap) Width() int { return m.width }

// Depth returns the number of columns along Z.
func (m *HeightMap) Depth() int { return m.depth }

// At returns the height of column (x, z).
func (m *HeightMap) At(x, z int) int {
	return m.values[z*m.width+x]
}

// InRange reports whether (x, z) addresses a column.
func (m *HeightMap) InRange(x, z int) bool {
	return x >= 0 && z >= 0 && x < m.width && z < m.depth
}

// Rows returns a copy of the grid indexed [z][x].
func (m *HeightMap) Rows() [][]int {
	rows := make([][]int, m.depth)
	for z := range m.depth {
		rows[z] = append([]int(nil), m.values[z*m.width:(z+1)*m.width]...)
	}
	return rows
}

// Range returns the lowest and highest column heights.
func (m *HeightMap) Range() (lo, hi int) {
	lo, hi = MaxHeight, MinHeight
	for _, v := range m.values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// quantize clamps a sampled height and truncates it to a whole column height.
func quantize(h float64) int {
	if math.IsNaN(h) || h < MinHeight {
		return MinHeight
	}
	if h > MaxHeight {
		return MaxHeight
	}
	return int(h)
}

func clampHeight(h int) int {
	return min(max(h, MinHeight), MaxHeight)
}
