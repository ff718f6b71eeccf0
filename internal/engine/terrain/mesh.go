package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// topOcclusion darkens a top-face corner per taller neighbor.
	topOcclusion float32 = 0.75
	// wallOcclusion darkens a wall corner near a crease or a tall diagonal.
	wallOcclusion float32 = 0.6
)

// topQuadIndices winds the top face so it points up.
var topQuadIndices = [6]uint32{0, 2, 1, 1, 2, 3}

// wallSide describes one cardinal wall direction.
//
// Quad corners are 0=top-left, 1=top-right, 2=bottom-left, 3=bottom-right.
// "Left" to "right" runs along the axis perpendicular to the wall normal.
type wallSide struct {
	name    string
	dx, dz  int // step to the neighbor column
	ox, oz  int // wall plane offset from the column origin
	ax, az  int // left-to-right direction
	normal  mgl32.Vec3
	indices [6]uint32
}

// wallSides are emitted in this order for every column.
var wallSides = [4]wallSide{
	{name: "z-", dx: 0, dz: -1, ox: 0, oz: 0, ax: 1, az: 0, normal: mgl32.Vec3{0, 0, -1}, indices: [6]uint32{0, 1, 2, 1, 3, 2}},
	{name: "z+", dx: 0, dz: 1, ox: 0, oz: 1, ax: 1, az: 0, normal: mgl32.Vec3{0, 0, 1}, indices: [6]uint32{0, 3, 1, 0, 2, 3}},
	{name: "x-", dx: -1, dz: 0, ox: 0, oz: 0, ax: 0, az: 1, normal: mgl32.Vec3{-1, 0, 0}, indices: [6]uint32{0, 2, 1, 1, 2, 3}},
	{name: "x+", dx: 1, dz: 0, ox: 1, oz: 0, ax: 0, az: 1, normal: mgl32.Vec3{1, 0, 0}, indices: [6]uint32{0, 1, 3, 0, 3, 2}},
}

// meshRow is the output of one grid row with row-local indices.
type meshRow struct {
	vertices  []Vertex
	indices   []uint32
	wallQuads int
}

func (r *meshRow) appendQuad(v [4]Vertex, winding [6]uint32) {
	base := uint32(len(r.vertices))
	r.vertices = append(r.vertices, v[:]...)
	for _, i := range winding {
		r.indices = append(r.indices, base+i)
	}
}

// BuildMesh converts the padded grid into a shaded surface.
// Every interior column gets a top quad plus one wall quad per unit of
// height it stands above each cardinal neighbor.
func BuildMesh(grid *HeightGrid) *Mesh {
	rows := make([]meshRow, grid.depth)
	var vertexCount, indexCount int
	for z := range grid.depth {
		rows[z] = buildRow(grid, z)
		vertexCount += len(rows[z].vertices)
		indexCount += len(rows[z].indices)
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, vertexCount),
		Indices:  make([]uint32, 0, indexCount),
		TopQuads: grid.width * grid.depth,
	}
	for _, row := range rows {
		base := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, row.vertices...)
		for _, i := range row.indices {
			mesh.Indices = append(mesh.Indices, base+i)
		}
		mesh.WallQuads += row.wallQuads
	}

	return mesh
}

// buildRow emits every column of row z. It only reads the grid.
func buildRow(grid *HeightGrid, z int) meshRow {
	var row meshRow
	for x := range grid.width {
		y := grid.At(x, z)
		row.appendQuad(topQuad(grid, x, z, y), topQuadIndices)

		for i := range wallSides {
			side := &wallSides[i]
			nh := grid.At(x+side.dx, z+side.dz)
			if nh >= y {
				continue
			}
			dy := y - nh
			for h := range dy {
				row.appendQuad(wallQuad(grid, side, x, z, y, h, dy), side.indices)
				row.wallQuads++
			}
		}
	}
	return row
}

// topQuad builds the upward face of column (x, z) at height y.
// Each corner loses brightness for its two adjacent cardinal neighbors and
// its diagonal neighbor when they are taller than y.
func topQuad(grid *HeightGrid, x, z, y int) [4]Vertex {
	var quad [4]Vertex
	fy := float32(y)
	for c := range 4 {
		cx, cz := c&1, c>>1
		sx, sz := 2*cx-1, 2*cz-1

		n := float32(1)
		if grid.At(x, z+sz) > y {
			n *= topOcclusion
		}
		if grid.At(x+sx, z) > y {
			n *= topOcclusion
		}
		if grid.At(x+sx, z+sz) > y {
			n *= topOcclusion
		}

		quad[c] = Vertex{
			Position: mgl32.Vec3{float32(x + cx), fy, float32(z + cz)},
			Normal:   mgl32.Vec3{0, n, 0},
			TexCoord: mgl32.Vec2{0, fy * tintScale},
		}
	}
	return quad
}

// wallQuad builds step h (0 = topmost) of a wall dy units tall.
func wallQuad(grid *HeightGrid, side *wallSide, x, z, y, h, dy int) [4]Vertex {
	top := y - h
	bottom := top - 1

	// Diagonals sit beside the neighbor column along the wall.
	nx, nz := x+side.dx, z+side.dz
	leftH := grid.At(nx-side.ax, nz-side.az)
	rightH := grid.At(nx+side.ax, nz+side.az)

	n := [4]float32{1, 1, 1, 1}
	if h == dy-1 {
		n[2] *= wallOcclusion
		n[3] *= wallOcclusion
	}
	if leftH >= top {
		n[0] *= wallOcclusion
	}
	if rightH >= top {
		n[1] *= wallOcclusion
	}
	if leftH >= bottom {
		n[2] *= wallOcclusion
	}
	if rightH >= bottom {
		n[3] *= wallOcclusion
	}

	px := float32(x + side.ox)
	pz := float32(z + side.oz)
	ax, az := float32(side.ax), float32(side.az)
	v := float32(top) * tintScale

	corners := [4]mgl32.Vec3{
		{px, float32(top), pz},
		{px + ax, float32(top), pz + az},
		{px, float32(bottom), pz},
		{px + ax, float32(bottom), pz + az},
	}

	var quad [4]Vertex
	for c := range 4 {
		quad[c] = Vertex{
			Position: corners[c],
			Normal:   side.normal.Mul(n[c]),
			TexCoord: mgl32.Vec2{0, v},
		}
	}
	return quad
}
