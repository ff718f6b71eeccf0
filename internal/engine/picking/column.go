package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

// surfaceEpsilon absorbs rounding when a ray enters a cell exactly at its top.
const surfaceEpsilon = 1e-4

// Hit describes the column a ray struck.
type Hit struct {
	X, Z     int
	Distance float32
	Point    mgl32.Vec3
	Top      bool // true if the top face was struck, false for a wall
}

// PickColumn walks the ray cell by cell across hm and returns the first
// column it enters at or below that column's height.
// The ray must be in stage-local space (see world.Stage.Origin).
func PickColumn(r Ray, hm *terrain.HeightMap, maxDist float32) (Hit, bool) {
	if hm == nil || maxDist <= 0 {
		return Hit{}, false
	}

	_, hi := hm.Range()
	box := terrain.Bounds{
		Min: mgl32.Vec3{0, terrain.MinHeight, 0},
		Max: mgl32.Vec3{float32(hm.Width()), float32(hi), float32(hm.Depth())},
	}

	tEnter, tExit, ok := r.clip(box)
	if !ok {
		return Hit{}, false
	}
	t := max(tEnter, 0)
	limit := min(tExit, maxDist)
	if t > limit {
		return Hit{}, false
	}

	start := r.At(t)
	cx := clampInt(int(math.Floor(float64(start.X()))), 0, hm.Width()-1)
	cz := clampInt(int(math.Floor(float64(start.Z()))), 0, hm.Depth()-1)

	stepX, tMaxX, tDeltaX := traverseAxis(r.Origin.X(), r.Direction.X(), cx)
	stepZ, tMaxZ, tDeltaZ := traverseAxis(r.Origin.Z(), r.Direction.Z(), cz)

	oy, dy := r.Origin.Y(), r.Direction.Y()
	for {
		h := float32(hm.At(cx, cz))
		tEnd := min(tMaxX, tMaxZ, limit)

		yIn := oy + dy*t
		if yIn < h-surfaceEpsilon {
			return Hit{X: cx, Z: cz, Distance: t, Point: r.At(t)}, true
		}
		if dy < 0 && oy+dy*tEnd <= h {
			tTop := max((h-oy)/dy, t)
			return Hit{X: cx, Z: cz, Distance: tTop, Point: r.At(tTop), Top: true}, true
		}

		if tMaxX < tMaxZ {
			cx += stepX
			t = tMaxX
			tMaxX += tDeltaX
		} else {
			cz += stepZ
			t = tMaxZ
			tMaxZ += tDeltaZ
		}

		if t > limit || !hm.InRange(cx, cz) {
			return Hit{}, false
		}
	}
}

// traverseAxis returns the DDA step, the distance to the first cell boundary
// and the distance between boundaries along one axis.
func traverseAxis(origin, dir float32, cell int) (step int, tMax, tDelta float32) {
	inf := float32(math.Inf(1))
	switch {
	case dir > 0:
		return 1, (float32(cell+1) - origin) / dir, 1 / dir
	case dir < 0:
		return -1, (float32(cell) - origin) / dir, -1 / dir
	default:
		return 0, inf, inf
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
