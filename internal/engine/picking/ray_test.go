package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func unitBox() terrain.Bounds {
	return terrain.Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
}

func TestIntersectBounds(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		wantT  float32
		wantOK bool
	}{
		{"hit from outside", NewRay(mgl32.Vec3{-1, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}), 1, true},
		{"hit from inside returns exit", NewRay(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0, 1, 0}), 0.5, true},
		{"pointing away", NewRay(mgl32.Vec3{-1, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}), 0, false},
		{"parallel outside", NewRay(mgl32.Vec3{-1, 2, 0.5}, mgl32.Vec3{1, 0, 0}), 0, false},
		{"from above", NewRay(mgl32.Vec3{0.5, 5, 0.5}, mgl32.Vec3{0, -2, 0}), 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectBounds(unitBox())
			if ok != tt.wantOK {
				t.Fatalf("expected hit=%v, got %v", tt.wantOK, ok)
			}
			if ok && !approx(got, tt.wantT) {
				t.Errorf("expected t=%v, got %v", tt.wantT, got)
			}
		})
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := NewRay(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, -1, 0})
	x, z, ok := r.IntersectPlaneY(4)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !approx(x, 6) || !approx(z, 0) {
		t.Errorf("expected (6, 0), got (%v, %v)", x, z)
	}

	if _, _, ok := NewRay(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 0, 0}).IntersectPlaneY(4); ok {
		t.Error("expected no intersection for parallel ray")
	}
	if _, _, ok := NewRay(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 1, 0}).IntersectPlaneY(4); ok {
		t.Error("expected no intersection behind origin")
	}
}

func TestScreenToRay_Identity(t *testing.T) {
	// With an identity inverse view-projection the screen center spans NDC depth -1 to 1.
	r := ScreenToRay(50, 50, 100, 100, mgl32.Ident4())
	if !r.Origin.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("expected origin (0,0,-1), got %v", r.Origin)
	}
	if !r.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("expected direction (0,0,1), got %v", r.Direction)
	}
}

// heightMap builds a border-free map from interior rows, padding with zeros.
func heightMap(t *testing.T, interior [][]int) *terrain.HeightMap {
	t.Helper()
	depth, width := len(interior), len(interior[0])
	rows := make([][]int, depth+2)
	for z := range rows {
		rows[z] = make([]int, width+2)
		if z >= 1 && z <= depth {
			copy(rows[z][1:], interior[z-1])
		}
	}
	g, err := terrain.NewHeightGrid(width, depth, rows)
	if err != nil {
		t.Fatalf("NewHeightGrid failed: %v", err)
	}
	return g.Interior()
}

func TestPickColumn_Wall(t *testing.T) {
	hm := heightMap(t, [][]int{{1, 1, 5, 1}})

	hit, ok := PickColumn(NewRay(mgl32.Vec3{-1, 3, 0.5}, mgl32.Vec3{1, 0, 0}), hm, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.X != 2 || hit.Z != 0 {
		t.Errorf("expected column (2, 0), got (%d, %d)", hit.X, hit.Z)
	}
	if hit.Top {
		t.Error("expected a wall hit")
	}
	if !approx(hit.Distance, 3) {
		t.Errorf("expected distance 3, got %v", hit.Distance)
	}
}

func TestPickColumn_Top(t *testing.T) {
	hm := heightMap(t, [][]int{{1, 1, 5, 1}})

	hit, ok := PickColumn(NewRay(mgl32.Vec3{0.5, 10, 0.5}, mgl32.Vec3{0, -1, 0}), hm, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.X != 0 || hit.Z != 0 || !hit.Top {
		t.Errorf("expected top of column (0, 0), got %+v", hit)
	}
	if !approx(hit.Distance, 9) || !hit.Point.ApproxEqualThreshold(mgl32.Vec3{0.5, 1, 0.5}, 1e-4) {
		t.Errorf("expected hit at (0.5, 1, 0.5) distance 9, got %v distance %v", hit.Point, hit.Distance)
	}

	if _, ok := PickColumn(NewRay(mgl32.Vec3{0.5, 10, 0.5}, mgl32.Vec3{0, -1, 0}), hm, 5); ok {
		t.Error("expected no hit beyond maxDist")
	}
}

func TestPickColumn_Diagonal(t *testing.T) {
	hm := heightMap(t, [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 3, 1},
		{1, 1, 1, 1},
	})

	hit, ok := PickColumn(NewRay(mgl32.Vec3{-1, 2, -1}, mgl32.Vec3{1, 0, 1}), hm, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.X != 2 || hit.Z != 2 {
		t.Errorf("expected column (2, 2), got (%d, %d)", hit.X, hit.Z)
	}
}

func TestPickColumn_Miss(t *testing.T) {
	hm := heightMap(t, [][]int{{1, 2}, {3, 4}})

	if _, ok := PickColumn(NewRay(mgl32.Vec3{0.5, 10, 0.5}, mgl32.Vec3{0, 1, 0}), hm, 100); ok {
		t.Error("expected no hit for a ray pointing up")
	}
	if _, ok := PickColumn(NewRay(mgl32.Vec3{-1, 10, -1}, mgl32.Vec3{-1, -1, 0}), hm, 100); ok {
		t.Error("expected no hit for a ray leaving the stage")
	}
	if _, ok := PickColumn(NewRay(mgl32.Vec3{0.5, 10, 0.5}, mgl32.Vec3{0, -1, 0}), nil, 100); ok {
		t.Error("expected no hit without a height map")
	}
}
