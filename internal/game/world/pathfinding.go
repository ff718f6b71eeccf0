package world

import (
	"container/heap"

	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

const (
	straightCost = float32(1.0)
	diagonalCost = float32(1.414) // sqrt(2)
	climbCost    = float32(0.5)   // per unit of height difference
)

// directions lists 8-way moves, diagonals at odd indices.
var directions = [8][2]int{
	{0, 1},   // +Z
	{-1, 1},  // -X +Z
	{-1, 0},  // -X
	{-1, -1}, // -X -Z
	{0, -1},  // -Z
	{1, -1},  // +X -Z
	{1, 0},   // +X
	{1, 1},   // +X +Z
}

// PathNode represents a node in the A* search.
type PathNode struct {
	X, Z   int     // Column coordinates
	G      float32 // Cost from start
	H      float32 // Heuristic (estimated cost to goal)
	F      float32 // Total cost (G + H)
	Parent *PathNode
	Index  int // Index in heap
}

// PathHeap implements a priority queue for A* pathfinding.
type PathHeap []*PathNode

func (h PathHeap) Len() int           { return len(h) }
func (h PathHeap) Less(i, j int) bool { return h[i].F < h[j].F }
func (h PathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *PathHeap) Push(x any) {
	node := x.(*PathNode)
	node.Index = len(*h)
	*h = append(*h, node)
}

func (h *PathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[:n-1]
	return node
}

// PathFinder walks the columns of a stage. A move is allowed when the
// height difference between the two columns is at most MaxStep.
type PathFinder struct {
	hm      *terrain.HeightMap
	maxStep int
}

// NewPathFinder creates a pathfinder over hm. It returns nil for a nil map.
func NewPathFinder(hm *terrain.HeightMap, maxStep int) *PathFinder {
	if hm == nil {
		return nil
	}
	return &PathFinder{hm: hm, maxStep: max(maxStep, 0)}
}

// CanStep reports whether a single move from (x1, z1) to the adjacent (x2, z2) is allowed.
func (pf *PathFinder) CanStep(x1, z1, x2, z2 int) bool {
	if pf == nil || !pf.hm.InRange(x1, z1) || !pf.hm.InRange(x2, z2) {
		return false
	}
	return abs(pf.hm.At(x2, z2)-pf.hm.At(x1, z1)) <= pf.maxStep
}

// FindPath finds a path from start to goal using A*.
// Returns nil if no path exists.
func (pf *PathFinder) FindPath(startX, startZ, goalX, goalZ int) [][2]int {
	if pf == nil {
		return nil
	}
	if !pf.hm.InRange(startX, startZ) || !pf.hm.InRange(goalX, goalZ) {
		return nil
	}

	openSet := &PathHeap{}
	heap.Init(openSet)

	closedSet := make(map[int]bool)
	nodeMap := make(map[int]*PathNode)

	startNode := &PathNode{
		X: startX,
		Z: startZ,
		H: heuristic(startX, startZ, goalX, goalZ),
	}
	startNode.F = startNode.H
	heap.Push(openSet, startNode)
	nodeMap[pf.key(startX, startZ)] = startNode

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*PathNode)
		if current.X == goalX && current.Z == goalZ {
			return reconstructPath(current)
		}

		closedSet[pf.key(current.X, current.Z)] = true

		for i, dir := range directions {
			nx, nz := current.X+dir[0], current.Z+dir[1]
			if closedSet[pf.key(nx, nz)] || !pf.CanStep(current.X, current.Z, nx, nz) {
				continue
			}

			moveCost := straightCost
			if i%2 == 1 {
				moveCost = diagonalCost
				// No corner cutting: both orthogonal moves must be allowed.
				if !pf.CanStep(current.X, current.Z, nx, current.Z) ||
					!pf.CanStep(current.X, current.Z, current.X, nz) {
					continue
				}
			}
			moveCost += climbCost * float32(abs(pf.hm.At(nx, nz)-pf.hm.At(current.X, current.Z)))

			g := current.G + moveCost

			neighbor, exists := nodeMap[pf.key(nx, nz)]
			if !exists {
				neighbor = &PathNode{
					X:      nx,
					Z:      nz,
					G:      g,
					H:      heuristic(nx, nz, goalX, goalZ),
					Parent: current,
				}
				neighbor.F = neighbor.G + neighbor.H
				nodeMap[pf.key(nx, nz)] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.G {
				neighbor.G = g
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	return nil
}

// heuristic is the octile distance, which never overestimates the move cost.
func heuristic(x1, z1, x2, z2 int) float32 {
	dx := abs(x2 - x1)
	dz := abs(z2 - z1)
	if dx < dz {
		return float32(dx)*diagonalCost + float32(dz-dx)
	}
	return float32(dz)*diagonalCost + float32(dx-dz)
}

func (pf *PathFinder) key(x, z int) int {
	return z*pf.hm.Width() + x
}

func reconstructPath(node *PathNode) [][2]int {
	var path [][2]int
	for node != nil {
		path = append(path, [2]int{node.X, node.Z})
		node = node.Parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
