package octree

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// Tree is an index-based octree over a point set of type P. The zero value
// is not usable; construct one with New.
type Tree[P any] struct {
	logger golog.Logger
	access Accessor[P]
	params Params

	points pointSource[P]
	succ   []Index
	root   *octant[P]

	// lastOctants is the set of octant pointers enumerated by the most
	// recent OctantsAtDepth call, retained so RadiusSearchLimited can
	// refer to them by position. It mutates independently of queries and
	// must not be read concurrently with another OctantsAtDepth call.
	lastOctants []*octant[P]
}

// Size returns the number of active points in the tree, 0 if empty.
func (t *Tree[P]) Size() int {
	if t.root == nil {
		return 0
	}
	return int(t.root.size)
}

// Empty reports whether the tree currently has no points.
func (t *Tree[P]) Empty() bool {
	return t.root == nil
}

// Initialize builds the tree over every point in points.
func (t *Tree[P]) Initialize(points Container[P]) error {
	if points == nil {
		return errors.New("octree: points container must not be nil")
	}
	t.Clear()

	n := points.Len()
	if t.params.CopyPoints {
		t.points = ownedSource[P](points)
	} else {
		t.points = borrowedSource[P](points)
	}

	if n == 0 {
		return nil
	}

	succ := make([]Index, n)
	for i := 0; i < n; i++ {
		succ[i] = Index(i + 1)
	}
	t.succ = succ

	center, extent := boundingCube(t.access, t.points, 0, n)
	t.root = createOctant[P](t.access, t.points, t.succ, t.params, center, extent, 0, Index(n-1), uint32(n))

	if t.root.size == 1 {
		t.logger.Debugw("built single-point octree", "bucketSize", t.params.BucketSize)
	}
	return nil
}

// InitializeSubset builds the tree over only the points named by
// subsetIndices, in that order. Indices not named remain inactive. An
// empty subsetIndices clears the tree and returns with no error.
func (t *Tree[P]) InitializeSubset(points Container[P], subsetIndices []Index) error {
	if points == nil {
		return errors.New("octree: points container must not be nil")
	}
	t.Clear()

	n := points.Len()
	if t.params.CopyPoints {
		t.points = ownedSource[P](points)
	} else {
		t.points = borrowedSource[P](points)
	}

	succ := make([]Index, n)
	t.succ = succ

	if len(subsetIndices) == 0 {
		return nil
	}

	last := subsetIndices[0]
	for i := 1; i < len(subsetIndices); i++ {
		cur := subsetIndices[i]
		succ[last] = cur
		last = cur
	}

	center, extent := boundingCubeSubset(t.access, t.points, subsetIndices)
	size := uint32(len(subsetIndices))
	t.root = createOctant[P](t.access, t.points, t.succ, t.params, center, extent, subsetIndices[0], last, size)

	if t.root.size == 1 {
		t.logger.Debugw("built single-point octree from subset", "bucketSize", t.params.BucketSize)
	}
	return nil
}

// Clear releases the tree, the successor array and, if the points were
// owned, the owned copy.
func (t *Tree[P]) Clear() {
	t.root = nil
	t.succ = nil
	t.points = pointSource[P]{}
	t.lastOctants = nil
}

func boundingCube[P any](access Accessor[P], points pointSource[P], start, n int) ([3]float64, float64) {
	first := points.At(Index(start))
	min := [3]float64{access.Coord(first, 0), access.Coord(first, 1), access.Coord(first, 2)}
	max := min

	for i := start + 1; i < n; i++ {
		p := points.At(Index(i))
		for axis := 0; axis < 3; axis++ {
			v := access.Coord(p, axis)
			if v < min[axis] {
				min[axis] = v
			}
			if v > max[axis] {
				max[axis] = v
			}
		}
	}
	return cubeFromBounds(min, max)
}

func boundingCubeSubset[P any](access Accessor[P], points pointSource[P], indices []Index) ([3]float64, float64) {
	first := points.At(indices[0])
	min := [3]float64{access.Coord(first, 0), access.Coord(first, 1), access.Coord(first, 2)}
	max := min

	for i := 1; i < len(indices); i++ {
		p := points.At(indices[i])
		for axis := 0; axis < 3; axis++ {
			v := access.Coord(p, axis)
			if v < min[axis] {
				min[axis] = v
			}
			if v > max[axis] {
				max[axis] = v
			}
		}
	}
	return cubeFromBounds(min, max)
}

// cubeFromBounds returns the center and half-extent of the cube tightly
// containing [min, max], edge-aligned to the longest axis.
func cubeFromBounds(min, max [3]float64) ([3]float64, float64) {
	center := min
	maxExtent := (max[0] - min[0]) / 2
	center[0] += maxExtent
	for axis := 1; axis < 3; axis++ {
		extent := (max[axis] - min[axis]) / 2
		center[axis] += extent
		if extent > maxExtent {
			maxExtent = extent
		}
	}
	return center, math.Max(maxExtent, 0)
}
