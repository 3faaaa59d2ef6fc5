package octree

import "math"

// NoMinDistance disables the minimum-distance lower bound in FindNeighbor.
const NoMinDistance = -1

// FindNeighbor returns the index of the closest point to query, or false
// if the tree is empty or no candidate qualifies.
//
// minDistance < 0 enforces no lower bound (every nonnegative squared
// distance qualifies). minDistance >= 0 requires a candidate's squared
// distance to be strictly greater than minDistance^2 — passing 0 excludes
// an exact self-match.
func (t *Tree[P]) FindNeighbor(query P, minDistance float64) (Index, bool) {
	if t.root == nil {
		return 0, false
	}

	q := t.coords(query)
	minSq := minDistance
	if minDistance >= 0 {
		minSq = minDistance * minDistance
	}

	st := &nearestState{maxDistance: math.Inf(1), found: false}
	t.findNeighbor(t.root, q, minSq, st)
	if !st.found {
		return 0, false
	}
	return st.resultIndex, true
}

type nearestState struct {
	maxDistance float64
	resultIndex Index
	found       bool
}

// findNeighbor descends the subtree rooted at o, updating st in place, and
// returns true once the current best ball is fully contained in o (a
// signal to the caller that no sibling or ancestor needs examining).
func (t *Tree[P]) findNeighbor(o *octant[P], q [3]float64, minSq float64, st *nearestState) bool {
	if o.isLeaf {
		idx := o.start
		sqrMax := st.maxDistance * st.maxDistance
		for i := uint32(0); i < o.size; i++ {
			d := t.squaredDistance(q, idx)
			if d > minSq && d < sqrMax {
				st.resultIndex = idx
				st.found = true
				sqrMax = d
			}
			idx = t.succ[idx]
		}
		st.maxDistance = math.Sqrt(sqrMax)
		return inside[P](q, st.maxDistance, o)
	}

	code := mortonCode(q, o.center)
	if child := o.child[code]; child != nil {
		if t.findNeighbor(child, q, minSq, st) {
			return true
		}
	}

	sqrMax := st.maxDistance * st.maxDistance
	for c := uint8(0); c < 8; c++ {
		if c == code {
			continue
		}
		child := o.child[c]
		if child == nil || !overlaps[P](q, st.maxDistance, sqrMax, child) {
			continue
		}
		if t.findNeighbor(child, q, minSq, st) {
			return true
		}
	}

	return inside[P](q, st.maxDistance, o)
}
