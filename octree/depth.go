package octree

import (
	"golang.org/x/sync/errgroup"
)

// OctantsAtDepth returns, for each non-empty octant whose depth (the root's
// children are depth 1) equals depth, the list of point indices in that
// octant. Empty octants are omitted. Returns false if depth < 1 or the
// tree is empty.
//
// As a side effect, the tree retains the enumerated octants so that
// subsequent RadiusSearchLimited calls can refer to them by position. This
// call mutates that retained list and must not race with another
// OctantsAtDepth call or a RadiusSearchLimited call that depends on a
// prior enumeration.
func (t *Tree[P]) OctantsAtDepth(depth int) ([][]Index, bool) {
	if depth < 1 || t.root == nil {
		return nil, false
	}

	var collected []*octant[P]
	collectOctantsAtDepth(t.root, 1, depth, &collected)
	t.lastOctants = collected

	out := make([][]Index, len(collected))

	var g errgroup.Group
	for i, o := range collected {
		i, o := i, o
		if o.size == 0 {
			continue
		}
		g.Go(func() error {
			indices := make([]Index, 0, o.size)
			idx := o.start
			for n := uint32(0); n < o.size; n++ {
				indices = append(indices, idx)
				idx = t.succ[idx]
			}
			out[i] = indices
			return nil
		})
	}
	_ = g.Wait() // each goroutine only appends to its own pre-sized slot; never errors

	return out, true
}

func collectOctantsAtDepth[P any](node *octant[P], depth, target int, out *[]*octant[P]) {
	for c := 0; c < 8; c++ {
		child := node.child[c]
		if child == nil {
			continue
		}
		if depth == target {
			if child.size > 0 {
				*out = append(*out, child)
			}
			continue
		}
		collectOctantsAtDepth(child, depth+1, target, out)
	}
}

// RadiusSearchLimited returns the radius-neighbors of query restricted to
// the octant named by octantIndex (a position into the list returned by
// the most recent OctantsAtDepth call), but only when that octant alone
// could possibly have contained every neighbor of query within radius.
//
// It returns (nil, false) if octantIndex is negative or out of range. If
// the ball is not entirely inside the named octant and some other
// enumerated octant overlaps the ball, it returns (nil, false) signaling
// that the caller must fall back to a full-tree query. Otherwise it
// returns the octant-local result and true.
func (t *Tree[P]) RadiusSearchLimited(octantIndex int, query P, radius float64) ([]Index, bool) {
	out, _, ok := t.radiusSearchLimited(octantIndex, query, radius, false)
	return out, ok
}

// RadiusSearchLimitedWithDistances is RadiusSearchLimited's variant that
// also returns squared distances, index-aligned with the returned indices.
func (t *Tree[P]) RadiusSearchLimitedWithDistances(octantIndex int, query P, radius float64) ([]Index, []float64, bool) {
	return t.radiusSearchLimited(octantIndex, query, radius, true)
}

func (t *Tree[P]) radiusSearchLimited(octantIndex int, query P, radius float64, withDistances bool) ([]Index, []float64, bool) {
	if octantIndex < 0 || octantIndex >= len(t.lastOctants) {
		return nil, nil, false
	}

	q := t.coords(query)
	target := t.lastOctants[octantIndex]

	if !inside[P](q, radius, target) {
		r2 := radius * radius
		for i, o := range t.lastOctants {
			if i != octantIndex && overlaps[P](q, radius, r2, o) {
				return nil, nil, false
			}
		}
	}

	r2 := radius * radius
	var out []Index
	var dists []float64
	if withDistances {
		t.radiusNeighbors(target, q, radius, r2, &out, &dists)
		return out, dists, true
	}
	t.radiusNeighbors(target, q, radius, r2, &out, nil)
	return out, nil, true
}
