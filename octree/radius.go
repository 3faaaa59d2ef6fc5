package octree

// RadiusNeighbors returns the indices of every point within radius of
// query (squared-Euclidean, strictly less than radius^2). Order follows
// tree traversal, not distance; results are deduplicated by construction
// since octant runs are disjoint.
func (t *Tree[P]) RadiusNeighbors(query P, radius float64) []Index {
	if t.root == nil {
		return nil
	}
	q := t.coords(query)
	r2 := radius * radius
	var out []Index
	t.radiusNeighbors(t.root, q, radius, r2, &out, nil)
	return out
}

// RadiusNeighborsWithDistances is RadiusNeighbors's parallel variant that
// also returns each result's squared Euclidean distance to query,
// index-aligned with the returned indices.
func (t *Tree[P]) RadiusNeighborsWithDistances(query P, radius float64) ([]Index, []float64) {
	if t.root == nil {
		return nil, nil
	}
	q := t.coords(query)
	r2 := radius * radius
	var out []Index
	var dists []float64
	t.radiusNeighbors(t.root, q, radius, r2, &out, &dists)
	return out, dists
}

func (t *Tree[P]) coords(p P) [3]float64 {
	return [3]float64{t.access.Coord(p, 0), t.access.Coord(p, 1), t.access.Coord(p, 2)}
}

func (t *Tree[P]) squaredDistance(q [3]float64, idx Index) float64 {
	p := t.points.At(idx)
	var sum float64
	for axis := 0; axis < 3; axis++ {
		d := q[axis] - t.access.Coord(p, axis)
		sum += d * d
	}
	return sum
}

// radiusNeighbors appends matches from the subtree rooted at o into out
// (and dists, if non-nil) in traversal order.
func (t *Tree[P]) radiusNeighbors(o *octant[P], q [3]float64, radius, r2 float64, out *[]Index, dists *[]float64) {
	if contains[P](q, r2, o) {
		idx := o.start
		for i := uint32(0); i < o.size; i++ {
			*out = append(*out, idx)
			if dists != nil {
				*dists = append(*dists, t.squaredDistance(q, idx))
			}
			idx = t.succ[idx]
		}
		return
	}

	if o.isLeaf {
		idx := o.start
		for i := uint32(0); i < o.size; i++ {
			d := t.squaredDistance(q, idx)
			if d < r2 {
				*out = append(*out, idx)
				if dists != nil {
					*dists = append(*dists, d)
				}
			}
			idx = t.succ[idx]
		}
		return
	}

	for c := 0; c < 8; c++ {
		child := o.child[c]
		if child == nil || !overlaps[P](q, radius, r2, child) {
			continue
		}
		t.radiusNeighbors(child, q, radius, r2, out, dists)
	}
}
