package octree

import "math"

// inside reports whether the closed ball of radius r around q is fully
// contained in o's cube: for each axis, |q_axis - c_axis| + r <= e.
func inside[P any](q [3]float64, r float64, o *octant[P]) bool {
	for axis := 0; axis < 3; axis++ {
		if math.Abs(q[axis]-o.center[axis])+r > o.extent {
			return false
		}
	}
	return true
}

// contains reports whether o's cube lies strictly inside the ball of
// squared radius r2 around q: the farthest cube corner from q is at a
// squared distance strictly less than r2.
func contains[P any](q [3]float64, r2 float64, o *octant[P]) bool {
	var sum float64
	for axis := 0; axis < 3; axis++ {
		d := math.Abs(q[axis]-o.center[axis]) + o.extent
		sum += d * d
	}
	return sum < r2
}

// overlaps reports whether the ball of radius r (squared r2) around q
// intersects o's cube.
func overlaps[P any](q [3]float64, r, r2 float64, o *octant[P]) bool {
	var d [3]float64
	for axis := 0; axis < 3; axis++ {
		d[axis] = math.Abs(q[axis] - o.center[axis])
	}

	maxDist := r + o.extent
	if d[0] > maxDist || d[1] > maxDist || d[2] > maxDist {
		return false
	}

	numLessExtent := 0
	for axis := 0; axis < 3; axis++ {
		if d[axis] < o.extent {
			numLessExtent++
		}
	}
	if numLessExtent > 1 {
		return true
	}

	var sum float64
	for axis := 0; axis < 3; axis++ {
		v := math.Max(d[axis]-o.extent, 0)
		sum += v * v
	}
	return sum < r2
}
