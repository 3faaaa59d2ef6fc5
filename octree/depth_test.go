package octree

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"
	"go.viam.com/test"

	"octreeindex/geom"
)

// TestOctantsAtDepthAndRestrictedSearch is S6: enumerating depth-2 octants
// over the S5 grid, then confirming every enumerated octant's restricted
// radius search succeeds and returns only points inside that octant.
func TestOctantsAtDepthAndRestrictedSearch(t *testing.T) {
	cloud := gridCloud(1000, 42)

	tr, err := New[r3.Vector](geom.Vector3Accessor{}, Params{BucketSize: 8}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tr.Initialize(cloud), test.ShouldBeNil)

	lists, ok := tr.OctantsAtDepth(2)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, len(lists), test.ShouldBeGreaterThan, 0)

	runLengths := make([]float64, len(lists))
	for i, indices := range lists {
		runLengths[i] = float64(len(indices))
	}
	mean, err := stats.Mean(runLengths)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mean, test.ShouldBeGreaterThan, 0)

	for i, octantPoints := range lists {
		octantSet := toSet(octantPoints)

		center := octantCenterOf(tr, i)
		result, ok := tr.RadiusSearchLimited(i, center, 0.01)
		test.That(t, ok, test.ShouldBeTrue)

		for _, idx := range result {
			test.That(t, octantSet, test.ShouldContainKey, idx)
		}
	}
}

func octantCenterOf(tr *Tree[r3.Vector], octantIndex int) r3.Vector {
	o := tr.lastOctants[octantIndex]
	return r3.Vector{X: o.center[0], Y: o.center[1], Z: o.center[2]}
}

func TestOctantsAtDepthRequiresPriorEnumerationForRestrictedSearch(t *testing.T) {
	tr, err := New[r3.Vector](geom.Vector3Accessor{}, Params{BucketSize: 8}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tr.Initialize(gridCloud(50, 3)), test.ShouldBeNil)

	_, ok := tr.RadiusSearchLimited(0, r3.Vector{}, 1)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestRadiusSearchLimitedRejectsNegativeIndex(t *testing.T) {
	tr, err := New[r3.Vector](geom.Vector3Accessor{}, Params{BucketSize: 8}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tr.Initialize(gridCloud(50, 3)), test.ShouldBeNil)
	_, ok := tr.OctantsAtDepth(2)
	test.That(t, ok, test.ShouldBeTrue)

	_, ok = tr.RadiusSearchLimited(-1, r3.Vector{}, 1)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestRadiusSearchLimitedFallsBackWhenBallEscapesOctant(t *testing.T) {
	tr, err := New[r3.Vector](geom.Vector3Accessor{}, Params{BucketSize: 8}, nil)
	test.That(t, err, test.ShouldBeNil)
	cloud := gridCloud(1000, 42)
	test.That(t, tr.Initialize(cloud), test.ShouldBeNil)

	_, ok := tr.OctantsAtDepth(1)
	test.That(t, ok, test.ShouldBeTrue)

	// A radius as large as the whole grid's extent, centered in the grid,
	// overlaps every depth-1 octant, so restricting to any single one must
	// fail and signal a fall back to the full-tree query.
	_, ok = tr.RadiusSearchLimited(0, r3.Vector{X: 5, Y: 5, Z: 5}, 20)
	test.That(t, ok, test.ShouldBeFalse)
}
