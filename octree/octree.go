// Package octree implements an index-based octree for efficient radius and
// nearest-neighbor queries over three-dimensional point clouds.
//
// Unlike a pointer-heavy octree that stores one point per leaf node, this
// implementation reorders the caller's point indices in place so that every
// octant's points form a contiguous, singly-linked run in a shared successor
// array. Construction is a one-time bulk operation; there is no insertion or
// removal of points afterward. See Behley, Steinhage & Cremers, "Efficient
// Radius Neighbor Search in Three-dimensional Point Clouds" (ICRA 2015), the
// paper this package's algorithm follows.
package octree

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// Accessor exposes the coordinates of a point of type P. Callers supply one
// implementation per point type; the tree itself never interprets P beyond
// this capability.
type Accessor[P any] interface {
	// Coord returns the scalar coordinate of p on the given axis, axis in
	// {0, 1, 2}.
	Coord(p P, axis int) float64
}

// Container is a random-access, sized collection of points of type P.
type Container[P any] interface {
	At(i int) P
	Len() int
}

// Index identifies a point within a Container. Valid indices are
// 0..Len()-1.
type Index = uint32

// Params configures tree construction.
type Params struct {
	// BucketSize is the maximum run length for a leaf octant. Must be >= 1.
	BucketSize uint32
	// CopyPoints, when true, makes the tree take an owning snapshot of the
	// container passed to Initialize instead of borrowing it. The caller
	// must keep a borrowed container alive and unchanged for the tree's
	// lifetime.
	CopyPoints bool
	// MinExtent, when > 0, stops subdivision once a node's half-extent
	// would fall to or below 2*MinExtent, regardless of its point count.
	MinExtent float64
}

// DefaultBucketSize is used by DefaultParams and matches the reference
// implementation's default.
const DefaultBucketSize = 32

// DefaultParams returns the configuration used when no Params are given
// explicitly: BucketSize 32, CopyPoints false, MinExtent 0.
func DefaultParams() Params {
	return Params{BucketSize: DefaultBucketSize}
}

func (p Params) validate() error {
	if p.BucketSize == 0 {
		return errors.New("octree: BucketSize must be >= 1, use DefaultParams or set it explicitly")
	}
	if p.MinExtent < 0 {
		return errors.Errorf("octree: MinExtent must be >= 0, got %v", p.MinExtent)
	}
	return nil
}

// New creates an empty Tree with the given point accessor, parameters and
// logger. Call Initialize to build it over a point set. A nil logger is
// replaced with golog.NewLogger("octree").
func New[P any](access Accessor[P], params Params, logger golog.Logger) (*Tree[P], error) {
	if access == nil {
		return nil, errors.New("octree: Accessor must not be nil")
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.NewLogger("octree")
	}
	return &Tree[P]{access: access, params: params, logger: logger}, nil
}
