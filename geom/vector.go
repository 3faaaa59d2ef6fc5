// Package geom provides a ready-made Accessor and Container pair for
// octree.Tree over github.com/golang/geo/r3.Vector.
package geom

import (
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
)

// Vector3Accessor implements octree.Accessor[r3.Vector].
type Vector3Accessor struct{}

// Coord returns the scalar coordinate of v on the given axis, axis in
// {0, 1, 2}.
func (Vector3Accessor) Coord(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geom: axis out of range")
	}
}

// Cloud is an owned, ordered collection of r3.Vector points, implementing
// octree.Container[r3.Vector]. Its ID tags the point set for logging
// without requiring coordinates to be dumped.
type Cloud struct {
	ID     uuid.UUID
	Points []r3.Vector
}

// NewCloud wraps points as a Cloud with a freshly generated ID.
func NewCloud(points []r3.Vector) *Cloud {
	return &Cloud{ID: uuid.New(), Points: points}
}

// At returns the point at index i.
func (c *Cloud) At(i int) r3.Vector {
	return c.Points[i]
}

// Len returns the number of points in the cloud.
func (c *Cloud) Len() int {
	return len(c.Points)
}
