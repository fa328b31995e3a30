package kdtree

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyTree is returned when querying a tree built from zero points.
	ErrEmptyTree = errors.New("kdtree is empty")
	// ErrDimensionMismatch is returned when a point's dimensionality differs from the tree's.
	ErrDimensionMismatch = errors.New("point dimension mismatch")
	// ErrInvalidPoint is returned for points holding a NaN coordinate.
	ErrInvalidPoint = errors.New("point has NaN coordinate")
)

func checkPoint(point Point, numDims int) (err error) {
	if len(point) != numDims {
		err = errors.Wrapf(ErrDimensionMismatch, "point is %d dimensional, kdtree is %d", len(point), numDims)
		return
	}
	if point.hasNaN() {
		err = errors.Wrapf(ErrInvalidPoint, "%v", point)
	}
	return
}
