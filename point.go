package kdtree

import (
	"fmt"
	"math"
	"strings"
)

// Point is a location in k-dimensional space. Value X_{dim} is Point[dim], dim is started from 0.
type Point []float64

// Rect is an axis-aligned bounding rectangle, one [Min, Max] pair per axis.
type Rect struct {
	Min Point
	Max Point
}

// Dims returns the number of coordinates of the point.
func (p Point) Dims() int {
	return len(p)
}

// Clone returns a copy of the point which shares no storage with p.
func (p Point) Clone() (c Point) {
	if p == nil {
		return
	}
	c = make(Point, len(p))
	copy(c, p)
	return
}

// SqDist returns the squared euclidean distance between p and q.
func (p Point) SqDist(q Point) (dist float64) {
	for dim, v := range p {
		diff := v - q[dim]
		dist += diff * diff
	}
	return
}

func (p Point) hasNaN() bool {
	for _, v := range p {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func (p Point) String() string {
	if p == nil {
		return "(undef)"
	}
	vals := make([]string, len(p))
	for i, v := range p {
		vals[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(vals, ", ") + ")"
}

func IsInside(point, lowPoint, highPoint Point) (isInside bool) {
	isInside = true
	for dim := range point {
		if point[dim] < lowPoint[dim] || point[dim] > highPoint[dim] {
			isInside = false
			break
		}
	}
	return
}

func Equals(lhs, rhs Point) (isEqual bool) {
	if len(lhs) != len(rhs) {
		return
	}
	isEqual = true
	for dim := range lhs {
		if lhs[dim] != rhs[dim] {
			isEqual = false
			return
		}
	}
	return
}

// NewRect returns the degenerate rectangle holding only p.
func NewRect(p Point) *Rect {
	return &Rect{Min: p.Clone(), Max: p.Clone()}
}

func (r *Rect) Clone() *Rect {
	return &Rect{Min: r.Min.Clone(), Max: r.Max.Clone()}
}

// Extend grows r so that it includes p.
func (r *Rect) Extend(p Point) {
	for dim, v := range p {
		if v < r.Min[dim] {
			r.Min[dim] = v
		}
		if v > r.Max[dim] {
			r.Max[dim] = v
		}
	}
}

// Contains reports whether p lies inside r, bounds included.
func (r *Rect) Contains(p Point) bool {
	return IsInside(p, r.Min, r.Max)
}

// SqDistTo returns the squared distance from p to the nearest point of r.
// Axes on which p lies within [Min, Max] contribute nothing.
func (r *Rect) SqDistTo(p Point) (dist float64) {
	for dim, v := range p {
		var diff float64
		if v < r.Min[dim] {
			diff = r.Min[dim] - v
		} else if v > r.Max[dim] {
			diff = v - r.Max[dim]
		}
		dist += diff * diff
	}
	return
}

// pointEntry remembers the position of a point in the caller's input, which
// breaks ties between points sharing a coordinate on the split axis.
type pointEntry struct {
	point Point
	idx   int
}

// pointArray orders entries by coordinate byDim, then by input position.
type pointArray struct {
	entries []pointEntry
	byDim   int
}

func newPointArray(points []Point) (pa *pointArray) {
	pa = &pointArray{entries: make([]pointEntry, len(points))}
	for i, point := range points {
		pa.entries[i] = pointEntry{point: point.Clone(), idx: i}
	}
	return
}

// Len is part of sort.Interface.
func (s *pointArray) Len() int {
	return len(s.entries)
}

// Swap is part of sort.Interface.
func (s *pointArray) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
}

// Less is part of sort.Interface.
func (s *pointArray) Less(i, j int) bool {
	vi, vj := s.entries[i].point[s.byDim], s.entries[j].point[s.byDim]
	if vi != vj {
		return vi < vj
	}
	return s.entries[i].idx < s.entries[j].idx
}

func (s *pointArray) GetPoint(idx int) Point {
	return s.entries[idx].point
}

func (s *pointArray) SubArray(begin, end int) (sub *pointArray) {
	sub = &pointArray{
		entries: s.entries[begin:end],
		byDim:   s.byDim,
	}
	return
}
