package kdtree

import (
	"sort"

	"github.com/juju/loggo"
	"github.com/keegancsmith/nth"
	"github.com/pkg/errors"
)

var logger = loggo.GetLogger("kdtree")

// MedianStrategy selects how the builder finds the median of each subset.
type MedianStrategy int

const (
	// MedianSort sorts the whole subset at every level, O(n log^2 n) in total.
	MedianSort MedianStrategy = iota
	// MedianSelect uses linear-time selection, O(n log n) in total.
	MedianSelect
)

func (m MedianStrategy) String() string {
	switch m {
	case MedianSort:
		return "sort"
	case MedianSelect:
		return "select"
	}
	return "unknown"
}

type BuildOptions struct {
	Median MedianStrategy
}

var DefaultBuildOptions = BuildOptions{Median: MedianSort}

// Node is one point of the tree together with the axis it splits on.
// Points of the left subtree are <= location[axis], points of the right
// subtree are >= location[axis].
type Node struct {
	axis        int
	location    Point
	left, right *Node
}

func (n *Node) Axis() int       { return n.axis }
func (n *Node) Location() Point { return n.location.Clone() }
func (n *Node) Left() *Node     { return n.left }
func (n *Node) Right() *Node    { return n.right }

func (n *Node) height() int {
	if n == nil {
		return 0
	}
	ht := n.left.height()
	if rht := n.right.height(); rht > ht {
		ht = rht
	}
	return ht + 1
}

// KdTree is a static k-d tree. It is never modified after NewKdTree returns,
// so it can be shared by concurrent readers.
type KdTree struct {
	root      *Node
	rect      *Rect // bounding rectangle of all points, nil iff root is nil
	numDims   int
	numPoints int
}

// NumDims returns k, the dimensionality of the stored points. It is 0 for an empty tree.
func (t *KdTree) NumDims() int {
	if t == nil {
		return 0
	}
	return t.numDims
}

// Len returns the number of stored points.
func (t *KdTree) Len() int {
	if t == nil {
		return 0
	}
	return t.numPoints
}

// Empty reports whether the tree was built from zero points. A nil tree is empty.
func (t *KdTree) Empty() bool { return t == nil || t.root == nil }

func (t *KdTree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Rect returns a copy of the bounding rectangle, nil for an empty tree.
func (t *KdTree) Rect() *Rect {
	if t == nil || t.rect == nil {
		return nil
	}
	return t.rect.Clone()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *KdTree) Height() int {
	return t.Root().height()
}

// NewKdTree builds a tree from points using DefaultBuildOptions.
func NewKdTree(points []Point) (*KdTree, error) {
	return NewKdTreeWithOptions(points, DefaultBuildOptions)
}

// NewKdTreeWithOptions builds a tree from points. The dimensionality is taken
// from points[0]; every point must match it. An empty points slice yields an
// empty tree. points is never modified and the tree shares no storage with it.
func NewKdTreeWithOptions(points []Point, opts BuildOptions) (*KdTree, error) {
	if opts.Median != MedianSort && opts.Median != MedianSelect {
		return nil, errors.Errorf("unknown median strategy %d", opts.Median)
	}
	if len(points) == 0 {
		logger.Debugf("no points, created empty kdtree")
		return &KdTree{}, nil
	}
	numDims := len(points[0])
	if numDims == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "points[0] is 0 dimensional")
	}
	for i, point := range points {
		if err := checkPoint(point, numDims); err != nil {
			return nil, errors.Wrapf(err, "points[%d]", i)
		}
	}

	b := &treeBuilder{numDims: numDims, median: opts.Median}
	ret := &KdTree{
		numDims:   numDims,
		numPoints: len(points),
	}
	ret.root = b.create(newPointArray(points), 0)
	ret.rect = b.rect
	if logger.IsDebugEnabled() {
		logger.Debugf("created kdtree, k %d, points %d, height %d, median %v", numDims, len(points), ret.Height(), opts.Median)
	}
	return ret, nil
}

type treeBuilder struct {
	numDims int
	median  MedianStrategy
	rect    *Rect
}

func (b *treeBuilder) create(points *pointArray, depth int) *Node {
	if points.Len() == 0 {
		return nil
	}

	axis := depth % b.numDims
	points.byDim = axis
	median := points.Len() / 2
	if b.median == MedianSelect {
		nth.Element(points, median)
	} else {
		sort.Sort(points)
	}
	location := points.GetPoint(median)

	if b.rect == nil {
		b.rect = NewRect(location)
	} else {
		b.rect.Extend(location)
	}

	node := &Node{
		axis:     axis,
		location: location,
	}
	node.left = b.create(points.SubArray(0, median), depth+1)
	node.right = b.create(points.SubArray(median+1, points.Len()), depth+1)
	return node
}
