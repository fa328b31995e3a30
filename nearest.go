package kdtree

import (
	"github.com/pkg/errors"
)

// Nearest returns the point of t nearest to target.
func Nearest(t *KdTree, target Point) (Point, error) {
	return t.Nearest(target)
}

// Nearest returns the stored point nearest to target in euclidean distance.
// Among points at the same distance, the first one visited by the search wins.
func (t *KdTree) Nearest(target Point) (nearest Point, err error) {
	nearest, _, err = t.NearestWithDist(target)
	return
}

// NearestWithDist is like Nearest and also returns the squared distance
// between target and the returned point.
func (t *KdTree) NearestWithDist(target Point) (nearest Point, dist float64, err error) {
	if t.Empty() {
		err = errors.WithStack(ErrEmptyTree)
		return
	}
	if err = checkPoint(target, t.numDims); err != nil {
		return
	}

	s := &nearestSearch{
		target:   target,
		best:     t.root,
		bestDist: t.root.location.SqDist(target),
		rect:     t.rect.Clone(),
	}
	s.search(t.root)
	if logger.IsTraceEnabled() {
		logger.Tracef("nearest %v: %v, dist %v, visited %d, pruned %d", target, s.best.location, s.bestDist, s.visited, s.pruned)
	}
	nearest = s.best.location.Clone()
	dist = s.bestDist
	return
}

// nearestSearch is the state of one query. rect is a private copy of the
// tree's rectangle, shrunk to the region of the subtree being visited.
type nearestSearch struct {
	target   Point
	best     *Node
	bestDist float64
	rect     *Rect
	visited  int
	pruned   int
}

func (s *nearestSearch) search(node *Node) {
	s.visited++
	axis := node.axis
	split := node.location[axis]

	nearNode, farNode := node.left, node.right
	nearBound, farBound := s.rect.Max, s.rect.Min
	if s.target[axis]-split > 0 {
		nearNode, farNode = node.right, node.left
		nearBound, farBound = s.rect.Min, s.rect.Max
	}

	if nearNode != nil {
		saved := nearBound[axis]
		nearBound[axis] = split
		s.search(nearNode)
		nearBound[axis] = saved
	}

	if dist := node.location.SqDist(s.target); dist < s.bestDist {
		s.best = node
		s.bestDist = dist
	}

	if farNode != nil {
		saved := farBound[axis]
		farBound[axis] = split
		//the far subtree lies within rect, skip it unless rect reaches closer than the best so far
		if s.rect.SqDistTo(s.target) < s.bestDist {
			s.search(farNode)
		} else {
			s.pruned++
		}
		farBound[axis] = saved
	}
}
