package kdtree

import (
	"fmt"
	"strings"

	datastructures "github.com/deepfabric/go-datastructures"
)

// Dump renders the tree for human inspection: a header with k and the
// bounding rectangle, then every node pre-order as "(coords) [axis]",
// indented two spaces per level.
func (t *KdTree) Dump() string {
	var sb strings.Builder
	var low, high Point
	if rect := t.Rect(); rect != nil {
		low, high = rect.Min, rect.Max
	}
	fmt.Fprintf(&sb, "kdtree(k=%d, rect=[%v,%v]:\n", t.NumDims(), low, high)
	dumpNode(&sb, t.Root(), 1)
	return sb.String()
}

func (t *KdTree) String() string {
	return t.Dump()
}

func dumpNode(sb *strings.Builder, node *Node, indent int) {
	if node == nil {
		return
	}
	is := strings.Repeat("  ", indent)
	fmt.Fprintf(sb, "%s%v [%d]\n", is, node.location, node.axis)
	if node.left != nil {
		sb.WriteString(is + "Left:\n")
		dumpNode(sb, node.left, indent+1)
	}
	if node.right != nil {
		sb.WriteString(is + "Right:\n")
		dumpNode(sb, node.right, indent+1)
	}
}

type walkItem struct {
	node  *Node
	depth int
	seq   int //push order, keeps a level left to right
}

// Compare is part of datastructures.Comparable.
func (w *walkItem) Compare(other datastructures.Comparable) int {
	o := other.(*walkItem)
	switch {
	case w.depth != o.depth:
		if w.depth < o.depth {
			return -1
		}
		return 1
	case w.seq < o.seq:
		return -1
	case w.seq > o.seq:
		return 1
	}
	return 0
}

// Walk visits the nodes level by level, left to right within a level,
// starting from the root at depth 0. Walking stops early when fn returns false.
func (t *KdTree) Walk(fn func(node *Node, depth int) bool) {
	if t.Empty() {
		return
	}
	pq := datastructures.NewPriorityQueue(t.numPoints)
	seq := 0
	pq.Put(&walkItem{node: t.root, seq: seq})
	for !pq.Empty() {
		item := pq.Get().(*walkItem)
		if !fn(item.node, item.depth) {
			return
		}
		for _, child := range []*Node{item.node.left, item.node.right} {
			if child == nil {
				continue
			}
			seq++
			pq.Put(&walkItem{node: child, depth: item.depth + 1, seq: seq})
		}
	}
}

// Points returns copies of all stored points in level order.
func (t *KdTree) Points() (points []Point) {
	if t.Empty() {
		return
	}
	points = make([]Point, 0, t.numPoints)
	t.Walk(func(node *Node, depth int) bool {
		points = append(points, node.Location())
		return true
	})
	return
}
