package util

import (
	"math"
)

//*******************************************
// kd-tree
//*******************************************

// Simple k-d tree for nearest-neighbour lookups on small dimensions.
type KDTree[T any] struct {
	dim  int
	root *_KDNode[T]
}

type _KDNode[T any] struct {
	coords []float64
	value  T
	left   *_KDNode[T]
	right  *_KDNode[T]
}

func NewKDTree[T any](dim int) KDTree[T] {
	return KDTree[T]{dim: dim}
}

func (self *KDTree[T]) Insert(coords []float64, value T) {
	node := &_KDNode[T]{
		coords: append([]float64{}, coords...),
		value:  value,
	}
	if self.root == nil {
		self.root = node
		return
	}
	curr := self.root
	depth := 0
	for {
		axis := depth % self.dim
		if node.coords[axis] < curr.coords[axis] {
			if curr.left == nil {
				curr.left = node
				return
			}
			curr = curr.left
		} else {
			if curr.right == nil {
				curr.right = node
				return
			}
			curr = curr.right
		}
		depth += 1
	}
}

// Returns the closest inserted value within max_dist of coords.
func (self *KDTree[T]) GetClosest(coords []float64, max_dist float64) (T, bool) {
	var best *_KDNode[T]
	best_dist := max_dist
	self._Search(self.root, coords, 0, &best, &best_dist)
	if best == nil {
		var value T
		return value, false
	}
	return best.value, true
}

func (self *KDTree[T]) _Search(node *_KDNode[T], coords []float64, depth int, best **_KDNode[T], best_dist *float64) {
	if node == nil {
		return
	}
	dist := _Distance(node.coords, coords)
	if dist <= *best_dist {
		*best = node
		*best_dist = dist
	}
	axis := depth % self.dim
	diff := coords[axis] - node.coords[axis]
	var near, far *_KDNode[T]
	if diff < 0 {
		near, far = node.left, node.right
	} else {
		near, far = node.right, node.left
	}
	self._Search(near, coords, depth+1, best, best_dist)
	if math.Abs(diff) <= *best_dist {
		self._Search(far, coords, depth+1, best, best_dist)
	}
}

func _Distance(a []float64, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
