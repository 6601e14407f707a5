package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// Binary min-heap keyed by priority.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items List[Tuple[T, P]]
}

func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: NewList[Tuple[T, P]](capacity),
	}
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.items.Length()
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.items.Add(MakeTuple(item, priority))
	index := self.items.Length() - 1
	for index > 0 {
		parent := (index - 1) / 2
		if self.items[parent].B <= self.items[index].B {
			break
		}
		self.items[parent], self.items[index] = self.items[index], self.items[parent]
		index = parent
	}
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Length() == 0 {
		var value T
		return value, false
	}
	root := self.items[0]
	last := self.items.Length() - 1
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	index := 0
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index
		if left < self.items.Length() && self.items[left].B < self.items[smallest].B {
			smallest = left
		}
		if right < self.items.Length() && self.items[right].B < self.items[smallest].B {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.items[smallest], self.items[index] = self.items[index], self.items[smallest]
		index = smallest
	}
	return root.A, true
}
