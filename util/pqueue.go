package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// PriorityQueue is a min-heap of items keyed by priority.
// Items with equal priority dequeue in insertion order.
type PriorityQueue[I any, P constraints.Ordered] struct {
	heap *_PQHeap[I, P]
}

func NewPriorityQueue[I any, P constraints.Ordered](capacity int) PriorityQueue[I, P] {
	h := _PQHeap[I, P]{
		items: make([]_PQEntry[I, P], 0, capacity),
	}
	return PriorityQueue[I, P]{
		heap: &h,
	}
}

func (self *PriorityQueue[I, P]) Enqueue(item I, priority P) {
	entry := _PQEntry[I, P]{
		item:     item,
		priority: priority,
		order:    self.heap.counter,
	}
	self.heap.counter += 1
	heap.Push(self.heap, entry)
}

func (self *PriorityQueue[I, P]) Dequeue() (I, bool) {
	if self.heap.Len() == 0 {
		var t I
		return t, false
	}
	entry := heap.Pop(self.heap).(_PQEntry[I, P])
	return entry.item, true
}

func (self *PriorityQueue[I, P]) Length() int {
	return self.heap.Len()
}

type _PQEntry[I any, P constraints.Ordered] struct {
	item     I
	priority P
	order    int64
}

type _PQHeap[I any, P constraints.Ordered] struct {
	items   []_PQEntry[I, P]
	counter int64
}

func (self *_PQHeap[I, P]) Len() int {
	return len(self.items)
}
func (self *_PQHeap[I, P]) Less(i, j int) bool {
	if self.items[i].priority == self.items[j].priority {
		return self.items[i].order < self.items[j].order
	}
	return self.items[i].priority < self.items[j].priority
}
func (self *_PQHeap[I, P]) Swap(i, j int) {
	self.items[i], self.items[j] = self.items[j], self.items[i]
}
func (self *_PQHeap[I, P]) Push(x any) {
	self.items = append(self.items, x.(_PQEntry[I, P]))
}
func (self *_PQHeap[I, P]) Pop() any {
	old := self.items
	n := len(old)
	entry := old[n-1]
	self.items = old[:n-1]
	return entry
}
