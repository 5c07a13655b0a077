// Package heap contains a generic binary min-heap and a heapsort built on it.
//
// The heap keeps its elements in a slice laid out as an implicit complete binary
// tree: the element at i has its parent at (i-1)/2 and its children at 2i+1 and
// 2i+2. No element is less than its parent, so the root is always a minimum.
//
// A Heap has a single owner and is not safe for concurrent use, see Locked.
package heap

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
	"github.com/zond/minheap"
)

type Heap[T any] struct {
	data    []T
	less    func(a, b T) bool
	drained bool
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		data: []T{},
		less: less,
	}
}

// NewOrdered returns an empty heap ordered by cmp.Less.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Less[T])
}

// From returns a heap containing all of items, built by pushing them one at a
// time. This costs O(n log n) rather than the O(n) of a bottom-up build.
// The items slice is neither retained nor modified.
func From[T any](less func(a, b T) bool, items []T) *Heap[T] {
	h := &Heap[T]{
		data: make([]T, 0, len(items)),
		less: less,
	}
	for _, item := range items {
		h.Push(item)
	}
	return h
}

func FromOrdered[T cmp.Ordered](items []T) *Heap[T] {
	return From(cmp.Less[T], items)
}

func (h *Heap[T]) checkDrained(op string) {
	if h.drained {
		panic(errors.Wrapf(minheap.ErrDrained, "%s", op))
	}
}

func (h *Heap[T]) Push(value T) {
	h.checkDrained("Push")
	h.data = append(h.data, value)
	h.bubbleUp(len(h.data) - 1)
}

// Pop removes and returns a minimal element, or false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	h.checkDrained("Pop")
	return h.pop()
}

func (h *Heap[T]) pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	last := len(h.data) - 1
	h.swap(0, last)
	top := h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	h.bubbleDown(0)
	return top, true
}

func (h *Heap[T]) Peek() (T, bool) {
	h.checkDrained("Peek")
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Drain marks the heap as drained and returns a sequence popping elements in
// ascending order until the heap is empty. Once Drain has been called the
// heap must not be pushed to, popped or peeked; doing so panics with
// minheap.ErrDrained. Draining a drained heap yields whatever the first
// drain left behind, which after a full drain is nothing.
func (h *Heap[T]) Drain() iter.Seq[T] {
	h.drained = true
	return func(yield func(T) bool) {
		for v, found := h.pop(); found; v, found = h.pop() {
			if !yield(v) {
				return
			}
		}
	}
}

func (h *Heap[T]) Drained() bool {
	return h.drained
}

func (h *Heap[T]) Size() int {
	return len(h.data)
}

func (h *Heap[T]) Empty() bool {
	return len(h.data) == 0
}

func parent(i int) (int, bool) {
	if i == 0 {
		return 0, false
	}
	return (i - 1) / 2, true
}

func firstChild(i int) int  { return 2*i + 1 }
func secondChild(i int) int { return firstChild(i) + 1 }

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[T]) bubbleUp(index int) {
	for p, ok := parent(index); ok && h.less(h.data[index], h.data[p]); p, ok = parent(index) {
		h.swap(index, p)
		index = p
	}
}

func (h *Heap[T]) bubbleDown(index int) {
	size := len(h.data)
	for {
		smallest := index
		// Equal children leave the left one in place of the parent.
		if left := firstChild(index); left < size && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right := secondChild(index); right < size && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}
