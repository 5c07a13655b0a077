package heap

import (
	"iter"
	"sync"
)

// Locked guards a Heap with a mutex, for callers that share one between
// goroutines.
type Locked[T any] struct {
	heap  *Heap[T]
	mutex sync.Mutex
}

func NewLocked[T any](h *Heap[T]) *Locked[T] {
	return &Locked[T]{heap: h}
}

func (l *Locked[T]) Push(value T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.heap.Push(value)
}

func (l *Locked[T]) Pop() (T, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.heap.Pop()
}

func (l *Locked[T]) Peek() (T, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.heap.Peek()
}

func (l *Locked[T]) Size() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.heap.Size()
}

// Drain holds the lock for as long as the returned sequence is being consumed.
func (l *Locked[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mutex.Lock()
		defer l.mutex.Unlock()
		for v := range l.heap.Drain() {
			if !yield(v) {
				return
			}
		}
	}
}
