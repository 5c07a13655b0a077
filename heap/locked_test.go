package heap

import (
	"slices"
	"sync"
	"testing"
)

func TestLocked(t *testing.T) {
	l := NewLocked(NewOrdered[int]())
	wg := &sync.WaitGroup{}
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.Push(g*100 + i)
			}
		}(g)
	}
	wg.Wait()
	if l.Size() != 800 {
		t.Fatalf("got size %v, want 800", l.Size())
	}
	if top, found := l.Peek(); !found || top != 0 {
		t.Errorf("got %v, %v, want 0, true", top, found)
	}
	if top, found := l.Pop(); !found || top != 0 {
		t.Errorf("got %v, %v, want 0, true", top, found)
	}
	got := slices.Collect(l.Drain())
	if len(got) != 799 || !slices.IsSorted(got) || got[0] != 1 {
		t.Errorf("got %v, want 799 sorted elements starting with 1", got)
	}
	if l.Size() != 0 {
		t.Errorf("got size %v, want 0", l.Size())
	}
}
