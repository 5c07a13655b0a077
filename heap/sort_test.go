package heap

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSort(t *testing.T) {
	got := SortOrdered([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("got %v, want %v: %v", got, want, diff)
	}
}

func TestSortSmall(t *testing.T) {
	if got := SortOrdered([]int{}); got == nil || len(got) != 0 {
		t.Errorf("got %#v, want []int{}", got)
	}
	if got := SortOrdered[int](nil); got == nil || len(got) != 0 {
		t.Errorf("got %#v, want []int{}", got)
	}
	if got := SortOrdered([]string{"x"}); !slices.Equal(got, []string{"x"}) {
		t.Errorf("got %v, want [x]", got)
	}
}

func TestSortRandom(t *testing.T) {
	for i := 0; i < 50; i++ {
		nums := fakeInts(t)
		input := slices.Clone(nums)
		got := SortOrdered(nums)
		want := slices.Clone(nums)
		slices.Sort(want)
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("got %v, want %v: %v", got, want, diff)
		}
		if diff := cmp.Diff(nums, input); diff != "" {
			t.Errorf("input was modified: %v", diff)
		}
	}
}

type keyed struct {
	Key int
	ID  int
}

func TestSortEqualKeys(t *testing.T) {
	input := []keyed{}
	for i := 0; i < 30; i++ {
		input = append(input, keyed{Key: i % 4, ID: i})
	}
	got := Sort(input, func(a, b keyed) bool {
		return a.Key < b.Key
	})
	if !slices.IsSortedFunc(got, func(a, b keyed) int { return a.Key - b.Key }) {
		t.Errorf("got %+v, want it sorted by key", got)
	}
	byID := func(a, b keyed) int { return a.ID - b.ID }
	gotIDs := slices.SortedFunc(slices.Values(got), byID)
	if diff := cmp.Diff(gotIDs, input); diff != "" {
		t.Errorf("got a different multiset: %v", diff)
	}
}
