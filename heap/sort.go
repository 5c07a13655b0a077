package heap

import "cmp"

// Sort returns a new slice holding items in ascending order according to less.
// Equal elements come out in no particular order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	result := make([]T, 0, len(items))
	for v := range From(less, items).Drain() {
		result = append(result, v)
	}
	return result
}

func SortOrdered[T cmp.Ordered](items []T) []T {
	return Sort(items, cmp.Less[T])
}
