// Package heapsort sorts slices of ordered elements by building a max heap
// in place and repeatedly swapping the root to the shrinking tail.
// O(n log n) in all cases; no auxiliary space beyond the returned copy.
package heapsort

import "cmp"

// Sort returns a new slice holding the elements of in arranged in
// non-decreasing order. The input slice is left untouched.
func Sort[T cmp.Ordered](in []T) []T {
	a := make([]T, len(in))
	copy(a, in)

	n := len(a)
	for start := (n - 2) / 2; start >= 0; start-- {
		siftDown(a, start, n-1)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end-1)
	}
	return a
}

// siftDown restores the max-heap property for the subtree rooted at start,
// touching only elements up to and including end.
func siftDown[T cmp.Ordered](a []T, start, end int) {
	root := start
	for {
		child := 2*root + 1
		if child > end {
			return
		}
		if child+1 <= end && a[child] < a[child+1] {
			child++
		}
		if a[root] >= a[child] {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}
