package slices

import (
	xslices "golang.org/x/exp/slices"
)

// ItemAt returns a[index] and true, or the zero value and false when index
// is out of bounds.
func ItemAt[T any](a []T, index int) (T, bool) {
	if index < 0 || index >= len(a) {
		var zero T
		return zero, false
	}

	return a[index], true
}

// AppendAll appends items to *a and returns the range they now occupy.
func AppendAll[T any](a *[]T, items ...T) Range {
	if a == nil {
		return Range{}
	}

	start := len(*a)
	*a = append(*a, items...)
	return Range{Start: start, End: len(*a)}
}

// InsertAll inserts items at index and returns the range they now occupy.
// The index is clamped to [0, len(*a)] rather than rejected.
func InsertAll[T any](a *[]T, index int, items ...T) Range {
	if a == nil {
		return Range{}
	}

	start := index
	if start < 0 {
		start = 0
	}
	if start > len(*a) {
		start = len(*a)
	}

	*a = xslices.Insert(*a, start, items...)
	return Range{Start: start, End: start + len(items)}
}

// ForEachIndexed calls fn with each index and element of a, in order.
func ForEachIndexed[T any](a []T, fn func(int, T)) {
	if fn == nil {
		return
	}

	for i, el := range a {
		fn(i, el)
	}
}
