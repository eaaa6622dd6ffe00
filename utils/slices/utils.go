// Package slices holds small generic helpers over plain Go slices.
//
// Functions that change the caller's slice take a pointer to it, the rest
// leave the input untouched and return a fresh slice.
package slices

import (
	xslices "golang.org/x/exp/slices"
)

func Contains[T comparable](a []T, val T) bool {
	return xslices.Contains(a, val)
}

// Reverse reverses a in place and returns it.
func Reverse[T any](a []T) []T {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}

	return a
}

func Reversed[T any](a []T) []T {
	return Reverse(xslices.Clone(a))
}

// filterInPlace keeps the elements of a for which keep returns true, reusing
// a's backing array. The vacated tail is zeroed so dropped pointers can be
// collected.
func filterInPlace[T any](a []T, keep func(T) bool) []T {
	result := a[:0]
	for _, el := range a {
		if keep(el) {
			result = append(result, el)
		}
	}

	var zero T
	for i := len(result); i < len(a); i++ {
		a[i] = zero
	}

	return result
}
