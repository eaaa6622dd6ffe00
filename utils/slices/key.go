package slices

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// UniqueByKey keeps the first element for each distinct key(el), preserving
// order.
func UniqueByKey[T any, K comparable](a []T, key func(T) K) []T {
	result := make([]T, 0, len(a))
	if key == nil {
		return result
	}

	seen := mapset.NewThreadUnsafeSetWithSize[K](len(a))
	for _, el := range a {
		// Add reports false when the key was already present.
		if seen.Add(key(el)) {
			result = append(result, el)
		}
	}

	return result
}
