package slices

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	xslices "golang.org/x/exp/slices"
)

const DefaultChunkSize = 1

// Unique returns the elements of a in first-occurrence order with later
// duplicates dropped. Elements are compared with == only, so the cost is
// quadratic; use UniqueByKey for large inputs.
func Unique[T comparable](a []T) []T {
	result := make([]T, 0, len(a))
	for _, el := range a {
		if !Contains(result, el) {
			result = append(result, el)
		}
	}

	return result
}

// ContainsAll reports whether every one of elements occurs in a.
// An empty query is never contained.
func ContainsAll[T comparable](a []T, elements ...T) bool {
	if len(elements) == 0 {
		return false
	}

	present := mapset.NewThreadUnsafeSet[T](a...)
	return present.Contains(elements...)
}

// IndexesOf returns the ascending positions of item in a, never nil.
func IndexesOf[T comparable](a []T, item T) []int {
	indexes := []int{}
	for i, el := range a {
		if el == item {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// RemoveAll removes every element equal to item, keeping the order of the rest.
func RemoveAll[T comparable](a *[]T, item T) {
	if a == nil {
		return
	}

	*a = filterInPlace(*a, func(el T) bool {
		return el != item
	})
}

// Chunk splits a into consecutive groups of size elements. The last group
// holds the remainder. Each group is a copy.
func Chunk[T any](a []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "chunk size must be positive, got %d", size)
	}

	count := len(a) / size
	if len(a)%size != 0 {
		count++
	}

	chunks := make([][]T, 0, count)
	for start := 0; start < len(a); start += size {
		end := start + size
		if end > len(a) {
			end = len(a)
		}
		chunks = append(chunks, xslices.Clone(a[start:end]))
	}

	return chunks, nil
}
