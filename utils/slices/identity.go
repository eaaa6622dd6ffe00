package slices

// RemoveIdentical drops every element of *a that is the very pointer target.
// Other pointers to equal values are kept.
func RemoveIdentical[T any](a *[]*T, target *T) {
	if a == nil {
		return
	}

	*a = filterInPlace(*a, func(el *T) bool {
		return el != target
	})
}

// RetainIdentical is the inverse of RemoveIdentical: only occurrences of the
// pointer target survive.
func RetainIdentical[T any](a *[]*T, target *T) {
	if a == nil {
		return
	}

	*a = filterInPlace(*a, func(el *T) bool {
		return el == target
	})
}
