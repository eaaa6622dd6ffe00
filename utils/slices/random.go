package slices

import (
	"time"

	"golang.org/x/exp/rand"
	xslices "golang.org/x/exp/slices"
)

// intner is the part of a generator the helpers need.
type intner interface {
	Intn(n int) int
}

// defaultSource backs RandomItem, Shuffle and Shuffled. It is owned by this
// package so reseeding it leaves the x/exp/rand top-level generator alone.
var (
	defaultSource = &rand.LockedSource{}
	defaultRand   = rand.New(defaultSource)
)

func init() {
	defaultSource.Seed(uint64(time.Now().UnixNano()))
}

// Seed reseeds the generator shared by RandomItem, Shuffle and Shuffled.
func Seed(seed uint64) {
	defaultSource.Seed(seed)
}

// RandomItem returns a uniformly chosen element of a, or false if a is empty.
// Not suitable for anything security sensitive.
func RandomItem[T any](a []T) (T, bool) {
	return randomItem(defaultRand, a)
}

// RandomItemWith is RandomItem drawing from rng.
func RandomItemWith[T any](rng *rand.Rand, a []T) (T, bool) {
	return randomItem(rng, a)
}

func randomItem[T any](rng intner, a []T) (T, bool) {
	if len(a) == 0 {
		var zero T
		return zero, false
	}

	return a[rng.Intn(len(a))], true
}

// Shuffle permutes a in place (Fisher-Yates) and returns it.
func Shuffle[T any](a []T) []T {
	return shuffle(defaultRand, a)
}

// ShuffleWith is Shuffle drawing from rng.
func ShuffleWith[T any](rng *rand.Rand, a []T) []T {
	return shuffle(rng, a)
}

// Shuffled returns a shuffled copy of a.
func Shuffled[T any](a []T) []T {
	return shuffle(defaultRand, xslices.Clone(a))
}

// ShuffledWith is Shuffled drawing from rng.
func ShuffledWith[T any](rng *rand.Rand, a []T) []T {
	return shuffle(rng, xslices.Clone(a))
}

func shuffle[T any](rng intner, a []T) []T {
	for i := 0; i < len(a); i++ {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}

	return a
}
