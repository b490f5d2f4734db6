package hashmap

import (
	"fmt"
	"hash/maphash"
)

// Mod returns a hash function that reduces the result of f
// into the range [0, n), so that keys never land beyond the
// first n slots. It panics if n is not positive.
func Mod[K any](n int, f func(K) int) func(K) int {
	if n <= 0 {
		panic(fmt.Sprintf("hashmap.Mod called with non-positive slot count %d", n))
	}
	return func(k K) int {
		h := f(k) % n
		if h < 0 {
			h += n
		}
		return h
	}
}

// Comparable returns a hash function for any comparable key type,
// with results in the range [0, n). It uses a random seed, so
// the slot chosen for a key differs between hash functions
// returned by different calls. It panics if n is not positive.
func Comparable[K comparable](n int) func(K) int {
	if n <= 0 {
		panic(fmt.Sprintf("hashmap.Comparable called with non-positive slot count %d", n))
	}
	seed := maphash.MakeSeed()
	return func(k K) int {
		return int(maphash.Comparable(seed, k) % uint64(n))
	}
}
