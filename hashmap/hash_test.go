package hashmap_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/chainmap/hashmap"
)

func TestMod(t *testing.T) {
	h := hashmap.Mod(10, identity)
	for _, test := range []struct {
		key  int
		want int
	}{
		{0, 0},
		{9, 9},
		{10, 0},
		{123, 3},
		{-1, 9},
		{-20, 0},
	} {
		qt.Check(t, qt.Equals(h(test.key), test.want), qt.Commentf("key %d", test.key))
	}
}

func TestModPanicsOnBadSlotCount(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		hashmap.Mod(0, identity)
	}, `hashmap.Mod called with non-positive slot count 0`))
}

func TestComparable(t *testing.T) {
	h := hashmap.Comparable[string](hashmap.InitialSlots)
	for _, k := range []string{"", "a", "abc", "cba", "Евгений Олегович"} {
		got := h(k)
		qt.Assert(t, qt.IsTrue(got >= 0 && got < hashmap.InitialSlots))
		qt.Assert(t, qt.Equals(h(k), got))
	}

	// With a bounded hash, the map never grows.
	m := hashmap.New[string, int](h)
	for i := range 1000 {
		m.Append(string(rune('a'+i%26))+string(rune('A'+i/26)), i)
	}
	qt.Assert(t, qt.Equals(m.Slots(), hashmap.InitialSlots))
	v, err := m.Get("bA")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, 1))
}

func TestComparablePanicsOnBadSlotCount(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		hashmap.Comparable[int](-1)
	}, `hashmap.Comparable called with non-positive slot count -1`))
}
