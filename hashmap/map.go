// Package hashmap implements a hash table whose slots are
// singly linked lists of entries.
//
// The slot for a key is the value returned by the map's hash
// function, used directly as an index. The slot list grows when
// a key hashes beyond its end but existing entries are never
// moved, so the hash function alone determines where a key lives.
package hashmap

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/rogpeppe/chainmap/list"
)

// InitialSlots holds the number of slots in a newly created map.
const InitialSlots = 256

// ErrKeyNotFound is returned (wrapped) when a key has no entry
// in the map.
var ErrKeyNotFound = errors.New("key not found")

// Map is a hash table mapping keys K to values V.
//
// Entries for the same slot are kept in order of insertion.
// Lookups search a slot from the most recently appended entry,
// so when a key has been appended more than once, the latest
// value wins.
//
// Use New to create a Map; the zero value has no hash function.
// A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	hash  func(K) int
	slots list.List[list.List[*entry[K, V]]]
	len   int
}

// entry is an association in a slot.
type entry[K comparable, V any] struct {
	key K
	val V
}

// New returns a new empty map that uses hash to choose the slot
// for a key. The hash function must return the same non-negative
// value for equal keys.
func New[K comparable, V any](hash func(K) int) *Map[K, V] {
	if hash == nil {
		panic("hashmap.New called with nil hash function")
	}
	m := &Map[K, V]{
		hash: hash,
	}
	m.slots.Resize(InitialSlots, list.List[*entry[K, V]]{})
	return m
}

// Len returns the number of entries in the map, counting each
// duplicate entry for a key separately.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.len
}

// Slots returns the current number of slots. It never decreases.
func (m *Map[K, V]) Slots() int {
	if m == nil {
		return 0
	}
	return m.slots.Len()
}

// Append adds an entry associating k with v. It does not look
// for an existing entry for k: the new entry shadows any earlier
// one until it is removed.
//
// If the hash of k is beyond the last slot, the slots are grown
// to include it. Append panics if the hash of k is negative.
func (m *Map[K, V]) Append(k K, v V) {
	h := m.hashKey(k)
	if h < 0 {
		panic(fmt.Sprintf("hashmap: negative hash %d for key %v", h, k))
	}
	if h >= m.slots.Len() {
		m.slots.Resize(h+1, list.List[*entry[K, V]]{})
	}
	b, err := m.slots.At(h)
	if err != nil {
		panic(err)
	}
	b.Append(&entry[K, V]{
		key: k,
		val: v,
	})
	m.len++
}

// Remove removes the most recently appended entry for k and
// reports whether there was one. Earlier entries for k remain.
func (m *Map[K, V]) Remove(k K) bool {
	b, i := m.find(k)
	if i < 0 {
		return false
	}
	b.RemoveAt(i)
	m.len--
	return true
}

// HasKey reports whether there is an entry for k.
func (m *Map[K, V]) HasKey(k K) bool {
	_, i := m.find(k)
	return i >= 0
}

// Occupied reports whether the slot that k hashes to holds any
// entries, whether or not one of them is for k.
func (m *Map[K, V]) Occupied(k K) bool {
	b := m.slot(k)
	return b.Len() > 0
}

// At returns a pointer to the value of the most recently
// appended entry for k, which may be used to change it.
// It returns an error wrapping ErrKeyNotFound if there is no
// such entry.
func (m *Map[K, V]) At(k K) (*V, error) {
	b, i := m.find(k)
	if i < 0 {
		return nil, fmt.Errorf("key %v: %w", k, ErrKeyNotFound)
	}
	e, err := b.Get(i)
	if err != nil {
		return nil, err
	}
	return &e.val, nil
}

// Get returns the value for k.
func (m *Map[K, V]) Get(k K) (V, error) {
	p, err := m.At(k)
	if err != nil {
		return *new(V), err
	}
	return *p, nil
}

// Set sets the value of the existing entry for k to v.
// Unlike Append, it fails with ErrKeyNotFound if there is
// no entry for k.
func (m *Map[K, V]) Set(k K, v V) error {
	p, err := m.At(k)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Clear removes all entries from the map. The number of
// slots is unchanged.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	for _, b := range m.slots.Backward() {
		b.Clear()
	}
	m.len = 0
}

// All returns an iterator over all the (key, value) pairs in the map.
// Slots are visited in index order and the entries within a slot
// most recent first, which is generally not the order of insertion.
//
// The map must not be changed while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, b := range m.slotList() {
			for _, e := range b.Backward() {
				if !yield((*e).key, (*e).val) {
					return
				}
			}
		}
	}
}

// Appended returns an iterator over all the (key, value) pairs in
// the map. Slots are visited in index order, as for All, but the
// entries within a slot are yielded oldest first. Appending the
// pairs in this order to an empty map with the same hash function
// reproduces the map, including which of several entries for a key
// wins.
//
// The map must not be changed while iterating.
func (m *Map[K, V]) Appended() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, b := range m.slotList() {
			for _, e := range b.All() {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the keys in the order used by All.
// A key appended more than once is yielded once per entry.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in the order used by All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// WriteTo writes each entry of the map to w as a "key: value"
// line, in the order used by All.
func (m *Map[K, V]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for k, v := range m.All() {
		n, err := fmt.Fprintf(w, "%v: %v\n", k, v)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the map formatted as by WriteTo.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	m.WriteTo(&sb)
	return sb.String()
}

func (m *Map[K, V]) hashKey(k K) int {
	if m.hash == nil {
		panic("hashmap: Map used without calling New")
	}
	return m.hash(k)
}

// slotList returns pointers to all the slots in index order.
func (m *Map[K, V]) slotList() []*list.List[*entry[K, V]] {
	slots := make([]*list.List[*entry[K, V]], m.slots.Len())
	for i, b := range m.slots.Backward() {
		slots[i] = b
	}
	return slots
}

// slot returns the slot for k, or nil if k hashes outside the
// current slots.
func (m *Map[K, V]) slot(k K) *list.List[*entry[K, V]] {
	if m == nil {
		return nil
	}
	h := m.hashKey(k)
	if h < 0 || h >= m.slots.Len() {
		return nil
	}
	b, err := m.slots.At(h)
	if err != nil {
		return nil
	}
	return b
}

// find returns the slot for k and the index within it of
// the most recent entry for k. The index is -1 if there is
// no such entry.
func (m *Map[K, V]) find(k K) (*list.List[*entry[K, V]], int) {
	b := m.slot(k)
	for i, e := range b.Backward() {
		if (*e).key == k {
			return b, i
		}
	}
	return b, -1
}
