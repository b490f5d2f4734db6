// Package list implements a singly linked list with index-based
// access.
//
// Each cell of the list owns the cell appended before it, so the
// physical chain runs from the most recently appended element back
// to the oldest one. Indexes are counted from the oldest end: index
// zero is the oldest surviving element and index Len()-1 is the most
// recently appended one.
package list

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned (wrapped) when an index does not
// refer to an element of the list.
var ErrIndexOutOfRange = errors.New("index out of range")

// List holds a singly linked list of values of type T.
//
// The zero value is an empty list ready to use.
// A List must not be copied after first use.
type List[T any] struct {
	// first holds the most recently appended cell.
	first *cell[T]

	// len holds the number of cells reachable from first.
	len int
}

type cell[T any] struct {
	next *cell[T]
	val  T
}

// New returns a list holding n copies of init.
func New[T any](n int, init T) *List[T] {
	var l List[T]
	l.Resize(n, init)
	return &l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Append adds x to the end of the list, at index Len()-1.
// The complexity is O(1).
func (l *List[T]) Append(x T) {
	l.first = &cell[T]{
		next: l.first,
		val:  x,
	}
	l.len++
}

// RemoveAt removes the element at index i. It does nothing
// if i is out of range.
// The complexity is O(n) where n = l.Len().
func (l *List[T]) RemoveAt(i int) {
	if i < 0 || i >= l.Len() {
		return
	}
	link := l.link(i)
	c := *link
	*link = c.next
	c.next = nil
	l.len--
}

// Resize changes the length of the list to n, appending copies
// of init when growing and removing the elements at index n and
// beyond when shrinking. A negative n is treated as zero.
// The complexity is O(|n - l.Len()|).
func (l *List[T]) Resize(n int, init T) {
	n = max(n, 0)
	for l.len < n {
		l.Append(init)
	}
	for l.len > n {
		c := l.first
		l.first = c.next
		c.next = nil
		l.len--
	}
}

// At returns a pointer to the element at index i. The pointer
// remains valid until the element is removed.
// The complexity is O(n) where n = l.Len().
func (l *List[T]) At(i int) (*T, error) {
	if i < 0 || i >= l.Len() {
		return nil, fmt.Errorf("list index %d with length %d: %w", i, l.Len(), ErrIndexOutOfRange)
	}
	return &(*l.link(i)).val, nil
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	p, err := l.At(i)
	if err != nil {
		return *new(T), err
	}
	return *p, nil
}

// Set sets the element at index i to x.
func (l *List[T]) Set(i int, x T) error {
	p, err := l.At(i)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// Clear removes all the elements from the list, unlinking
// the cells one at a time.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	for c := l.first; c != nil; {
		next := c.next
		*c = cell[T]{}
		c = next
	}
	l.first = nil
	l.len = 0
}

// All returns an iterator over the index and value of each element
// in index order, oldest first. The values are copies; when T must
// not be copied (a List, for example), use Backward instead.
//
// The list must not be changed while iterating.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		cells := make([]*cell[T], 0, l.len)
		for c := l.first; c != nil; c = c.next {
			cells = append(cells, c)
		}
		for i := range cells {
			if !yield(i, cells[len(cells)-1-i].val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index of each element and a
// pointer to it, starting with the most recently appended element.
// Unlike All, it walks the chain in its physical order and needs no
// extra storage.
//
// The list must not be changed while iterating, although the values
// may be changed through the yielded pointers.
func (l *List[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if l == nil {
			return
		}
		i := l.len - 1
		for c := l.first; c != nil; c = c.next {
			if !yield(i, &c.val) {
				return
			}
			i--
		}
	}
}

// link returns the link that points to the cell at index i,
// which must be in range.
func (l *List[T]) link(i int) **cell[T] {
	link := &l.first
	for range l.len - i - 1 {
		link = &(*link).next
	}
	return link
}
