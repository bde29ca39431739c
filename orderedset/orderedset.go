package orderedset

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/rmclay/meshkit/set"
)

// ErrEmpty is returned by Pop when the set has no elements.
var ErrEmpty = errors.New("orderedset: empty set")

type node[T comparable] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// Set is a collection of unique elements that remembers the order in which
// they were first inserted. Membership tests, insertion and removal are O(1):
// a map indexes every element's node in a sentinel-based circular doubly
// linked list, so no operation ever scans the whole collection.
// It is not safe to call any method concurrently from different goroutines.
type Set[T comparable] struct {
	end   node[T] // sentinel: end.next is the oldest element, end.prev the newest
	index map[T]*node[T]
}

// New creates a set holding items. Duplicates collapse to a single entry and
// the first occurrence decides its position.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]*node[T], len(items))}
	s.end.prev = &s.end
	s.end.next = &s.end
	for _, t := range items {
		s.Add(t)
	}
	return s
}

func (s *Set[T]) Len() int {
	return len(s.index)
}

func (s *Set[T]) Contains(t T) bool {
	_, ok := s.index[t]
	return ok
}

// Add inserts t at the newest end and reports whether it was inserted.
// Adding a present element is a no-op: its position never changes, so
// iteration order is decided solely by first insertion.
func (s *Set[T]) Add(t T) bool {
	if _, ok := s.index[t]; ok {
		return false
	}
	n := &node[T]{value: t, prev: s.end.prev, next: &s.end}
	n.prev.next = n
	s.end.prev = n
	s.index[t] = n
	return true
}

// Discard removes t and reports whether it was present.
func (s *Set[T]) Discard(t T) bool {
	n, ok := s.index[t]
	if !ok {
		return false
	}
	s.unlink(n)
	return true
}

func (s *Set[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	delete(s.index, n.value)
}

// Pop removes and returns the newest element if last is true, the oldest
// otherwise. It returns ErrEmpty if the set has no elements.
func (s *Set[T]) Pop(last bool) (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	n := s.end.prev
	if !last {
		n = s.end.next
	}
	s.unlink(n)
	return n.value, nil
}

// Values yields the elements oldest first. The sequence is lazy and can be
// ranged over any number of times; each call starts a fresh traversal.
// Mutating the set while a traversal is in progress is undefined.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.end.next; n != &s.end; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements newest first. Same caveats as Values.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.end.prev; n != &s.end; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Equal reports whether s and o hold the same elements in the same
// insertion order.
func (s *Set[T]) Equal(o *Set[T]) bool {
	if s.Len() != o.Len() {
		return false
	}
	next, stop := iter.Pull(o.Values())
	defer stop()
	for t := range s.Values() {
		ot, ok := next()
		if !ok || t != ot {
			return false
		}
	}
	return true
}

// EqualSet reports whether s holds the same elements as o, ignoring order.
func (s *Set[T]) EqualSet(o set.Set[T]) bool {
	if s.Len() != o.Len() {
		return false
	}
	for t := range s.Values() {
		if !o.Exists(t) {
			return false
		}
	}
	return true
}

func (s *Set[T]) String() string {
	if s.Len() == 0 {
		return "OrderedSet()"
	}
	return fmt.Sprintf("OrderedSet(%v)", slices.Collect(s.Values()))
}
