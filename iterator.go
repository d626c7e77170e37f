package list

import "iter"

// Iterator is a bidirectional cursor over a list.
//
// Iterators compare equal with == iff they reference the same node,
// regardless of element values. The zero Iterator equals the End() of
// an empty list.
//
// An iterator referencing a node removed by Erase or Clear is
// invalidated; PushBack and PushFront never invalidate iterators.
// Dereferencing or advancing an invalid or one-past-the-end position
// panics.
type Iterator[V any] struct {
	n *node[V]
}

// Begin returns an iterator to the first element. It equals End() iff
// the list is empty.
func (l *List[V]) Begin() Iterator[V] {
	return Iterator[V]{l.head}
}

// End returns the one-past-the-end iterator.
func (l *List[V]) End() Iterator[V] {
	if l.tail == nil {
		return Iterator[V]{}
	}

	return Iterator[V]{l.tail.next}
}

// Next returns an iterator advanced one position forward. Advancing
// past End() panics.
func (it Iterator[V]) Next() Iterator[V] {
	if it.n == nil || it.n.sentinel {
		panic("list: advance past end")
	}

	return Iterator[V]{it.n.next}
}

// Prev returns an iterator moved one position backward. Moving before
// Begin() panics.
func (it Iterator[V]) Prev() Iterator[V] {
	if it.n == nil || it.n.prev == nil {
		panic("list: advance before begin")
	}

	return Iterator[V]{it.n.prev}
}

// Value returns the referenced element. It panics at End().
func (it Iterator[V]) Value() V { //nolint:ireturn
	if it.n == nil || it.n.sentinel {
		panic("list: dereference of end iterator")
	}

	return it.n.value
}

// Set replaces the referenced element in place. It panics at End().
func (it Iterator[V]) Set(v V) {
	if it.n == nil || it.n.sentinel {
		panic("list: dereference of end iterator")
	}

	it.n.value = v
}

// ReverseIterator traverses a list from back to front. It is the
// standard adapter over Iterator: it holds a forward base position and
// references the element immediately before it, so RBegin() (base
// End()) references the last element and REnd() (base Begin()) is the
// reverse one-past-the-end.
type ReverseIterator[V any] struct {
	base Iterator[V]
}

// RBegin returns a reverse iterator to the last element. It equals
// REnd() iff the list is empty.
func (l *List[V]) RBegin() ReverseIterator[V] {
	return ReverseIterator[V]{l.End()}
}

// REnd returns the reverse one-past-the-end iterator.
func (l *List[V]) REnd() ReverseIterator[V] {
	return ReverseIterator[V]{l.Begin()}
}

// Base returns the underlying forward iterator.
func (it ReverseIterator[V]) Base() Iterator[V] {
	return it.base
}

// Next returns a reverse iterator advanced one position, toward the
// front of the list. Advancing past REnd() panics.
func (it ReverseIterator[V]) Next() ReverseIterator[V] {
	return ReverseIterator[V]{it.base.Prev()}
}

// Prev returns a reverse iterator moved one position back, toward the
// back of the list.
func (it ReverseIterator[V]) Prev() ReverseIterator[V] {
	return ReverseIterator[V]{it.base.Next()}
}

// Value returns the referenced element. It panics at REnd().
func (it ReverseIterator[V]) Value() V { //nolint:ireturn
	return it.base.Prev().Value()
}

// Set replaces the referenced element in place. It panics at REnd().
func (it ReverseIterator[V]) Set(v V) {
	it.base.Prev().Set(v)
}

// All returns a read-only sequence over the list's values in forward
// order for use with range. The list must not be modified during
// iteration.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.head; n != nil && !n.sentinel; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a read-only sequence over the list's values in
// reverse order for use with range. The list must not be modified
// during iteration.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}
