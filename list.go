package list

// List is a generic doubly linked list with bidirectional iterators.
//
// The zero value is a ready to use empty list. A non-empty list keeps a
// single sentinel node linked after the last element; head and tail
// always refer to real elements, never the sentinel. An empty list owns
// no nodes at all.
//
// The list is not safe for concurrent use.
type List[V any] struct {
	head *node[V]
	tail *node[V]
	len  int
}

// New returns a new empty list.
func New[V any]() *List[V] {
	return new(List[V])
}

// Of returns a new list holding the given values in argument order.
func Of[V any](values ...V) *List[V] {
	l := New[V]()
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// FromRange returns a new list holding the values of the half-open
// iterator range [first, last) in traversal order. Both iterators must
// belong to the same list.
func FromRange[V any](first, last Iterator[V]) *List[V] {
	l := New[V]()
	for it := first; it != last; it = it.Next() {
		l.PushBack(it.Value())
	}

	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int { return l.len }

// Empty reports whether the list holds no elements.
func (l *List[V]) Empty() bool { return l.head == nil }

// Front returns the first element. It panics if the list is empty.
func (l *List[V]) Front() V { //nolint:ireturn
	if l.head == nil {
		panic("list: empty list")
	}

	return l.head.value
}

// Back returns the last element. It panics if the list is empty.
func (l *List[V]) Back() V { //nolint:ireturn
	if l.tail == nil {
		panic("list: empty list")
	}

	return l.tail.value
}

// PushBack appends v at the back of the list in O(1).
//
// Existing iterators stay valid. The previous End() iterator now
// references the new element.
func (l *List[V]) PushBack(v V) {
	if l.head == nil {
		l.bootstrap(v)
		return
	}

	// The old sentinel becomes the new tail and a fresh sentinel is
	// linked after it, so a push on a non-empty list costs exactly one
	// allocation.
	end := l.tail.next
	end.value = v
	end.sentinel = false
	end.next = &node[V]{prev: end, sentinel: true}

	l.tail = end
	l.len++
}

// PushFront prepends v at the front of the list in O(1).
// Existing iterators stay valid.
func (l *List[V]) PushFront(v V) {
	if l.head == nil {
		l.bootstrap(v)
		return
	}

	n := &node[V]{value: v, next: l.head}
	l.head.prev = n

	l.head = n
	l.len++
}

// bootstrap links the first real node and the sentinel of an empty list.
func (l *List[V]) bootstrap(v V) {
	n := &node[V]{value: v}
	n.next = &node[V]{prev: n, sentinel: true}

	l.head = n
	l.tail = n
	l.len = 1
}

// InsertBefore inserts v before at and returns an iterator to the new
// element. at must be a position of this list; it may be End(), in
// which case InsertBefore is equivalent to PushBack.
func (l *List[V]) InsertBefore(v V, at Iterator[V]) Iterator[V] {
	switch {
	case at.n == nil:
		if l.head != nil {
			panic("list: invalid iterator")
		}

		l.PushBack(v)

		return Iterator[V]{l.head}

	case at.n.sentinel:
		l.PushBack(v)

		return Iterator[V]{l.tail}

	case at.n == l.head:
		l.PushFront(v)

		return Iterator[V]{l.head}

	default:
		n := &node[V]{value: v, next: at.n, prev: at.n.prev}
		at.n.prev.next = n
		at.n.prev = n
		l.len++

		return Iterator[V]{n}
	}
}

// InsertAfter inserts v after at and returns an iterator to the new
// element. at must reference a real element; inserting after End()
// panics.
func (l *List[V]) InsertAfter(v V, at Iterator[V]) Iterator[V] {
	if at.n == nil || at.n.sentinel {
		panic("list: invalid iterator")
	}

	return l.InsertBefore(v, Iterator[V]{at.n.next})
}

// Erase removes the element at pos in O(1) and returns an iterator to
// its successor, or End() if the removed element was the last one.
// Removing the only element leaves the list empty with no nodes.
//
// pos must reference a real element of this list; erasing End() or an
// already removed position panics. Iterators to the removed element are
// invalidated.
func (l *List[V]) Erase(pos Iterator[V]) Iterator[V] {
	if pos.n == nil || pos.n.sentinel {
		panic("list: erase of invalid iterator")
	}

	if l.len == 1 {
		l.Clear()
		return l.End()
	}

	n := pos.n
	next := n.next

	if n == l.head {
		l.head = next
		next.prev = nil
	} else {
		n.prev.next = next
		next.prev = n.prev
	}

	if n == l.tail {
		l.tail = n.prev
	}

	// Sever the removed node's links so a stale iterator cannot walk
	// back into the list.
	n.next = nil
	n.prev = nil

	l.len--

	return Iterator[V]{next}
}

// Clear removes every node, including the sentinel, front to back, and
// resets the list to empty. Clearing an empty list is a no-op.
func (l *List[V]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}

	l.head = nil
	l.tail = nil
	l.len = 0
}

// Clone returns a deep copy of the list. The copy's storage is
// independent: mutating either list never affects the other.
func (l *List[V]) Clone() *List[V] {
	c := New[V]()
	for n := l.head; n != nil && !n.sentinel; n = n.next {
		c.PushBack(n.value)
	}

	return c
}

// CopyFrom replaces the contents of l with a deep copy of other.
// The copy is built first and then swapped in. l.CopyFrom(l) is a
// no-op.
func (l *List[V]) CopyFrom(other *List[V]) {
	if l == other {
		return
	}

	c := other.Clone()
	l.head, l.tail, l.len = c.head, c.tail, c.len
}

// MoveFrom transfers other's nodes into l in O(1), discarding any
// previous contents of l and leaving other empty. l.MoveFrom(l) is a
// no-op.
func (l *List[V]) MoveFrom(other *List[V]) {
	if l == other {
		return
	}

	l.head, l.tail, l.len = other.head, other.tail, other.len
	other.head, other.tail, other.len = nil, nil, 0
}
