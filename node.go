package list

// node is a single list link: a value and two non-owning traversal
// pointers. The list is the sole owner of its nodes.
//
// Exactly one node of a non-empty list is the sentinel. It marks the
// one-past-the-end position, always sits at tail.next, and its value is
// never observable.
type node[V any] struct {
	next     *node[V]
	prev     *node[V]
	value    V
	sentinel bool
}
