/*
Package list implements a generic doubly linked list with bidirectional
iterators.

The list keeps a sentinel node after its last element so forward
traversal reaches End() without nil checks, and an iterator positioned
at End() can step back to the last element. An empty list owns no nodes
at all.

The list is not safe for concurrent use. Guard it externally if shared
between goroutines.

# Example Usage

## Basic

	func basicExample() {
		l := list.Of(1, 2, 3)

		l.PushBack(4)  // [1 2 3 4]
		l.PushFront(0) // [0 1 2 3 4]

		fmt.Println(l.Front(), l.Back(), l.Len()) // 0 4 5

		// Iterate forward.
		for v := range l.All() {
			fmt.Println(v)
		}

		// Iterate backward.
		for v := range l.Backward() {
			fmt.Println(v)
		}
	}

## Iterators

	func iteratorExample() {
		l := list.Of("a", "b", "c")

		// Walk the list with explicit iterators.
		for it := l.Begin(); it != l.End(); it = it.Next() {
			fmt.Println(it.Value())
		}

		// Mutate the first element in place.
		l.Begin().Set("A")

		// Remove the middle element; Erase returns an iterator to the
		// successor.
		it := l.Erase(l.Begin().Next())
		fmt.Println(it.Value()) // c

		// Reverse traversal visits elements from back to front.
		for it := l.RBegin(); it != l.REnd(); it = it.Next() {
			fmt.Println(it.Value())
		}
	}
*/
package list
