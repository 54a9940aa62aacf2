package iset

// Iterator is a bidirectional, forward-ordered cursor over a Set. The zero
// Iterator and the result of Set.End are both the "end" position: a nil
// underlying node. Iterators compare equal with ==.
//
// An Iterator is invalidated by Erase of the node it points at, and by
// Clear or any operation that discards the whole tree it was drawn from.
// Insert and Erase of other nodes never invalidate it, because split/merge
// relink nodes but never relocate them.
type Iterator[K any] struct {
	node *Node[K]
}

// Valid reports whether it does not point at end.
func (it Iterator[K]) Valid() bool { return it.node != nil }

// Key returns the key at it. Calling Key on an end iterator is undefined,
// as in spec.md §7's "dereference of end" precondition.
func (it Iterator[K]) Key() K { return it.node.key }

// Node returns the underlying Node, or nil at end.
func (it Iterator[K]) Node() *Node[K] { return it.node }

// Index returns the 0-based in-order rank of it. O(log n) amortized.
func (it Iterator[K]) Index() int { return it.node.index() }

// Next advances it to its in-order successor. Advancing past end is
// absorbing: it stays at end.
func (it *Iterator[K]) Next() {
	if it.node != nil {
		it.node = it.node.next()
	}
}

// Prev moves it to its in-order predecessor.
func (it *Iterator[K]) Prev() {
	if it.node != nil {
		it.node = it.node.prev()
	}
}

// Reverse returns the ReverseIterator over the same node.
func (it Iterator[K]) Reverse() ReverseIterator[K] {
	return ReverseIterator[K]{node: it.node}
}

// ReverseIterator walks a Set from largest key to smallest. Its Base is the
// forward Iterator pointing at the same node.
type ReverseIterator[K any] struct {
	node *Node[K]
}

// Valid reports whether it does not point at rend.
func (it ReverseIterator[K]) Valid() bool { return it.node != nil }

// Key returns the key at it.
func (it ReverseIterator[K]) Key() K { return it.node.key }

// Node returns the underlying Node, or nil at rend.
func (it ReverseIterator[K]) Node() *Node[K] { return it.node }

// Index returns the 0-based in-order rank of it (rank in forward order,
// not reverse order).
func (it ReverseIterator[K]) Index() int { return it.node.index() }

// Next advances it to its in-order predecessor (the next element in
// reverse order).
func (it *ReverseIterator[K]) Next() {
	if it.node != nil {
		it.node = it.node.prev()
	}
}

// Prev moves it to its in-order successor.
func (it *ReverseIterator[K]) Prev() {
	if it.node != nil {
		it.node = it.node.next()
	}
}

// Base returns the forward Iterator over the same node.
func (it ReverseIterator[K]) Base() Iterator[K] {
	return Iterator[K]{node: it.node}
}
