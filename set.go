package iset

import "cmp"

// Set is an ordered container of unique keys backed by an implicit treap:
// a binary search tree on K ordered by a Comparator, balanced in expectation
// by a max-heap on independently drawn priorities, with every node carrying
// the size of its own subtree. The size annotation is what turns ordinary
// BST operations into order-statistics ones — Nth and an iterator's Index
// are both O(log n).
//
// The zero Set is not usable; construct one with New or NewFunc.
type Set[K any] struct {
	root  *Node[K]
	cmp   Comparator[K]
	alloc Allocator[K]
	src   Source

	// transparent holds a TransparentComparator[K, Q] for exactly one Q,
	// set by WithTransparentComparator. It is any because Q only exists
	// at the call site of the FindAs/ContainsAs/... family, never as a
	// type parameter of Set itself.
	transparent any
}

// New constructs an empty Set ordered by K's natural '<'. Use NewFunc for a
// custom Comparator, or pass WithComparator to override the natural order
// (e.g. for a descending Set) while still using New's simpler signature.
func New[K cmp.Ordered](opts ...Option[K]) *Set[K] {
	c := newConfig(opts)
	if c.cmp == nil {
		c.cmp = func(a, b K) bool { return a < b }
	}
	return &Set[K]{cmp: c.cmp, alloc: c.alloc, src: c.src, transparent: c.transparent}
}

// NewFunc constructs an empty Set ordered by the given Comparator. less is
// overridden by a WithComparator option, if one is given.
func NewFunc[K any](less Comparator[K], opts ...Option[K]) *Set[K] {
	c := newConfig(opts)
	if c.cmp != nil {
		less = c.cmp
	}
	return &Set[K]{cmp: less, alloc: c.alloc, src: c.src, transparent: c.transparent}
}

// NewFromSlice constructs a Set ordered by K's natural '<' and populated
// with keys. If an insertion fails partway (ErrAllocFailure from a
// caller-supplied Allocator), every node built so far is released and the
// error is returned; no partial Set leaks.
func NewFromSlice[K cmp.Ordered](keys []K, opts ...Option[K]) (*Set[K], error) {
	return ctorInsert(New(opts...), keys)
}

// NewFuncFromSlice is NewFromSlice for a custom Comparator.
func NewFuncFromSlice[K any](keys []K, less Comparator[K], opts ...Option[K]) (*Set[K], error) {
	return ctorInsert(NewFunc(less, opts...), keys)
}

func ctorInsert[K any](s *Set[K], keys []K) (*Set[K], error) {
	for _, k := range keys {
		if _, _, err := s.Insert(k); err != nil {
			s.Clear()
			return nil, err
		}
	}
	return s, nil
}

// Len reports the number of keys in s.
func (s *Set[K]) Len() int { return countOf(s.root) }

// IsEmpty reports whether s has no keys.
func (s *Set[K]) IsEmpty() bool { return s.root == nil }

// Root returns the treap's root Node, or nil if s is empty. Exposed for
// callers that want to walk the tree directly (e.g. to implement a custom
// traversal or sanity check); ordinary use should go through Iterator.
func (s *Set[K]) Root() *Node[K] { return s.root }

// Begin returns an Iterator at the smallest key, or End if s is empty.
func (s *Set[K]) Begin() Iterator[K] { return Iterator[K]{node: leftmost(s.root)} }

// End returns the past-the-end Iterator.
func (s *Set[K]) End() Iterator[K] { return Iterator[K]{} }

// RBegin returns a ReverseIterator at the largest key, or REnd if s is
// empty.
func (s *Set[K]) RBegin() ReverseIterator[K] { return ReverseIterator[K]{node: rightmost(s.root)} }

// REnd returns the past-the-rend ReverseIterator.
func (s *Set[K]) REnd() ReverseIterator[K] { return ReverseIterator[K]{} }

// Insert adds key if no equivalent key is present. It returns an Iterator
// at the resulting node (the existing one, on a duplicate), whether an
// insertion actually happened, and a non-nil error only if the configured
// Allocator failed — in which case the Set is left exactly as it was.
func (s *Set[K]) Insert(key K) (Iterator[K], bool, error) {
	n, err := s.alloc.Alloc()
	if err != nil {
		return Iterator[K]{}, false, ErrAllocFailure
	}
	n.key = key
	n.priority = s.src.Uint64()

	conflict := nodeInsert(&s.root, n, s.cmp)
	if conflict != nil {
		s.alloc.Free(n)
		return Iterator[K]{node: conflict}, false, nil
	}
	return Iterator[K]{node: n}, true, nil
}

// EmplaceFunc builds a key via build and inserts it, for callers whose key
// construction is itself fallible (e.g. parsing, or copying a key that owns
// a resource). If build fails, ErrKeyCopyFailure is returned and nothing is
// inserted; if build succeeds but an equivalent key is already present, the
// built key is discarded same as Insert would discard it.
func (s *Set[K]) EmplaceFunc(build func() (K, error)) (Iterator[K], bool, error) {
	key, err := build()
	if err != nil {
		return Iterator[K]{}, false, ErrKeyCopyFailure
	}
	return s.Insert(key)
}

// InsertHint is Insert, accepting a position hint that a future release may
// use to short-circuit the descent when hint is adjacent to where key
// belongs. The current implementation ignores hint, matching the original
// countset_node::insert_node's unused `next` parameter — see DESIGN.md.
func (s *Set[K]) InsertHint(hint Iterator[K], key K) (Iterator[K], error) {
	_ = hint
	it, _, err := s.Insert(key)
	return it, err
}

// Erase removes the node it points at and returns an Iterator at its
// in-order successor (End if it was the last element). it must be a valid,
// non-end Iterator drawn from s.
func (s *Set[K]) Erase(it Iterator[K]) Iterator[K] {
	succ := it.node.next()
	nodeErase(&s.root, it.node)
	s.alloc.Free(it.node)
	return Iterator[K]{node: succ}
}

// EraseRange removes every key in [first, last) and returns last (which
// remains valid, since nodes outside the erased range are never relocated).
func (s *Set[K]) EraseRange(first, last Iterator[K]) Iterator[K] {
	for first.node != last.node {
		first = s.Erase(first)
	}
	return last
}

// EraseKey removes every key equivalent to key and reports how many nodes
// were removed. With a non-transparent Comparator over unique keys this is
// always 0 or 1.
func (s *Set[K]) EraseKey(key K) int {
	lo, hi := s.EqualRange(key)
	n := 0
	for it := lo; it.node != hi.node; {
		it = s.Erase(it)
		n++
	}
	return n
}

// Clear removes every key from s, releasing all nodes.
func (s *Set[K]) Clear() {
	destroyTree(s.root, s.alloc)
	s.root = nil
}

// Find returns an Iterator at a key equivalent to key, or End if none
// exists.
func (s *Set[K]) Find(key K) Iterator[K] {
	less := s.cmp
	return Iterator[K]{node: find(s.root,
		func(k K) bool { return less(key, k) },
		func(k K) bool { return less(k, key) },
	)}
}

// Contains reports whether s holds a key equivalent to key.
func (s *Set[K]) Contains(key K) bool { return s.Find(key).Valid() }

// Count returns the number of keys equivalent to key (0 or 1 with a
// non-transparent Comparator over unique keys).
func (s *Set[K]) Count(key K) int {
	lo, hi := s.EqualRange(key)
	return s.rank(hi) - s.rank(lo)
}

// rank returns it's in-order position, treating End as Len() — the rank an
// insertion at the very end would take. Index() itself is undefined at
// End, so Count/CountAs go through this instead of calling it directly.
func (s *Set[K]) rank(it Iterator[K]) int {
	if it.node == nil {
		return countOf(s.root)
	}
	return it.node.index()
}

// LowerBound returns an Iterator at the first key not less than key, or End
// if every key is less than key.
func (s *Set[K]) LowerBound(key K) Iterator[K] {
	less := s.cmp
	return Iterator[K]{node: lowerBoundBy(s.root, func(k K) bool { return !less(k, key) })}
}

// UpperBound returns an Iterator at the first key greater than key, or End
// if no key is greater than key.
func (s *Set[K]) UpperBound(key K) Iterator[K] {
	less := s.cmp
	return Iterator[K]{node: lowerBoundBy(s.root, func(k K) bool { return less(key, k) })}
}

// EqualRange returns [LowerBound(key), UpperBound(key)).
func (s *Set[K]) EqualRange(key K) (Iterator[K], Iterator[K]) {
	return s.LowerBound(key), s.UpperBound(key)
}

// Nth returns an Iterator at the key of rank n (0-based, in-order), or End
// if n is out of [0, Len()). O(log n).
func (s *Set[K]) Nth(n int) Iterator[K] {
	if n < 0 || n >= countOf(s.root) {
		return Iterator[K]{}
	}
	cur := s.root
	for {
		left := countOf(cur.left)
		switch {
		case n < left:
			cur = cur.left
		case n == left:
			return Iterator[K]{node: cur}
		default:
			n -= left + 1
			cur = cur.right
		}
	}
}

// Clone returns a deep copy of s: an independent tree of independently
// allocated nodes with the same keys, priorities, and counts (priorities
// are copied, never redrawn from the RNG, so the copy's shape is identical
// to the original's). opts may override the clone's Comparator, Allocator,
// Source, or transparent comparator; anything not overridden is inherited
// from s. If allocation fails partway, the partial copy is released and the
// error is returned.
func (s *Set[K]) Clone(opts ...Option[K]) (*Set[K], error) {
	base := config[K]{cmp: s.cmp, alloc: s.alloc, src: s.src, transparent: s.transparent}
	c := newConfigFrom(base, opts)
	clone := &Set[K]{cmp: c.cmp, alloc: c.alloc, src: c.src, transparent: c.transparent}

	root, err := cloneTree(s.root, clone.alloc)
	if err != nil {
		return nil, err
	}
	clone.root = root
	return clone, nil
}

// Take detaches s's entire tree into a newly returned Set and leaves s
// empty, an O(1) move instead of Clone's O(n) deep copy. opts may override
// the new Set's Comparator, Allocator, Source, or transparent comparator,
// same as Clone; anything not overridden is inherited from s.
func (s *Set[K]) Take(opts ...Option[K]) *Set[K] {
	base := config[K]{cmp: s.cmp, alloc: s.alloc, src: s.src, transparent: s.transparent}
	c := newConfigFrom(base, opts)
	moved := &Set[K]{root: s.root, cmp: c.cmp, alloc: c.alloc, src: c.src, transparent: c.transparent}
	s.root = nil
	return moved
}

// Assign replaces s's contents with a deep copy of other's, freeing every
// node s held beforehand. It is a no-op if s and other are the same Set.
// The copy (and its Comparator, Allocator, Source, and transparent
// comparator) is built exactly as Clone would build it from other; if
// allocation fails partway, the partial copy is released, s is left
// unchanged, and the error is returned.
func (s *Set[K]) Assign(other *Set[K]) error {
	if s == other {
		return nil
	}
	cloned, err := other.Clone()
	if err != nil {
		return err
	}
	old, oldAlloc := s.root, s.alloc
	*s = *cloned
	destroyTree(old, oldAlloc)
	return nil
}

// AssignMove replaces s's contents with other's, freeing every node s held
// beforehand, and leaves other empty — an O(1) move instead of Assign's
// O(n) deep copy. It is a no-op if s and other are the same Set.
func (s *Set[K]) AssignMove(other *Set[K]) {
	if s == other {
		return
	}
	moved := other.Take()
	old, oldAlloc := s.root, s.alloc
	*s = *moved
	destroyTree(old, oldAlloc)
}

// Swap exchanges the contents of s and other in place; existing Iterators
// remain valid but now walk the other Set.
func (s *Set[K]) Swap(other *Set[K]) {
	if s == other {
		return
	}
	*s, *other = *other, *s
}

// FindAs returns an Iterator at a key equivalent to q under s's configured
// TransparentComparator[K, Q], or End if none exists. It panics if s was
// not built with WithTransparentComparator[K, Q] for this exact Q.
func FindAs[K, Q any](s *Set[K], q Q) Iterator[K] {
	tc := transparentOf[K, Q](s)
	return Iterator[K]{node: find(s.root,
		func(k K) bool { return tc.Less(q, k) },
		func(k K) bool { return tc.LessKey(k, q) },
	)}
}

// ContainsAs reports whether s holds a key equivalent to q.
func ContainsAs[K, Q any](s *Set[K], q Q) bool { return FindAs[K, Q](s, q).Valid() }

// CountAs returns the number of keys equivalent to q.
func CountAs[K, Q any](s *Set[K], q Q) int {
	lo, hi := EqualRangeAs[K, Q](s, q)
	return s.rank(hi) - s.rank(lo)
}

// LowerBoundAs returns an Iterator at the first key not less than q.
func LowerBoundAs[K, Q any](s *Set[K], q Q) Iterator[K] {
	tc := transparentOf[K, Q](s)
	return Iterator[K]{node: lowerBoundBy(s.root, func(k K) bool { return !tc.LessKey(k, q) })}
}

// UpperBoundAs returns an Iterator at the first key greater than q.
func UpperBoundAs[K, Q any](s *Set[K], q Q) Iterator[K] {
	tc := transparentOf[K, Q](s)
	return Iterator[K]{node: lowerBoundBy(s.root, func(k K) bool { return tc.Less(q, k) })}
}

// EqualRangeAs returns [LowerBoundAs(q), UpperBoundAs(q)).
func EqualRangeAs[K, Q any](s *Set[K], q Q) (Iterator[K], Iterator[K]) {
	return LowerBoundAs[K, Q](s, q), UpperBoundAs[K, Q](s, q)
}

// EraseAs removes every key equivalent to q and reports how many nodes were
// removed.
func EraseAs[K, Q any](s *Set[K], q Q) int {
	lo, hi := EqualRangeAs[K, Q](s, q)
	n := 0
	for it := lo; it.node != hi.node; {
		it = s.Erase(it)
		n++
	}
	return n
}

func transparentOf[K, Q any](s *Set[K]) TransparentComparator[K, Q] {
	tc, ok := s.transparent.(TransparentComparator[K, Q])
	if !ok {
		panic("iset: Set has no TransparentComparator for this query type")
	}
	return tc
}
