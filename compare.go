package iset

// Comparator is a strict-weak-ordering predicate over K: cmp(a, b) reports
// whether a sorts strictly before b. Two values a, b are equivalent iff
// neither cmp(a, b) nor cmp(b, a) holds.
type Comparator[K any] func(a, b K) bool

// TransparentComparator is a Comparator that additionally knows how to
// compare K against a heterogeneous query type. When a Set is configured
// with one (via WithTransparentComparator), the package-level FindAs/
// ContainsAs/CountAs/LowerBoundAs/UpperBoundAs/EqualRangeAs/EraseAs
// functions accept query type Q in place of K; the Set methods Find/
// Contains/Count/LowerBound/UpperBound/EqualRange/EraseKey take only K.
//
// Less compares a key against the stored K; LessKey compares the stored K
// against a key, in that order — both directions are needed because the
// descent algorithms compare in both directions depending on which side of
// the tree they are walking.
type TransparentComparator[K, Q any] interface {
	Less(q Q, k K) bool
	LessKey(k K, q Q) bool
}

// funcTransparent adapts a pair of comparison functions into a
// TransparentComparator, letting callers build one inline instead of
// declaring a named type. This mirrors the original header's pair_cmp:
// a transparent comparator is just "compare the projection" in both
// directions.
type funcTransparent[K, Q any] struct {
	less    func(q Q, k K) bool
	lessKey func(k K, q Q) bool
}

func (f funcTransparent[K, Q]) Less(q Q, k K) bool    { return f.less(q, k) }
func (f funcTransparent[K, Q]) LessKey(k K, q Q) bool { return f.lessKey(k, q) }

// NewTransparentComparator builds a TransparentComparator from two plain
// functions, for callers who don't want to declare a named type.
func NewTransparentComparator[K, Q any](less func(q Q, k K) bool, lessKey func(k K, q Q) bool) TransparentComparator[K, Q] {
	return funcTransparent[K, Q]{less: less, lessKey: lessKey}
}
