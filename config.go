package iset

// Option configures a Set at construction time. Options are applied in the
// order given to New/NewFunc, so a later WithX overrides an earlier one.
//
// This unifies the combinatorial construction paths spec.md §4.D and §9
// call for (every subset of comparator/allocator/RNG overrides, on every
// construction form) into one small builder, instead of enumerating every
// combination the way the original C++ header's dozen constructor overloads
// do.
type Option[K any] func(*config[K])

type config[K any] struct {
	cmp         Comparator[K]
	alloc       Allocator[K]
	src         Source
	transparent any
}

// WithComparator overrides the ordering used for K. Without it, New orders
// by K's natural '<' and NewFunc by its less argument.
func WithComparator[K any](cmp Comparator[K]) Option[K] {
	return func(c *config[K]) { c.cmp = cmp }
}

// WithAllocator overrides the node allocator. Defaults to a plain
// heap-allocating Allocator that never fails.
func WithAllocator[K any](alloc Allocator[K]) Option[K] {
	return func(c *config[K]) { c.alloc = alloc }
}

// WithSource overrides the priority source. Defaults to the package's
// deterministic xorshift generator.
func WithSource[K any](src Source) Option[K] {
	return func(c *config[K]) { c.src = src }
}

// WithTransparentComparator attaches a TransparentComparator[K, Q],
// enabling the FindAs/ContainsAs/CountAs/LowerBoundAs/UpperBoundAs/
// EqualRangeAs/EraseAs family of query functions for query type Q. See
// DESIGN.md's "Go-specific deviation" note for why these live outside the
// Set[K] method set.
func WithTransparentComparator[K, Q any](tc TransparentComparator[K, Q]) Option[K] {
	return func(c *config[K]) { c.transparent = tc }
}

func newConfig[K any](opts []Option[K]) config[K] {
	return newConfigFrom(config[K]{}, opts)
}

// newConfigFrom applies opts on top of base, defaulting alloc/src only if
// still unset afterwards. Clone uses this to start from the source Set's
// own configuration instead of the package defaults, so an un-overridden
// field is inherited rather than reset.
func newConfigFrom[K any](base config[K], opts []Option[K]) config[K] {
	c := base
	for _, opt := range opts {
		opt(&c)
	}
	if c.alloc == nil {
		c.alloc = defaultAllocator[K]{}
	}
	if c.src == nil {
		c.src = newDefaultSource()
	}
	return c
}
