package iset

import "sync"

// Allocator supplies and reclaims the fixed-size Node blocks a Set is built
// from. Alloc must return a *Node[K] with all fields zeroed except count,
// which must be 1 (a freshly allocated node is its own one-element
// subtree). Free is called exactly once per node returned by Alloc, and
// never concurrently with another call on the same Allocator.
type Allocator[K any] interface {
	Alloc() (*Node[K], error)
	Free(*Node[K])
}

// defaultAllocator is the zero-configuration Allocator: a plain heap
// allocation per node, freed by letting the garbage collector reclaim it.
// It never fails — ErrAllocFailure is only reachable through a
// caller-supplied Allocator that can legitimately run out of capacity (a
// fixed arena, or a test double).
type defaultAllocator[K any] struct{}

func (defaultAllocator[K]) Alloc() (*Node[K], error) {
	return &Node[K]{count: 1}, nil
}

func (defaultAllocator[K]) Free(*Node[K]) {}

// PooledAllocator recycles freed nodes through a sync.Pool instead of
// letting them go to the garbage collector, trading a small amount of
// bookkeeping for fewer allocations under high churn (repeated
// insert/erase of similarly-sized trees). It never fails.
type PooledAllocator[K any] struct {
	pool sync.Pool
}

// NewPooledAllocator returns a ready-to-use PooledAllocator.
func NewPooledAllocator[K any]() *PooledAllocator[K] {
	return &PooledAllocator[K]{
		pool: sync.Pool{New: func() any { return new(Node[K]) }},
	}
}

func (p *PooledAllocator[K]) Alloc() (*Node[K], error) {
	n := p.pool.Get().(*Node[K])
	*n = Node[K]{count: 1}
	return n, nil
}

func (p *PooledAllocator[K]) Free(n *Node[K]) {
	p.pool.Put(n)
}
