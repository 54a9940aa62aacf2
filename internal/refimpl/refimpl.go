// Package refimpl wraps three independent, real-world ordered-container
// implementations behind one small interface so iset's property tests can
// replay the same operation sequence against all of them and compare
// results. None of this is used by the library itself — it exists purely
// as cross-check oracles, the role _examples/rsc-omap/llrb.go and avl.go
// play for the teacher's own bench_test.go, generalized here to three real
// dependencies instead of two hand-rolled ones.
package refimpl

// Oracle is the minimal ordered-int-set surface every wrapped
// implementation exposes, enough to cross-check iset.Set[int] against.
type Oracle interface {
	Insert(key int) (inserted bool)
	Erase(key int) (removed bool)
	Contains(key int) bool
	Len() int
	// Keys returns every key in ascending order.
	Keys() []int
}
