package refimpl

import "github.com/google/btree"

// BTreeOracle wraps github.com/google/btree's generic B-tree.
type BTreeOracle struct {
	tree *btree.BTreeG[int]
}

// NewBTreeOracle returns an empty BTreeOracle with the library's usual
// degree of 32.
func NewBTreeOracle() *BTreeOracle {
	return &BTreeOracle{tree: btree.NewG(32, func(a, b int) bool { return a < b })}
}

func (o *BTreeOracle) Insert(key int) bool {
	_, had := o.tree.ReplaceOrInsert(key)
	return !had
}

func (o *BTreeOracle) Erase(key int) bool {
	_, had := o.tree.Delete(key)
	return had
}

func (o *BTreeOracle) Contains(key int) bool {
	_, ok := o.tree.Get(key)
	return ok
}

func (o *BTreeOracle) Len() int { return o.tree.Len() }

func (o *BTreeOracle) Keys() []int {
	keys := make([]int, 0, o.tree.Len())
	o.tree.Ascend(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
