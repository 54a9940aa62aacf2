package refimpl

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// GodsOracle wraps github.com/emirpasic/gods's red-black tree. It is the
// oracle Nth/Index property tests prefer, since gods exposes Keys() as an
// already-sorted slice with no extra traversal glue needed.
type GodsOracle struct {
	tree *redblacktree.Tree
}

// NewGodsOracle returns an empty GodsOracle.
func NewGodsOracle() *GodsOracle {
	return &GodsOracle{tree: redblacktree.NewWith(utils.IntComparator)}
}

func (o *GodsOracle) Insert(key int) bool {
	if _, found := o.tree.Get(key); found {
		return false
	}
	o.tree.Put(key, struct{}{})
	return true
}

func (o *GodsOracle) Erase(key int) bool {
	if _, found := o.tree.Get(key); !found {
		return false
	}
	o.tree.Remove(key)
	return true
}

func (o *GodsOracle) Contains(key int) bool {
	_, found := o.tree.Get(key)
	return found
}

func (o *GodsOracle) Len() int { return o.tree.Size() }

func (o *GodsOracle) Keys() []int {
	raw := o.tree.Keys()
	keys := make([]int, len(raw))
	for i, k := range raw {
		keys[i] = k.(int)
	}
	return keys
}
