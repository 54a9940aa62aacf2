package refimpl

import "github.com/petar/GoLLRB/llrb"

// intItem adapts a plain int to llrb.Item.
type intItem int

func (a intItem) Less(than llrb.Item) bool { return a < than.(intItem) }

// LLRBOracle wraps github.com/petar/GoLLRB's left-leaning red-black tree.
type LLRBOracle struct {
	tree *llrb.LLRB
}

// NewLLRBOracle returns an empty LLRBOracle.
func NewLLRBOracle() *LLRBOracle {
	return &LLRBOracle{tree: llrb.New()}
}

func (o *LLRBOracle) Insert(key int) bool {
	if o.tree.Has(intItem(key)) {
		return false
	}
	o.tree.ReplaceOrInsert(intItem(key))
	return true
}

func (o *LLRBOracle) Erase(key int) bool {
	return o.tree.Delete(intItem(key)) != nil
}

func (o *LLRBOracle) Contains(key int) bool {
	return o.tree.Has(intItem(key))
}

func (o *LLRBOracle) Len() int { return o.tree.Len() }

func (o *LLRBOracle) Keys() []int {
	keys := make([]int, 0, o.tree.Len())
	min := o.tree.Min()
	if min == nil {
		return keys
	}
	o.tree.AscendGreaterOrEqual(min, func(it llrb.Item) bool {
		keys = append(keys, int(it.(intItem)))
		return true
	})
	return keys
}
