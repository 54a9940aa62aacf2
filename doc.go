// Package iset implements an in-memory ordered set of unique keys backed by
// a randomized treap with subtree-size annotations (an implicit treap with
// order statistics).
//
// Every lookup, positional query (Nth), and rank computation (Index) runs in
// expected O(log n) in the current size. The randomization comes from a
// priority drawn once per node from a pluggable Source; the tree is
// simultaneously a binary search tree on keys and a max-heap on priorities.
//
// [Set] is single-owner and not safe for concurrent use without external
// synchronization.
package iset
