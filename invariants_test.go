package iset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks s's whole tree via BFS, cycle-guarded exactly as
// test_countset_sanity in countset_testing.h guards with an
// unordered_set<const countset_node<T>*>, and asserts every structural
// invariant spec.md §8 properties 1–5 require: heap order on priority,
// BST order on key, correct parent back-pointers, and correct subtree
// counts.
func checkInvariants[K any](t *testing.T, s *Set[K]) {
	t.Helper()
	if s.root == nil {
		require.Equal(t, 0, s.Len())
		require.True(t, s.IsEmpty())
		return
	}
	require.Nil(t, s.root.parent)

	visited := make(map[*Node[K]]bool)
	queue := []*Node[K]{s.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		require.False(t, visited[n], "cycle detected in tree")
		visited[n] = true

		expectedCount := 1
		if n.left != nil {
			require.GreaterOrEqual(t, n.priority, n.left.priority)
			require.False(t, s.cmp(n.key, n.left.key))
			require.Same(t, n, n.left.parent)
			expectedCount += n.left.count
			queue = append(queue, n.left)
		}
		if n.right != nil {
			require.GreaterOrEqual(t, n.priority, n.right.priority)
			require.False(t, s.cmp(n.right.key, n.key))
			require.Same(t, n, n.right.parent)
			expectedCount += n.right.count
			queue = append(queue, n.right)
		}
		require.Equal(t, expectedCount, n.count)
	}
}

func TestInvariants_EmptySet(t *testing.T) {
	s := New[int]()
	checkInvariants(t, s)
}

func TestInvariants_AfterInsertsAndErases(t *testing.T) {
	s := New[int]()
	for _, k := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6, 0} {
		_, _, err := s.Insert(k)
		require.NoError(t, err)
		checkInvariants(t, s)
	}
	for _, k := range []int{2, 8, 5, 0, 9} {
		n := s.EraseKey(k)
		require.Equal(t, 1, n)
		checkInvariants(t, s)
	}
}

func TestInvariants_DuplicateInsertDoesNotCorruptTree(t *testing.T) {
	s := New[int]()
	_, inserted, err := s.Insert(42)
	require.NoError(t, err)
	require.True(t, inserted)

	_, inserted, err = s.Insert(42)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 1, s.Len())
	checkInvariants(t, s)
}
