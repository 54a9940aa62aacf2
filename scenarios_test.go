package iset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, keys ...int) *Set[int] {
	t.Helper()
	s, err := NewFromSlice(keys)
	require.NoError(t, err)
	return s
}

func TestScenario1_InsertSequenceAndDuplicate(t *testing.T) {
	s := New[int]()
	s.Insert(1)
	s.Insert(3)
	s.Insert(5)
	require.Equal(t, []int{1, 3, 5}, keysOf(s))

	s.Insert(4)
	require.Equal(t, []int{1, 3, 4, 5}, keysOf(s))

	s.Insert(0)
	require.Equal(t, []int{0, 1, 3, 4, 5}, keysOf(s))

	_, inserted, err := s.Insert(4)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, []int{0, 1, 3, 4, 5}, keysOf(s))
}

func TestScenario2_EraseNthSequence(t *testing.T) {
	s := mustSet(t, 1, 3, 5, 7, 9)

	s.Erase(s.Nth(3))
	require.Equal(t, []int{1, 3, 5, 9}, keysOf(s))

	s.Erase(s.Nth(3))
	require.Equal(t, []int{1, 3, 5}, keysOf(s))

	s.Erase(s.Nth(0))
	require.Equal(t, []int{3, 5}, keysOf(s))
}

func TestScenario3_EraseIteratorRanges(t *testing.T) {
	s := mustSet(t, 1, 3, 5, 7, 9, 11, 13, 15)

	s.EraseRange(s.Nth(2), s.Nth(3))
	require.Equal(t, []int{1, 3, 7, 9, 11, 13, 15}, keysOf(s))

	s.EraseRange(s.Nth(4), s.End())
	require.Equal(t, []int{1, 3, 7, 9}, keysOf(s))

	s.EraseRange(s.Nth(0), s.Nth(3))
	require.Equal(t, []int{9}, keysOf(s))
}

func TestScenario4_CountOverRange(t *testing.T) {
	s := mustSet(t, 1, 3, 5, 7)
	want := []int{0, 1, 0, 1, 0, 1, 0, 1, 0}
	for q := 0; q <= 8; q++ {
		require.Equal(t, want[q], s.Count(q), "count(%d)", q)
	}
}

func TestScenario5_LowerBoundIndexOverRange(t *testing.T) {
	s := mustSet(t, 1, 3, 5, 7)
	want := map[int]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 3, 7: 3}
	for q, idx := range want {
		require.Equal(t, idx, s.LowerBound(q).Index(), "lower_bound(%d)", q)
	}
	require.False(t, s.LowerBound(8).Valid())
}

func TestScenario6_TransparentEraseOnPairs(t *testing.T) {
	type pair struct {
		a, b int
	}
	tc := NewTransparentComparator[pair, int](
		func(q int, k pair) bool { return q < k.a },
		func(k pair, q int) bool { return k.a < q },
	)
	less := func(x, y pair) bool {
		if x.a != y.a {
			return x.a < y.a
		}
		return x.b < y.b
	}
	s := NewFunc[pair](less, WithTransparentComparator[pair, int](tc))
	for _, p := range []pair{{1, 2}, {3, 4}, {3, 6}, {3, 8}, {5, 4}, {7, 6}} {
		_, _, err := s.Insert(p)
		require.NoError(t, err)
	}

	removed := EraseAs[pair, int](s, 3)
	require.Equal(t, 3, removed)

	var remaining []pair
	for it := s.Begin(); it.Valid(); it.Next() {
		remaining = append(remaining, it.Key())
	}
	require.Equal(t, []pair{{1, 2}, {7, 6}}, remaining)
}
