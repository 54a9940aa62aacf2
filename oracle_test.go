package iset

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// assertMatchesOracle is the Go transliteration of assert_countset_is:
// it checks structural invariants, size/emptiness agreement, and then
// walks s in order comparing every element, index, count/contains/find/
// lower_bound/upper_bound/equal_range/nth answer against the sorted-unique
// oracle slice.
func assertMatchesOracle(t *testing.T, s *Set[int], expected []int) {
	t.Helper()
	checkInvariants(t, s)
	require.Equal(t, len(expected), s.Len())
	require.Equal(t, len(expected) == 0, s.IsEmpty())

	index := 0
	for it := s.Begin(); it.Valid(); it.Next() {
		v := expected[index]
		require.Equal(t, v, it.Key())
		require.Equal(t, index, it.Index())
		require.Equal(t, 1, s.Count(v))
		require.True(t, s.Contains(v))
		require.Equal(t, it.Node(), s.Find(v).Node())
		require.Equal(t, it.Node(), s.LowerBound(v).Node())

		next := it
		next.Next()
		require.Equal(t, next.Node(), s.UpperBound(v).Node())

		lo, hi := s.EqualRange(v)
		require.Equal(t, it.Node(), lo.Node())
		require.Equal(t, next.Node(), hi.Node())

		require.Equal(t, it.Node(), s.Nth(index).Node())

		if index != 0 && expected[index-1]+1 < v {
			nv := expected[index-1] + 1
			require.Equal(t, 0, s.Count(nv))
			require.False(t, s.Contains(nv))
			require.False(t, s.Find(nv).Valid())
			require.Equal(t, it.Node(), s.LowerBound(nv).Node())
			require.Equal(t, it.Node(), s.UpperBound(nv).Node())
		}
		index++
	}
	require.False(t, s.Nth(index).Valid())
}

func insertOracle(expected []int, v int) ([]int, bool) {
	pos := sort.SearchInts(expected, v)
	if pos < len(expected) && expected[pos] == v {
		return expected, false
	}
	expected = append(expected, 0)
	copy(expected[pos+1:], expected[pos:])
	expected[pos] = v
	return expected, true
}

func eraseOracle(expected []int, v int) ([]int, bool) {
	pos := sort.SearchInts(expected, v)
	if pos >= len(expected) || expected[pos] != v {
		return expected, false
	}
	return append(expected[:pos], expected[pos+1:]...), true
}

func TestOracle_RandomInsertErase(t *testing.T) {
	rng := newDefaultSource()
	s := New[int]()
	var expected []int

	for i := 0; i < 500; i++ {
		v := int(rng.Uint64() % 200)
		wantInsert := int(rng.Uint64()%3) != 0
		if wantInsert {
			_, inserted, err := s.Insert(v)
			require.NoError(t, err)
			var oracleInserted bool
			expected, oracleInserted = insertOracle(expected, v)
			require.Equal(t, oracleInserted, inserted)
		} else {
			n := s.EraseKey(v)
			var oracleErased bool
			expected, oracleErased = eraseOracle(expected, v)
			require.Equal(t, oracleErased, n == 1)
		}
		assertMatchesOracle(t, s, expected)
	}
}

func TestOracle_ClearEmptiesEverything(t *testing.T) {
	s := New[int]()
	for i := 0; i < 20; i++ {
		s.Insert(i)
	}
	s.Clear()
	assertMatchesOracle(t, s, nil)
}
