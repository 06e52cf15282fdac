package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) []byte { return []byte(s) }

func TestTable_InsertSearch(t *testing.T) {
	tb := NewTable[int](Config[int]{})
	tb.Insert(key("a"), 1)
	tb.Insert(key("b"), 2)

	v, ok := tb.Search(key("a"))
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = tb.Search(key("b"))
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = tb.Search(key("missing"))
	assert.False(t, ok)
}

func TestTable_InsertOverwrites(t *testing.T) {
	tb := NewTable[int](Config[int]{})
	tb.Insert(key("a"), 1)
	tb.Insert(key("a"), 2)
	assert.Equal(t, 1, tb.Len())

	v, ok := tb.Search(key("a"))
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTable_Remove(t *testing.T) {
	tb := NewTable[int](Config[int]{})
	tb.Insert(key("a"), 1)

	v, ok := tb.Remove(key("a"))
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, tb.Len())

	_, ok = tb.Remove(key("a"))
	assert.False(t, ok)
}

func TestTable_DeleteInvokesFreeValue(t *testing.T) {
	var freed []int
	tb := NewTable[int](Config[int]{FreeValue: func(v int) { freed = append(freed, v) }})
	tb.Insert(key("a"), 1)
	tb.Delete(key("a"))
	assert.Equal(t, []int{1}, freed)
	assert.Equal(t, 0, tb.Len())

	// delete of an absent key is a no-op
	tb.Delete(key("a"))
	assert.Equal(t, []int{1}, freed)
}

func TestTable_FreeInvokesFreeValueOnEveryResident(t *testing.T) {
	var freed int
	tb := NewTable[int](Config[int]{FreeValue: func(int) { freed++ }})
	for i := 0; i < 10; i++ {
		tb.Insert(key(fmt.Sprintf("k%d", i)), i)
	}
	tb.Free()
	assert.Equal(t, 10, freed)
}

func TestTable_RehashPreservesKeysAndValues(t *testing.T) {
	tb := NewTable[int](Config[int]{AlphaN: 1, LogAlphaD: 0}) // alpha = 1

	const n = 5000
	for i := 0; i < n; i++ {
		tb.Insert(key(fmt.Sprintf("key-%d", i)), i)
		assert.LessOrEqual(t, tb.Len(), tb.Count(),
			"load factor invariant must hold after every insert unless saturated")
	}
	assert.Equal(t, n, tb.Len())

	for i := 0; i < n; i++ {
		v, ok := tb.Search(key(fmt.Sprintf("key-%d", i)))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestTable_OnRehashFiresOnEveryGrowthStep(t *testing.T) {
	var calls [][2]int
	tb := NewTable[int](Config[int]{
		AlphaN:    1,
		LogAlphaD: 0, // alpha = 1
		OnRehash: func(oldCount, newCount int) {
			calls = append(calls, [2]int{oldCount, newCount})
		},
	})

	const n = 5000
	for i := 0; i < n; i++ {
		tb.Insert(key(fmt.Sprintf("key-%d", i)), i)
	}

	require.NotEmpty(t, calls, "a 5000-key table at alpha=1 must rehash at least once")
	for _, c := range calls {
		assert.Less(t, c[0], c[1], "each rehash must grow the bucket count")
	}
}

func TestTable_MinNumPreSizing(t *testing.T) {
	tb := NewTable[int](Config[int]{MinNum: 100000, AlphaN: 3, LogAlphaD: 1})
	assert.False(t, exceedsAlpha(100000, uint64(tb.Count()), 3, 1))
}

func TestExceedsAlpha(t *testing.T) {
	// alpha = 3/2 = 1.5: 10 elements in a 10-slot table -> load factor 1.0, fine.
	assert.False(t, exceedsAlpha(10, 10, 3, 1))
	// 20 elements in a 10-slot table -> load factor 2.0 > 1.5.
	assert.True(t, exceedsAlpha(20, 10, 3, 1))
}
