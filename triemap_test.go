package triemap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the node layout of m: no non-root node is empty,
// labels are sorted and match the bitmap, and count matches the number of
// stored values.
func checkInvariants[K Key, V any](t *testing.T, m *TrieMap[K, V]) {
	t.Helper()
	require.NotNil(t, m.root)
	var walk func(n *node[V], root bool) int
	walk = func(n *node[V], root bool) int {
		if !root {
			require.False(t, n.isEmpty(), "empty node with label %q", n.label)
		}
		c := 0
		if n.hasValue {
			c++
		}
		var present [4]uint64
		for i, child := range n.children {
			if i > 0 {
				require.Less(t, n.children[i-1].label, child.label)
			}
			present[child.label>>6] |= 1 << (child.label & 63)
			c += walk(child, false)
		}
		require.Equal(t, present, n.present)
		return c
	}
	require.Equal(t, m.count, walk(m.root, true))
}

func TestTrieMapCRUD(t *testing.T) {
	m := New[string, int]()
	assert.True(t, m.IsEmpty())

	_, ok := m.Insert("hello", 1)
	assert.False(t, ok)
	v, ok := m.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Len())

	old, ok := m.Insert("hello", 2)
	assert.True(t, ok)
	assert.Equal(t, 1, old)
	assert.Equal(t, 1, m.Len())

	assert.False(t, m.ContainsKey("hell"))
	assert.False(t, m.ContainsKey("hello!"))
	_, ok = m.Get("hell")
	assert.False(t, ok)

	v, ok = m.Remove("hello")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Remove("hello")
	assert.False(t, ok)
	assert.True(t, m.IsEmpty())
	assert.True(t, m.root.isEmpty())
	checkInvariants(t, m)
}

func TestTrieMapEmptyKey(t *testing.T) {
	m := New[string, int]()
	m.Insert("", 7)
	m.Insert("a", 1)
	assert.True(t, m.ContainsKey(""))
	assert.Equal(t, 2, m.Len())

	v, ok := m.Remove("")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, m.ContainsKey("a"))
	checkInvariants(t, m)
}

func TestTrieMapRemovePrunes(t *testing.T) {
	cases := []struct {
		insert []string
		remove string
		expect []string
	}{
		{
			insert: []string{"abc"},
			remove: "abc",
			expect: []string{},
		},
		{
			insert: []string{"a", "abc"},
			remove: "abc",
			expect: []string{"a"},
		},
		{
			insert: []string{"a", "abc"},
			remove: "a",
			expect: []string{"abc"},
		},
		{
			insert: []string{"abc", "abd"},
			remove: "abc",
			expect: []string{"abd"},
		},
		{
			insert: []string{"abc", "abd"},
			remove: "ab",
			expect: []string{"abc", "abd"},
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			m := New[string, int]()
			for j, k := range tc.insert {
				m.Insert(k, j)
			}
			m.Remove(tc.remove)
			checkInvariants(t, m)
			assert.Equal(t, tc.expect, append([]string{}, m.KeysStartingWith("")...))
		})
	}
}

func TestTrieMapRemovePrunesToRoot(t *testing.T) {
	m := New[string, int]()
	m.Insert("abc", 1)
	m.Remove("abc")
	assert.Empty(t, m.root.children)
	assert.False(t, m.StartsWith("a"))
}

func TestTrieMapGetMut(t *testing.T) {
	m := New[string, []int]()
	m.Insert("k", []int{1})
	p := m.GetMut("k")
	require.NotNil(t, p)
	*p = append(*p, 2)
	v, _ := m.Get("k")
	assert.Equal(t, []int{1, 2}, v)
	assert.Nil(t, m.GetMut("x"))
}

func TestTrieMapByteKeys(t *testing.T) {
	m := New[[]byte, string]()
	key := []byte{0x00, 0xff, 0x10}
	m.Insert(key, "binary")
	m.Insert([]byte{0x00}, "zero")
	key[0] = 0x01

	v, ok := m.Get([]byte{0x00, 0xff, 0x10})
	assert.True(t, ok)
	assert.Equal(t, "binary", v)

	var got [][]byte
	for k := range m.Keys() {
		got = append(got, k)
	}
	assert.Equal(t, [][]byte{{0x00}, {0x00, 0xff, 0x10}}, got)
	checkInvariants(t, m)
}

func TestTrieMapKeysDoNotAlias(t *testing.T) {
	m := New[[]byte, int]()
	m.Insert([]byte("ab"), 1)
	m.Insert([]byte("ac"), 2)

	var first []byte
	for k := range m.Keys() {
		if first == nil {
			first = k
		}
		k[0] = 'x'
	}
	assert.Equal(t, []byte("xb"), first)
	assert.True(t, m.ContainsKey([]byte("ab")))
	assert.True(t, m.ContainsKey([]byte("ac")))
}

func TestTrieMapClear(t *testing.T) {
	m := FromPairs(
		KeyValue[string, int]{Key: "a", Value: 1},
		KeyValue[string, int]{Key: "b", Value: 2},
	)
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.ContainsKey("a"))
	assert.False(t, m.StartsWith(""))
	m.Insert("c", 3)
	assert.Equal(t, 1, m.Len())
	checkInvariants(t, m)
}

func TestTrieMapSize(t *testing.T) {
	m := New[string, int]()
	keys := []string{"", "a", "ab", "abc", "b", "ba", "bab", "c"}
	for i, k := range keys {
		m.Insert(k, i)
		assert.Equal(t, i+1, m.Len())
	}
	for _, k := range keys {
		m.Insert(k, -1)
	}
	assert.Equal(t, len(keys), m.Len())
	for i, k := range keys {
		m.Remove(k)
		assert.Equal(t, len(keys)-i-1, m.Len())
		checkInvariants(t, m)
	}
}

func TestTrieMapGetMutAfterRemove(t *testing.T) {
	m := New[string, int]()
	m.Insert("k", 1)
	p := m.GetMut("k")
	require.NotNil(t, p)

	m.Remove("k")
	*p = 2
	assert.Nil(t, m.GetMut("k"))
	_, ok := m.Get("k")
	assert.False(t, ok)

	m.Insert("k", 3)
	v, _ := m.Get("k")
	assert.Equal(t, 3, v)
	assert.NotSame(t, p, m.GetMut("k"))
}
