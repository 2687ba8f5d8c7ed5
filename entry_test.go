package triemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryCounter(t *testing.T) {
	m := New[string, int]()
	for range 5 {
		*m.Entry("hits").OrInsert(0) += 1
	}
	v, ok := m.Get("hits")
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, m.Len())
}

func TestEntryVariants(t *testing.T) {
	m := New[string, int]()
	m.Insert("abc", 1)

	e := m.Entry("abc")
	occupied, ok := e.(*OccupiedEntry[string, int])
	require.True(t, ok)
	assert.Equal(t, "abc", occupied.Key())
	assert.Equal(t, 1, occupied.Get())

	for _, k := range []string{"", "ab", "abcd", "x"} {
		_, ok := m.Entry(k).(*VacantEntry[string, int])
		assert.True(t, ok, k)
	}
}

func TestEntryOrInsertWith(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	called := false
	p := m.Entry("a").OrInsertWith(func() int {
		called = true
		return 2
	})
	assert.False(t, called)
	assert.Equal(t, 1, *p)

	p = m.Entry("b").OrInsertWith(func() int {
		called = true
		return 2
	})
	assert.True(t, called)
	assert.Equal(t, 2, *p)
	assert.Equal(t, 2, m.Len())
}

func TestEntryOrDefault(t *testing.T) {
	m := New[string, []string]()
	p := m.Entry("list").OrDefault()
	*p = append(*p, "x")
	p = m.Entry("list").OrDefault()
	*p = append(*p, "y")
	v, _ := m.Get("list")
	assert.Equal(t, []string{"x", "y"}, v)
}

func TestEntryAndModify(t *testing.T) {
	m := New[string, int]()
	inc := func(v *int) { *v++ }

	m.Entry("k").AndModify(inc).OrInsert(10)
	v, _ := m.Get("k")
	assert.Equal(t, 10, v)

	m.Entry("k").AndModify(inc).OrInsert(10)
	v, _ = m.Get("k")
	assert.Equal(t, 11, v)
}

func TestVacantEntryMaterializesPath(t *testing.T) {
	m := New[string, int]()
	m.Insert("ab", 1)

	e := m.Entry("abcde").(*VacantEntry[string, int])
	assert.Equal(t, []byte("cde"), e.suffix)
	assert.Equal(t, 1, m.Len())

	*e.Insert(5) += 1
	v, ok := m.Get("abcde")
	assert.True(t, ok)
	assert.Equal(t, 6, v)
	assert.Equal(t, 2, m.Len())
	checkInvariants(t, m)
}

func TestVacantEntryOnValuelessNode(t *testing.T) {
	m := New[string, int]()
	m.Insert("abc", 1)
	e := m.Entry("ab").(*VacantEntry[string, int])
	assert.Empty(t, e.suffix)
	e.Insert(2)
	assert.Equal(t, []string{"ab", "abc"}, m.KeysStartingWith(""))
}

func TestOccupiedEntryInsertAndRemove(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)
	m.Insert("abc", 2)

	e := m.Entry("abc").(*OccupiedEntry[string, int])
	assert.Equal(t, 2, e.Insert(3))
	assert.Equal(t, 3, e.Get())
	*e.GetMut() = 4
	assert.Equal(t, 4, e.Remove())

	assert.Equal(t, 1, m.Len())
	assert.False(t, m.StartsWith("ab"))
	checkInvariants(t, m)

	assert.PanicsWithValue(t, ErrConcurrentModification, func() {
		e.Get()
	})
}

func TestEntryInvalidation(t *testing.T) {
	t.Run("occupied", func(t *testing.T) {
		m := New[string, int]()
		m.Insert("a", 1)
		e := m.Entry("a").(*OccupiedEntry[string, int])
		m.Insert("b", 2)
		assert.PanicsWithValue(t, ErrConcurrentModification, func() {
			e.Insert(3)
		})
	})
	t.Run("vacant", func(t *testing.T) {
		m := New[string, int]()
		e := m.Entry("abc")
		m.Insert("ab", 1)
		m.Remove("ab")
		assert.PanicsWithValue(t, ErrConcurrentModification, func() {
			e.OrInsert(1)
		})
	})
	t.Run("vacant_used_twice", func(t *testing.T) {
		m := New[string, int]()
		e := m.Entry("a").(*VacantEntry[string, int])
		e.Insert(1)
		assert.PanicsWithValue(t, ErrConcurrentModification, func() {
			e.Insert(2)
		})
	})
	t.Run("value_replacement_keeps_entry", func(t *testing.T) {
		m := New[string, int]()
		m.Insert("a", 1)
		e := m.Entry("a").(*OccupiedEntry[string, int])
		m.Insert("a", 2)
		assert.Equal(t, 2, e.Get())
	})
}

func TestEntryKeyDoesNotAlias(t *testing.T) {
	m := New[[]byte, int]()
	m.Insert([]byte("ab"), 1)

	for _, key := range [][]byte{[]byte("ab"), []byte("cd")} {
		orig := string(key)
		e := m.Entry(key)
		key[0] = 'x'
		assert.Equal(t, []byte(orig), e.Key())

		k := e.Key()
		k[0] = 'y'
		assert.Equal(t, []byte(orig), e.Key())
	}
	assert.Equal(t, 1, m.Len())
}
