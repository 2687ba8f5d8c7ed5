package triemap

import "iter"

// Iterator walks the entries of a map in byte-lexicographic key order.
//
//	it := m.Iter()
//	for it.Next() {
//		fmt.Println(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// A structural change to the map that the iterator did not make itself stops
// the iterator; Err then returns ErrConcurrentModification.
type Iterator[K Key, V any] struct {
	m       *TrieMap[K, V]
	c       *cursor[V]
	version uint64
	drain   bool

	n     *node[V]
	value V
	err   error
}

// newIterator starts an iterator at start whose key is prefix. m is nil for
// iterators over subtrees detached from any map.
func newIterator[K Key, V any](m *TrieMap[K, V], start *node[V], prefix []byte) *Iterator[K, V] {
	it := &Iterator[K, V]{
		m: m,
		c: newCursor(start, prefix),
	}
	if m != nil {
		it.version = m.version
	}
	return it
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator[K, V]) Next() bool {
	it.n = nil
	it.value = *new(V)
	if it.err != nil {
		return false
	}
	if it.m != nil && it.m.version != it.version {
		it.err = ErrConcurrentModification
		return false
	}
	n, v, ok := it.c.next()
	if !ok {
		return false
	}
	it.n, it.value = n, v
	if it.drain && it.m != nil {
		it.m.count--
		it.m.touch()
		it.version = it.m.version
	}
	return true
}

// Key returns the key of the current entry. The result never aliases the
// map's internal state.
func (it *Iterator[K, V]) Key() K {
	return keyOf[K](it.c.key)
}

// Value returns the value of the current entry.
func (it *Iterator[K, V]) Value() V {
	return it.value
}

// ValuePtr returns a pointer to the current value. For borrowing iterators
// it points into the map; for draining iterators it points to the removed
// copy.
func (it *Iterator[K, V]) ValuePtr() *V {
	if it.n == nil {
		return nil
	}
	if it.drain {
		return &it.value
	}
	return &it.n.value
}

// Err returns ErrConcurrentModification if the iterator was invalidated.
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// Iter returns an iterator over all entries.
func (m *TrieMap[K, V]) Iter() *Iterator[K, V] {
	return newIterator(m, m.root, nil)
}

// PrefixIter returns an iterator over the entries whose key starts with
// prefix.
func (m *TrieMap[K, V]) PrefixIter(prefix K) *Iterator[K, V] {
	p := []byte(prefix)
	return newIterator(m, m.walk(p), p)
}

// DrainIter returns an iterator that removes every entry it yields. Entries
// not yet yielded stay in the map.
func (m *TrieMap[K, V]) DrainIter() *Iterator[K, V] {
	it := newIterator(m, m.root, nil)
	it.drain = true
	it.c.drain = true
	return it
}

func (m *TrieMap[K, V]) drainPrefixIter(prefix []byte) *Iterator[K, V] {
	path := m.walkPath(prefix)
	var start *node[V]
	if len(path) == len(prefix)+1 {
		start = path[len(path)-1]
	}
	it := newIterator(m, start, prefix)
	it.drain = true
	it.c.drain = true
	if start != nil {
		it.c.above = path[:len(path)-1]
	}
	return it
}

// check panics if a range loop over it was invalidated.
func check[K Key, V any](it *Iterator[K, V]) {
	if err := it.Err(); err != nil {
		panic(err)
	}
}

func seq2[K Key, V any](newIt func() *Iterator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := newIt()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
		check(it)
	}
}

func keys[K Key, V any](newIt func() *Iterator[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		it := newIt()
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
		check(it)
	}
}

func values[K Key, V any](newIt func() *Iterator[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		it := newIt()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		check(it)
	}
}

// All returns a sequence of all entries. Ranging over it panics with
// ErrConcurrentModification if the loop body inserts a new key or removes
// one; replacing values of existing keys is fine.
func (m *TrieMap[K, V]) All() iter.Seq2[K, V] {
	return seq2(m.Iter)
}

// Keys returns a sequence of all keys.
func (m *TrieMap[K, V]) Keys() iter.Seq[K] {
	return keys(m.Iter)
}

// Values returns a sequence of all values in key order.
func (m *TrieMap[K, V]) Values() iter.Seq[V] {
	return values(m.Iter)
}

// AllMut returns a sequence of keys and pointers to the stored values.
func (m *TrieMap[K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(it.Key(), it.ValuePtr()) {
				return
			}
		}
		check(it)
	}
}

// ValuesMut returns a sequence of pointers to the stored values.
func (m *TrieMap[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(it.ValuePtr()) {
				return
			}
		}
		check(it)
	}
}

// Drain returns a sequence that removes each entry as it is yielded.
// Breaking out of the loop leaves the remaining entries in the map.
func (m *TrieMap[K, V]) Drain() iter.Seq2[K, V] {
	return seq2(m.DrainIter)
}

// IntoIter empties the map and returns a single-use sequence over the
// entries it held.
func (m *TrieMap[K, V]) IntoIter() iter.Seq2[K, V] {
	root := m.root
	m.root = newNode[V](0)
	m.count = 0
	m.touch()
	return func(yield func(K, V) bool) {
		if root == nil {
			return
		}
		it := newIterator[K](nil, root, nil)
		root = nil
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// IntoKeys is IntoIter yielding only keys.
func (m *TrieMap[K, V]) IntoKeys() iter.Seq[K] {
	all := m.IntoIter()
	return func(yield func(K) bool) {
		for k := range all {
			if !yield(k) {
				return
			}
		}
	}
}

// IntoValues is IntoIter yielding only values.
func (m *TrieMap[K, V]) IntoValues() iter.Seq[V] {
	all := m.IntoIter()
	return func(yield func(V) bool) {
		for _, v := range all {
			if !yield(v) {
				return
			}
		}
	}
}
