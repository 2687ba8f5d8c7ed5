package triemap

import "iter"

// StartsWith reports whether at least one key starts with prefix.
func (m *TrieMap[K, V]) StartsWith(prefix K) bool {
	n := m.walk([]byte(prefix))
	// Nodes without value and children are pruned, so any reachable
	// node other than an empty root leads to a value.
	return n != nil && !n.isEmpty()
}

// GetPrefixMatches returns all entries whose key starts with prefix, in key
// order.
func (m *TrieMap[K, V]) GetPrefixMatches(prefix K) []KeyValue[K, V] {
	var res []KeyValue[K, V]
	it := m.PrefixIter(prefix)
	for it.Next() {
		res = append(res, KeyValue[K, V]{Key: it.Key(), Value: it.Value()})
	}
	return res
}

// PrefixAll returns a sequence of the entries whose key starts with prefix.
func (m *TrieMap[K, V]) PrefixAll(prefix K) iter.Seq2[K, V] {
	return seq2(func() *Iterator[K, V] {
		return m.PrefixIter(prefix)
	})
}

// PrefixKeys returns a sequence of the keys starting with prefix.
func (m *TrieMap[K, V]) PrefixKeys(prefix K) iter.Seq[K] {
	return keys(func() *Iterator[K, V] {
		return m.PrefixIter(prefix)
	})
}

// PrefixValues returns a sequence of the values whose key starts with
// prefix.
func (m *TrieMap[K, V]) PrefixValues(prefix K) iter.Seq[V] {
	return values(func() *Iterator[K, V] {
		return m.PrefixIter(prefix)
	})
}

// KeysStartingWith returns the keys starting with prefix.
func (m *TrieMap[K, V]) KeysStartingWith(prefix K) []K {
	var res []K
	it := m.PrefixIter(prefix)
	for it.Next() {
		res = append(res, it.Key())
	}
	return res
}

// RemovePrefixMatches removes every key starting with prefix and returns the
// removed entries in key order. The matching subtree is unlinked from the
// map in one step before it is enumerated.
func (m *TrieMap[K, V]) RemovePrefixMatches(prefix K) []KeyValue[K, V] {
	p := []byte(prefix)
	path := m.walkPath(p)
	if len(path) != len(p)+1 {
		return nil
	}
	var sub *node[V]
	if len(p) == 0 {
		sub = m.root
		m.root = newNode[V](0)
	} else {
		sub = path[len(path)-2].removeChild(p[len(p)-1])
		prune(path[:len(path)-1])
	}
	if sub.isEmpty() {
		return nil
	}
	m.touch()

	var res []KeyValue[K, V]
	it := newIterator[K](nil, sub, p)
	for it.Next() {
		res = append(res, KeyValue[K, V]{Key: it.Key(), Value: it.Value()})
		m.count--
	}
	return res
}

// DrainPrefix returns a sequence that removes each entry starting with
// prefix as it is yielded. Breaking out of the loop leaves the remaining
// matches in the map.
func (m *TrieMap[K, V]) DrainPrefix(prefix K) iter.Seq2[K, V] {
	return seq2(func() *Iterator[K, V] {
		return m.drainPrefixIter([]byte(prefix))
	})
}

// WithPrefixOnly returns a new map holding only the entries whose key
// starts with prefix.
func (m *TrieMap[K, V]) WithPrefixOnly(prefix K) *TrieMap[K, V] {
	res := New[K, V]()
	p := []byte(prefix)
	n := m.walk(p)
	if n == nil || n.isEmpty() {
		return res
	}
	sub := n.clone()
	cur := res.root
	for i, b := range p {
		if i == len(p)-1 {
			sub.label = b
			cur.setChild(sub)
			break
		}
		cur = cur.addChild(b)
	}
	if len(p) == 0 {
		res.root = sub
	}
	res.count = sub.countValues()
	return res
}

// WithoutPrefix returns a copy of the map without the entries whose key
// starts with prefix.
func (m *TrieMap[K, V]) WithoutPrefix(prefix K) *TrieMap[K, V] {
	res := m.Clone()
	res.RemovePrefixMatches(prefix)
	return res
}
