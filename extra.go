package triemap

// TryInsert stores v under key unless key is present. It returns a pointer
// to the stored value and whether v was inserted.
func (m *TrieMap[K, V]) TryInsert(key K, v V) (*V, bool) {
	switch e := m.Entry(key).(type) {
	case *VacantEntry[K, V]:
		return e.Insert(v), true
	case *OccupiedEntry[K, V]:
		return e.GetMut(), false
	}
	panic("unreachable")
}

// GetKeyValue returns the stored entry for key.
func (m *TrieMap[K, V]) GetKeyValue(key K) (KeyValue[K, V], bool) {
	v, ok := m.Get(key)
	if !ok {
		return KeyValue[K, V]{}, false
	}
	return KeyValue[K, V]{Key: keyOf[K]([]byte(key)), Value: v}, true
}

// GetOrInsertWith returns a pointer to the value under key, inserting f()
// first if key is absent.
func (m *TrieMap[K, V]) GetOrInsertWith(key K, f func() V) *V {
	return m.Entry(key).OrInsertWith(f)
}

// Update calls f on the value under key and reports whether key was
// present.
func (m *TrieMap[K, V]) Update(key K, f func(*V)) bool {
	p := m.GetMut(key)
	if p == nil {
		return false
	}
	f(p)
	return true
}

// UpdateOrInsert calls update on the value under key, or stores insert() if
// key is absent. It returns a pointer to the stored value.
func (m *TrieMap[K, V]) UpdateOrInsert(key K, update func(*V), insert func() V) *V {
	return m.Entry(key).AndModify(update).OrInsertWith(insert)
}

// Retain removes every entry for which keep returns false. keep may modify
// the value through the pointer.
func (m *TrieMap[K, V]) Retain(keep func(key K, v *V) bool) {
	var drop []K
	it := m.Iter()
	for it.Next() {
		k := it.Key()
		if !keep(k, it.ValuePtr()) {
			drop = append(drop, k)
		}
	}
	for _, k := range drop {
		m.Remove(k)
	}
}

// Inserted returns a copy of m with key set to v.
func (m *TrieMap[K, V]) Inserted(key K, v V) *TrieMap[K, V] {
	res := m.Clone()
	res.Insert(key, v)
	return res
}

// Removed returns a copy of m without key.
func (m *TrieMap[K, V]) Removed(key K) *TrieMap[K, V] {
	res := m.Clone()
	res.Remove(key)
	return res
}
