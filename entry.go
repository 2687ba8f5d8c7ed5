package triemap

// Entry is the result of a single walk to a key, used to inspect or modify
// the key's slot without walking again. It is either an *OccupiedEntry or a
// *VacantEntry.
//
// An entry is invalidated by any structural change to the map made through
// another path; using it afterwards panics with ErrConcurrentModification.
type Entry[K Key, V any] interface {
	// Key returns the key the entry was created for.
	Key() K
	// OrInsert returns the existing value, or inserts v.
	OrInsert(v V) *V
	// OrInsertWith is OrInsert with a lazily computed default. f is not
	// called when the key is present.
	OrInsertWith(f func() V) *V
	// OrDefault is OrInsert with the zero value.
	OrDefault() *V
	// AndModify calls f on the existing value, if any, and returns the
	// entry.
	AndModify(f func(*V)) Entry[K, V]

	entry()
}

// Entry walks to key once and returns its slot.
func (m *TrieMap[K, V]) Entry(key K) Entry[K, V] {
	k := []byte(key)
	path := m.walkPath(k)
	if len(path) == len(k)+1 && path[len(path)-1].hasValue {
		return &OccupiedEntry[K, V]{
			m:       m,
			key:     keyOf[K](k),
			path:    path,
			version: m.version,
		}
	}
	return &VacantEntry[K, V]{
		m:       m,
		key:     keyOf[K](k),
		at:      path[len(path)-1],
		suffix:  append([]byte(nil), k[len(path)-1:]...),
		version: m.version,
	}
}

// OccupiedEntry is the slot of a key that holds a value.
type OccupiedEntry[K Key, V any] struct {
	m       *TrieMap[K, V]
	key     K
	path    []*node[V]
	version uint64
	removed bool
}

func (e *OccupiedEntry[K, V]) entry() {}

func (e *OccupiedEntry[K, V]) valid() {
	if e.removed || e.m.version != e.version {
		panic(ErrConcurrentModification)
	}
}

func (e *OccupiedEntry[K, V]) terminal() *node[V] {
	return e.path[len(e.path)-1]
}

func (e *OccupiedEntry[K, V]) Key() K {
	return keyOf[K]([]byte(e.key))
}

// Get returns the stored value.
func (e *OccupiedEntry[K, V]) Get() V {
	e.valid()
	return e.terminal().value
}

// GetMut returns a pointer to the stored value.
func (e *OccupiedEntry[K, V]) GetMut() *V {
	e.valid()
	return &e.terminal().value
}

// Insert replaces the stored value and returns the old one.
func (e *OccupiedEntry[K, V]) Insert(v V) V {
	e.valid()
	n := e.terminal()
	old := n.value
	n.value = v
	return old
}

// Remove deletes the key and returns its value. The entry must not be used
// afterwards.
func (e *OccupiedEntry[K, V]) Remove() V {
	e.valid()
	v, _ := e.terminal().take()
	prune(e.path)
	e.m.count--
	e.m.touch()
	e.removed = true
	return v
}

func (e *OccupiedEntry[K, V]) OrInsert(V) *V {
	return e.GetMut()
}

func (e *OccupiedEntry[K, V]) OrInsertWith(func() V) *V {
	return e.GetMut()
}

func (e *OccupiedEntry[K, V]) OrDefault() *V {
	return e.GetMut()
}

func (e *OccupiedEntry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	f(e.GetMut())
	return e
}

// VacantEntry is the slot of an absent key. at is the deepest existing node
// on the key's path and suffix the bytes still missing below it.
type VacantEntry[K Key, V any] struct {
	m       *TrieMap[K, V]
	key     K
	at      *node[V]
	suffix  []byte
	version uint64
	used    bool
}

func (e *VacantEntry[K, V]) entry() {}

func (e *VacantEntry[K, V]) Key() K {
	return keyOf[K]([]byte(e.key))
}

// Insert stores v under the entry's key and returns a pointer to it. The
// missing nodes are created in one pass starting at the deepest existing
// ancestor.
func (e *VacantEntry[K, V]) Insert(v V) *V {
	if e.used || e.m.version != e.version {
		panic(ErrConcurrentModification)
	}
	n := e.at
	for _, b := range e.suffix {
		n = n.addChild(b)
	}
	n.set(v)
	e.m.count++
	e.m.touch()
	e.used = true
	return &n.value
}

func (e *VacantEntry[K, V]) OrInsert(v V) *V {
	return e.Insert(v)
}

func (e *VacantEntry[K, V]) OrInsertWith(f func() V) *V {
	return e.Insert(f())
}

func (e *VacantEntry[K, V]) OrDefault() *V {
	return e.Insert(*new(V))
}

func (e *VacantEntry[K, V]) AndModify(func(*V)) Entry[K, V] {
	return e
}
