// Package triemap implements an associative container that indexes
// byte-sequence keys in a prefix tree.
//
// Lookups, insertions and removals cost O(len(key)). On top of that the map
// answers prefix-scoped queries (existence, enumeration, bulk removal) and
// combines whole maps with union, intersection and difference. All
// enumeration is in byte-lexicographic key order.
//
// A TrieMap is not safe for concurrent use; wrap it in a SyncMap or guard it
// externally. Structural changes made while an iterator or entry is alive are
// detected and reported as ErrConcurrentModification.
package triemap

// Key is the set of key types a TrieMap accepts.
type Key interface {
	~string | ~[]byte
}

// KeyValue is a key together with its value.
type KeyValue[K Key, V any] struct {
	Key   K
	Value V
}

// TrieMap maps byte-sequence keys to values of type V. The zero value is
// not usable; create maps with New.
type TrieMap[K Key, V any] struct {
	root    *node[V]
	count   int
	version uint64
}

// New returns an empty map.
func New[K Key, V any]() *TrieMap[K, V] {
	return &TrieMap[K, V]{
		root: newNode[V](0),
	}
}

// keyOf converts accumulated key bytes into a fresh K that does not alias b.
func keyOf[K Key](b []byte) K {
	return K(append([]byte(nil), b...))
}

// Len returns the number of keys in the map.
func (m *TrieMap[K, V]) Len() int {
	return m.count
}

// IsEmpty reports whether the map holds no keys.
func (m *TrieMap[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Clear removes all keys.
func (m *TrieMap[K, V]) Clear() {
	m.root = newNode[V](0)
	m.count = 0
	m.touch()
}

// touch records a structural modification.
func (m *TrieMap[K, V]) touch() {
	m.version++
}

// walk follows key from the root and returns the node it ends at, or nil if
// some byte has no matching child.
func (m *TrieMap[K, V]) walk(key []byte) *node[V] {
	n := m.root
	for _, b := range key {
		n = n.child(b)
		if n == nil {
			return nil
		}
	}
	return n
}

// walkPath is walk that also records every node visited, root first. The
// returned path has len(key)+1 elements when the walk succeeds.
func (m *TrieMap[K, V]) walkPath(key []byte) []*node[V] {
	path := make([]*node[V], 1, len(key)+1)
	path[0] = m.root
	n := m.root
	for _, b := range key {
		n = n.child(b)
		if n == nil {
			return path
		}
		path = append(path, n)
	}
	return path
}

// prune removes empty nodes from the end of path upward. path[i+1] must be
// the child of path[i]; path[0] is never removed.
func prune[V any](path []*node[V]) {
	for i := len(path) - 1; i > 0; i-- {
		if !path[i].isEmpty() {
			return
		}
		path[i-1].removeChild(path[i].label)
	}
}

// Insert stores value under key. It returns the previous value and true if
// key was already present.
func (m *TrieMap[K, V]) Insert(key K, value V) (V, bool) {
	n := m.root
	for _, b := range []byte(key) {
		if c := n.child(b); c != nil {
			n = c
			continue
		}
		n = n.addChild(b)
	}
	old, ok := n.take()
	n.set(value)
	if !ok {
		m.count++
		m.touch()
	}
	return old, ok
}

// Get returns the value stored under key.
func (m *TrieMap[K, V]) Get(key K) (V, bool) {
	n := m.walk([]byte(key))
	if n == nil || !n.hasValue {
		return *new(V), false
	}
	return n.value, true
}

// GetMut returns a pointer to the value stored under key, or nil. The
// pointer must not be used once key is removed or the map is cleared;
// writes through it would be lost.
func (m *TrieMap[K, V]) GetMut(key K) *V {
	n := m.walk([]byte(key))
	if n == nil || !n.hasValue {
		return nil
	}
	return &n.value
}

// ContainsKey reports whether key is present.
func (m *TrieMap[K, V]) ContainsKey(key K) bool {
	n := m.walk([]byte(key))
	return n != nil && n.hasValue
}

// Remove deletes key and returns its value. Nodes left without value and
// children are pruned.
func (m *TrieMap[K, V]) Remove(key K) (V, bool) {
	k := []byte(key)
	path := m.walkPath(k)
	if len(path) != len(k)+1 {
		return *new(V), false
	}
	v, ok := path[len(path)-1].take()
	if !ok {
		return v, false
	}
	prune(path)
	m.count--
	m.touch()
	return v, true
}
