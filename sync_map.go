package triemap

import "sync"

// SyncMap is a TrieMap guarded by a read-write mutex. Methods returning
// entries return copies, so results stay valid after the lock is released.
type SyncMap[K Key, V any] struct {
	mutex    sync.RWMutex
	elements *TrieMap[K, V]
}

func NewSyncMap[K Key, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{
		mutex:    sync.RWMutex{},
		elements: New[K, V](),
	}
}

func (m *SyncMap[K, V]) Insert(k K, v V) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.elements.Insert(k, v)
}

func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.elements.Get(k)
}

func (m *SyncMap[K, V]) Remove(k K) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.elements.Remove(k)
}

func (m *SyncMap[K, V]) ContainsKey(k K) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.elements.ContainsKey(k)
}

func (m *SyncMap[K, V]) StartsWith(prefix K) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.elements.StartsWith(prefix)
}

func (m *SyncMap[K, V]) GetPrefixMatches(prefix K) []KeyValue[K, V] {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.elements.GetPrefixMatches(prefix)
}

func (m *SyncMap[K, V]) RemovePrefixMatches(prefix K) []KeyValue[K, V] {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.elements.RemovePrefixMatches(prefix)
}

func (m *SyncMap[K, V]) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.elements.Len()
}

// Update runs f with exclusive access to the underlying map.
func (m *SyncMap[K, V]) Update(f func(*TrieMap[K, V])) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	f(m.elements)
}

// Snapshot returns a copy of the current contents.
func (m *SyncMap[K, V]) Snapshot() *TrieMap[K, V] {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.elements.Clone()
}
