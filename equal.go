package triemap

import (
	"github.com/mitchellh/copystructure"
	"github.com/mitchellh/hashstructure/v2"
)

// Equal reports whether a and b hold the same keys with equal values.
func Equal[K Key, V comparable](a, b *TrieMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a custom value comparison.
func EqualFunc[K Key, V1, V2 any](a *TrieMap[K, V1], b *TrieMap[K, V2], eq func(V1, V2) bool) bool {
	if a.count != b.count {
		return false
	}
	return equalNodes(a.root, b.root, eq)
}

func equalNodes[V1, V2 any](a *node[V1], b *node[V2], eq func(V1, V2) bool) bool {
	if a.hasValue != b.hasValue || a.present != b.present {
		return false
	}
	if a.hasValue && !eq(a.value, b.value) {
		return false
	}
	for i := range a.children {
		if !equalNodes(a.children[i], b.children[i], eq) {
			return false
		}
	}
	return true
}

// Clone returns a copy of m with its own nodes. Values are copied by
// assignment; see CloneDeep for values holding references.
func (m *TrieMap[K, V]) Clone() *TrieMap[K, V] {
	return &TrieMap[K, V]{
		root:  m.root.clone(),
		count: m.count,
	}
}

// CloneDeep returns a copy of m whose values are deep copies.
func (m *TrieMap[K, V]) CloneDeep() (*TrieMap[K, V], error) {
	res := m.Clone()
	for p := range res.ValuesMut() {
		c, err := copystructure.Copy(*p)
		if err != nil {
			return nil, err
		}
		if c != nil {
			*p = c.(V)
		}
	}
	return res, nil
}

type hashEntry[V any] struct {
	Key   []byte
	Value V
}

// Hash returns a hash of the entries of m. Maps that are Equal hash alike.
// Values are hashed with hashstructure, so unexported fields are ignored.
func (m *TrieMap[K, V]) Hash() (uint64, error) {
	entries := make([]hashEntry[V], 0, m.count)
	it := m.Iter()
	for it.Next() {
		entries = append(entries, hashEntry[V]{
			Key:   []byte(it.Key()),
			Value: it.Value(),
		})
	}
	return hashstructure.Hash(entries, hashstructure.FormatV2, nil)
}
