package triemap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// FromMap builds a map holding the entries of src.
func FromMap[K ~string, V any](src map[K]V) *TrieMap[K, V] {
	m := New[K, V]()
	ks := maps.Keys(src)
	slices.Sort(ks)
	for _, k := range ks {
		m.Insert(k, src[k])
	}
	return m
}

// FromSeq2 builds a map from a sequence of entries. Later entries overwrite
// earlier ones with the same key.
func FromSeq2[K Key, V any](seq iter.Seq2[K, V]) *TrieMap[K, V] {
	m := New[K, V]()
	m.Extend(seq)
	return m
}

// FromPairs builds a map from a list of entries.
func FromPairs[K Key, V any](pairs ...KeyValue[K, V]) *TrieMap[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// Extend inserts every entry of seq.
func (m *TrieMap[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// ToMap returns the entries of m as a Go map keyed by string.
func (m *TrieMap[K, V]) ToMap() map[string]V {
	res := make(map[string]V, m.count)
	for k, v := range m.All() {
		res[string(k)] = v
	}
	return res
}

// String formats m as {"key": value, ...} in key order.
func (m *TrieMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%q: %v", string(k), v)
	}
	sb.WriteByte('}')
	return sb.String()
}
