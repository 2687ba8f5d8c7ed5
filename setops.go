package triemap

// The set operations below walk both tries side by side and build the result
// node by node. Neither input is modified; values are copied by assignment.

// Union returns a map holding every key of m and other. For keys present
// in both, the value from other wins.
func (m *TrieMap[K, V]) Union(other *TrieMap[K, V]) *TrieMap[K, V] {
	res := &TrieMap[K, V]{}
	res.root = union(m.root, other.root, &res.count)
	return res
}

// Intersect returns a map holding the keys present in both m and other,
// with the values from m.
func (m *TrieMap[K, V]) Intersect(other *TrieMap[K, V]) *TrieMap[K, V] {
	res := &TrieMap[K, V]{}
	res.root = intersect(m.root, other.root, &res.count)
	if res.root == nil {
		res.root = newNode[V](0)
	}
	return res
}

// Difference returns a map holding the entries of m whose key is absent
// from other.
func (m *TrieMap[K, V]) Difference(other *TrieMap[K, V]) *TrieMap[K, V] {
	res := &TrieMap[K, V]{}
	res.root = difference(m.root, other.root, &res.count)
	if res.root == nil {
		res.root = newNode[V](0)
	}
	return res
}

// SymmetricDifference returns a map holding the entries whose key is in
// exactly one of m and other.
func (m *TrieMap[K, V]) SymmetricDifference(other *TrieMap[K, V]) *TrieMap[K, V] {
	res := &TrieMap[K, V]{}
	res.root = symmetricDifference(m.root, other.root, &res.count)
	if res.root == nil {
		res.root = newNode[V](0)
	}
	return res
}

// IsSubsetOf reports whether every key of m is also a key of other.
func (m *TrieMap[K, V]) IsSubsetOf(other *TrieMap[K, V]) bool {
	return subset(m.root, other.root)
}

// IsProperSubsetOf reports whether m is a subset of other and other has at
// least one key m lacks.
func (m *TrieMap[K, V]) IsProperSubsetOf(other *TrieMap[K, V]) bool {
	return m.count < other.count && m.IsSubsetOf(other)
}

// Merge inserts every entry of other into m, overwriting values of keys
// present in both.
func (m *TrieMap[K, V]) Merge(other *TrieMap[K, V]) {
	for k, v := range other.All() {
		m.Insert(k, v)
	}
}

// MergeWith inserts every entry of other into m. For keys present in both,
// the stored value becomes f(key, mine, theirs).
func (m *TrieMap[K, V]) MergeWith(other *TrieMap[K, V], f func(key K, mine, theirs V) V) {
	for k, v := range other.All() {
		if p := m.GetMut(k); p != nil {
			*p = f(k, *p, v)
			continue
		}
		m.Insert(k, v)
	}
}

func cloneCounting[V any](n *node[V], count *int) *node[V] {
	c := n.clone()
	*count += c.countValues()
	return c
}

func union[V any](a, b *node[V], count *int) *node[V] {
	if a == nil {
		return cloneCounting(b, count)
	}
	if b == nil {
		return cloneCounting(a, count)
	}
	r := newNode[V](a.label)
	switch {
	case b.hasValue:
		r.set(b.value)
	case a.hasValue:
		r.set(a.value)
	}
	if r.hasValue {
		*count++
	}
	i, j := 0, 0
	for i < len(a.children) || j < len(b.children) {
		var ca, cb *node[V]
		switch {
		case j == len(b.children):
			ca = a.children[i]
			i++
		case i == len(a.children):
			cb = b.children[j]
			j++
		case a.children[i].label < b.children[j].label:
			ca = a.children[i]
			i++
		case a.children[i].label > b.children[j].label:
			cb = b.children[j]
			j++
		default:
			ca, cb = a.children[i], b.children[j]
			i++
			j++
		}
		r.setChild(union(ca, cb, count))
	}
	return r
}

// intersect returns nil when the intersection below a and b is empty.
func intersect[V any](a, b *node[V], count *int) *node[V] {
	r := newNode[V](a.label)
	if a.hasValue && b.hasValue {
		r.set(a.value)
		*count++
	}
	small, large := a, b
	if len(b.children) < len(a.children) {
		small, large = b, a
	}
	for _, c := range small.children {
		o := large.child(c.label)
		if o == nil {
			continue
		}
		ca, cb := c, o
		if small == b {
			ca, cb = o, c
		}
		if x := intersect(ca, cb, count); x != nil {
			r.setChild(x)
		}
	}
	if r.isEmpty() {
		return nil
	}
	return r
}

// difference returns nil when nothing of a survives.
func difference[V any](a, b *node[V], count *int) *node[V] {
	if b == nil {
		return cloneCounting(a, count)
	}
	r := newNode[V](a.label)
	if a.hasValue && !b.hasValue {
		r.set(a.value)
		*count++
	}
	for _, c := range a.children {
		if x := difference(c, b.child(c.label), count); x != nil {
			r.setChild(x)
		}
	}
	if r.isEmpty() {
		return nil
	}
	return r
}

func symmetricDifference[V any](a, b *node[V], count *int) *node[V] {
	if a == nil {
		return cloneCounting(b, count)
	}
	if b == nil {
		return cloneCounting(a, count)
	}
	r := newNode[V](a.label)
	switch {
	case a.hasValue && !b.hasValue:
		r.set(a.value)
		*count++
	case b.hasValue && !a.hasValue:
		r.set(b.value)
		*count++
	}
	for _, c := range a.children {
		if x := symmetricDifference(c, b.child(c.label), count); x != nil {
			r.setChild(x)
		}
	}
	for _, c := range b.children {
		if a.has(c.label) {
			continue
		}
		r.setChild(cloneCounting(c, count))
	}
	if r.isEmpty() {
		return nil
	}
	return r
}

func subset[V any](a, b *node[V]) bool {
	if a.hasValue && !b.hasValue {
		return false
	}
	for _, c := range a.children {
		o := b.child(c.label)
		if o == nil || !subset(c, o) {
			return false
		}
	}
	return true
}
