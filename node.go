package triemap

import "math/bits"

// node is one position in the key space. Children are kept in a dense
// slice sorted by edge label; the presence bitmap maps a label to its
// slice index by popcount rank.
type node[V any] struct {
	label    byte
	hasValue bool
	value    V
	present  [4]uint64
	children []*node[V]
}

func newNode[V any](label byte) *node[V] {
	return &node[V]{
		label: label,
	}
}

func (n *node[V]) has(b byte) bool {
	return n.present[b>>6]&(1<<(b&63)) != 0
}

// rank returns the number of children with a label smaller than b.
func (n *node[V]) rank(b byte) int {
	word := int(b >> 6)
	r := 0
	for i := 0; i < word; i++ {
		r += bits.OnesCount64(n.present[i])
	}
	mask := uint64(1)<<(b&63) - 1
	return r + bits.OnesCount64(n.present[word]&mask)
}

func (n *node[V]) child(b byte) *node[V] {
	if !n.has(b) {
		return nil
	}
	return n.children[n.rank(b)]
}

// addChild returns the child for b, creating it if necessary.
func (n *node[V]) addChild(b byte) *node[V] {
	i := n.rank(b)
	if n.has(b) {
		return n.children[i]
	}
	c := newNode[V](b)
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	n.present[b>>6] |= 1 << (b & 63)
	return c
}

// setChild installs c under its label, replacing any existing child.
func (n *node[V]) setChild(c *node[V]) {
	i := n.rank(c.label)
	if n.has(c.label) {
		n.children[i] = c
		return
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	n.present[c.label>>6] |= 1 << (c.label & 63)
}

func (n *node[V]) removeChild(b byte) *node[V] {
	if !n.has(b) {
		return nil
	}
	return n.removeChildAt(n.rank(b))
}

func (n *node[V]) removeChildAt(i int) *node[V] {
	c := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	if len(n.children) == 0 {
		n.children = nil
	}
	n.present[c.label>>6] &^= 1 << (c.label & 63)
	return c
}

// take clears and returns the stored value.
func (n *node[V]) take() (V, bool) {
	if !n.hasValue {
		return *new(V), false
	}
	v := n.value
	n.value = *new(V)
	n.hasValue = false
	return v, true
}

func (n *node[V]) set(v V) {
	n.value = v
	n.hasValue = true
}

func (n *node[V]) isEmpty() bool {
	return !n.hasValue && len(n.children) == 0
}

// countValues returns the number of value-bearing nodes in the subtree.
func (n *node[V]) countValues() int {
	c := 0
	stack := []*node[V]{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x.hasValue {
			c++
		}
		stack = append(stack, x.children...)
	}
	return c
}

// clone copies the subtree; values are copied by assignment.
func (n *node[V]) clone() *node[V] {
	c := &node[V]{
		label:    n.label,
		hasValue: n.hasValue,
		value:    n.value,
		present:  n.present,
	}
	if len(n.children) > 0 {
		c.children = make([]*node[V], len(n.children))
		for i, child := range n.children {
			c.children[i] = child.clone()
		}
	}
	return c
}
