package triemap

type frame[V any] struct {
	n *node[V]
	// next is the index of the next child to descend into; -1 means the
	// node's own value has not been visited yet.
	next int
}

// cursor is the depth-first traversal engine shared by every iterator. It
// visits a node's value before its children and children in ascending label
// order, so value-bearing nodes come out in byte-lexicographic key order.
//
// After next returns, key holds the full key of the yielded node until the
// following call to next.
type cursor[V any] struct {
	stack []frame[V]
	key   []byte
	// trim is the number of key bytes to drop before advancing again.
	trim int

	// drain removes every visited value and prunes emptied nodes in place.
	drain bool
	// above holds the ancestors of the start node, root first, so a
	// draining cursor can prune past its start node. Nil for detached
	// subtrees and for cursors starting at the root.
	above []*node[V]
}

func newCursor[V any](start *node[V], prefix []byte) *cursor[V] {
	c := &cursor[V]{
		key: append([]byte(nil), prefix...),
	}
	if start != nil {
		c.stack = []frame[V]{{n: start, next: -1}}
	}
	return c
}

// next advances to the next value-bearing node and returns its value. A
// draining cursor takes the value out of the node before returning it.
func (c *cursor[V]) next() (*node[V], V, bool) {
	if c.trim > 0 {
		c.key = c.key[:len(c.key)-c.trim]
		c.trim = 0
	}
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.next < 0 {
			top.next = 0
			if top.n.hasValue {
				n := top.n
				if !c.drain {
					return n, n.value, true
				}
				v, _ := n.take()
				c.pruneTop()
				return n, v, true
			}
		}
		if top.next < len(top.n.children) {
			child := top.n.children[top.next]
			top.next++
			c.key = append(c.key, child.label)
			c.stack = append(c.stack, frame[V]{n: child, next: -1})
			continue
		}
		c.stack = c.stack[:len(c.stack)-1]
		if len(c.stack) > 0 {
			c.key = c.key[:len(c.key)-1]
		}
	}
	return nil, *new(V), false
}

// pruneTop unlinks the top node and every stacked ancestor that became
// empty. Key bytes of popped frames are dropped on the next advance.
func (c *cursor[V]) pruneTop() {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		if !top.n.isEmpty() {
			return
		}
		if len(c.stack) == 1 {
			c.stack = c.stack[:0]
			c.pruneAbove(top.n)
			return
		}
		parent := &c.stack[len(c.stack)-2]
		parent.n.removeChildAt(parent.next - 1)
		parent.next--
		c.stack = c.stack[:len(c.stack)-1]
		c.trim++
	}
}

// pruneAbove unlinks an emptied start node from the ancestors recorded in
// above and keeps pruning while they are empty. The root is never removed.
func (c *cursor[V]) pruneAbove(start *node[V]) {
	if len(c.above) == 0 {
		return
	}
	path := append(c.above[:len(c.above):len(c.above)], start)
	prune(path)
	c.above = nil
}
