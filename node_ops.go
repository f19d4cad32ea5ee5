package itreap

// locate descends from n to the leaf holding position index and returns
// the leaf together with the leaf-local offset.
//
// The caller guarantees 0 <= index < n.Len().
func locate[C any](n treeNode[C], index int) (*leafNode[C], int) {
	for {
		assert(n != nil, "locate called with nil node")
		if n.isLeaf() {
			leaf := n.(*leafNode[C])
			assert(index < len(leaf.items), "locate index routing exceeded leaf size")
			return leaf, index
		}
		inner := n.(*innerNode[C])
		leftSize := inner.children[left].Len()
		if index < leftSize {
			n = inner.children[left]
		} else {
			n = inner.children[right]
			index -= leftSize
		}
	}
}

// insertNode inserts item at position index of subtree n and returns the
// new root of the subtree, which will differ from n whenever n had to be
// divided or rotated. ref points to the inserted element.
//
// The caller guarantees 0 <= index <= n.Len().
func (t *ITreap[C]) insertNode(n treeNode[C], index int, item C) (root treeNode[C], ref *C) {
	assert(n != nil, "insertNode called with nil node")
	if n.isLeaf() && n.Len() >= t.cfg.BlockSize {
		n = t.divide(n.(*leafNode[C]))
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[C])
		leaf.items = append(leaf.items, item)
		copy(leaf.items[index+1:], leaf.items[index:])
		leaf.items[index] = item
		return leaf, &leaf.items[index]
	}
	inner := n.(*innerNode[C])
	inner.size++
	side, offset := left, index
	if leftSize := inner.children[left].Len(); index > leftSize {
		side, offset = right, index-leftSize
	}
	child, ref := t.insertNode(inner.children[side], offset, item)
	inner.children[side] = child
	// Leaf children carry no priority and never take part in rotations.
	if child.isLeaf() {
		return inner, ref
	}
	if child.(*innerNode[C]).priority > inner.priority {
		return t.rotate(inner, side), ref
	}
	return inner, ref
}

// divide promotes a full leaf to an inner node with two leaf children,
// holding the first and the second half of the block. The inner node gets a
// fresh random priority.
func (t *ITreap[C]) divide(leaf *leafNode[C]) *innerNode[C] {
	size := len(leaf.items)
	mid := size / 2
	lblock := make([]C, mid, t.cfg.BlockSize)
	copy(lblock, leaf.items[:mid])
	rblock := make([]C, size-mid, t.cfg.BlockSize)
	copy(rblock, leaf.items[mid:])
	inner := makeInner[C](&leafNode[C]{items: lblock}, &leafNode[C]{items: rblock}, t.cfg.priority())
	tracer().Debugf("itreap: divided leaf of size %d, priority = %x", size, inner.priority)
	return inner
}

// rotate promotes the child of n on the given side to take the place of n.
// n becomes the promoted node's child on the opposite side and inherits the
// promoted node's former child on that side.
//
// Only inner nodes may be promoted.
//
//	      n                  c
//	    /   \              /   \
//	   c     r    ==>     a     n
//	  / \                      / \
//	 a   b                    b   r
func (t *ITreap[C]) rotate(n *innerNode[C], side int) *innerNode[C] {
	c, ok := n.children[side].(*innerNode[C])
	assert(ok, "rotate may only promote an inner node")
	opp := other(side)
	n.children[side] = c.children[opp]
	n.size = n.children[left].Len() + n.children[right].Len()
	c.children[opp] = n
	c.size = c.children[left].Len() + c.children[right].Len()
	return c
}
