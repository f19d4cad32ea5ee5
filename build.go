package itreap

import (
	"iter"
	"slices"
)

// BuildFrom creates an indexed treap from a finite sequence, using the
// default configuration. The elements of the treap will appear in the order
// of seq.
//
// This will always create a perfectly balanced tree and is much cheaper than
// pushing the elements one by one.
// Cost is O(n).
func BuildFrom[C any](seq iter.Seq[C]) *ITreap[C] {
	t, err := BuildFromWithConfig(DefaultConfig(), seq)
	assert(err == nil, "BuildFrom: default configuration rejected")
	return t
}

// FromSlice creates an indexed treap holding a copy of items.
func FromSlice[C any](items []C) *ITreap[C] {
	return BuildFrom(slices.Values(items))
}

// BuildFromWithConfig creates an indexed treap from a finite sequence, using
// a validated configuration.
//
// seq is consumed in chunks of BlockSize/2 elements, each becoming a leaf.
// Whenever the two topmost subtrees on a work stack hold the same number of
// elements, they are joined under a common parent. The remaining subtrees
// of decreasing size are folded from right to left. Priorities are assigned
// in a final pass.
func BuildFromWithConfig[C any](cfg Config, seq iter.Seq[C]) (*ITreap[C], error) {
	t, err := NewWithConfig[C](cfg)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return t, nil
	}
	chunkSize := t.cfg.BlockSize / 2
	var stack []treeNode[C]
	var leafCount int
	push := func(block []C) {
		stack = append(stack, &leafNode[C]{items: block})
		leafCount++
		for l := len(stack); l >= 2 && stack[l-1].Len() == stack[l-2].Len(); l = len(stack) {
			merged := makeInner[C](stack[l-2], stack[l-1], 0)
			stack = append(stack[:l-2], merged)
		}
	}
	block := make([]C, 0, t.cfg.BlockSize)
	for element := range seq {
		block = append(block, element)
		if len(block) == chunkSize {
			push(block)
			block = make([]C, 0, t.cfg.BlockSize)
		}
	}
	if len(block) > 0 {
		push(block)
	}
	if len(stack) == 0 {
		return t, nil
	}
	root := stack[len(stack)-1]
	for i := len(stack) - 2; i >= 0; i-- {
		root = makeInner[C](stack[i], root, 0)
	}
	t.root = root
	t.assignPriorities(leafCount - 1)
	tracer().Debugf("itreap: built treap of %d elements in %d leaves, height %d",
		t.Len(), leafCount, t.Height())
	return t, nil
}

// assignPriorities visits the inner nodes breadth-first and hands out
// innerCount random priorities in descending order. Parents are visited
// before their children, thus the heap invariant holds without any rotation.
func (t *ITreap[C]) assignPriorities(innerCount int) {
	if innerCount <= 0 {
		return
	}
	priorities := make([]uint64, innerCount)
	for i := range priorities {
		priorities[i] = t.cfg.priority()
	}
	slices.Sort(priorities)
	queue := []treeNode[C]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.isLeaf() {
			continue
		}
		inner := n.(*innerNode[C])
		assert(len(priorities) > 0, "assignPriorities: inner node count exceeds leaf count - 1")
		inner.priority = priorities[len(priorities)-1]
		priorities = priorities[:len(priorities)-1]
		queue = append(queue, inner.children[left], inner.children[right])
	}
	assert(len(priorities) == 0, "assignPriorities: priorities left over")
}
