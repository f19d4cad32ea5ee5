package itreap

import (
	"fmt"
	"iter"
)

// Iterator walks the elements of a position range in ascending order.
//
// Iterators are lazy, forward-only and cannot be restarted. Traversal uses
// an explicit stack, so its depth is bounded by the tree height and does not
// depend on recursion. An iterator is invalidated by any mutation of the
// treap it has been created from.
//
// Usage:
//
//	it, err := t.Between(10, 20)
//	…
//	for it.Next() {
//	    v := it.Value()
//	}
type Iterator[C any] struct {
	from, to int       // selected range
	stack    []span[C] // pending subtrees, top is processed next
	block    []C       // remaining selected part of current leaf
	cur      *C
}

// span is a subtree together with the range of positions it covers.
type span[C any] struct {
	node       treeNode[C]
	start, end int
}

// Between returns an iterator over the elements at positions [from, to).
// An empty range results in an empty iteration.
// Cost is O(log(n/B)+k), where k = to-from.
func (t *ITreap[C]) Between(from, to int) (*Iterator[C], error) {
	if from < 0 || to > t.Len() || from > to {
		tracer().Errorf("itreap: illegal range [%d,%d), length is %d", from, to, t.Len())
		return nil, fmt.Errorf("%w: range [%d,%d), length %d", ErrIllegalArguments, from, to, t.Len())
	}
	it := &Iterator[C]{from: from, to: to}
	if from < to {
		it.stack = append(it.stack, span[C]{node: t.root, start: 0, end: t.Len()})
	}
	return it, nil
}

// Next advances the iterator to the next element. It returns false if the
// range is exhausted.
func (it *Iterator[C]) Next() bool {
	if it == nil {
		return false
	}
	for len(it.block) == 0 {
		if len(it.stack) == 0 {
			it.cur = nil
			return false
		}
		it.descend()
	}
	it.cur = &it.block[0]
	it.block = it.block[1:]
	return true
}

// descend pops the top of the stack. Inner nodes push their children which
// intersect the selected range, right before left, so that the left child
// is processed first. Leaves expose their selected part.
func (it *Iterator[C]) descend() {
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if top.node.isLeaf() {
		leaf := top.node.(*leafNode[C])
		lo := max(it.from, top.start) - top.start
		hi := min(it.to, top.end) - top.start
		it.block = leaf.items[lo:hi]
		return
	}
	inner := top.node.(*innerNode[C])
	mid := top.start + inner.children[left].Len()
	if mid < it.to && top.end > it.from && mid < top.end {
		it.stack = append(it.stack, span[C]{node: inner.children[right], start: mid, end: top.end})
	}
	if top.start < it.to && mid > it.from && top.start < mid {
		it.stack = append(it.stack, span[C]{node: inner.children[left], start: top.start, end: mid})
	}
}

// Value returns the current element. It must not be called before Next has
// returned true.
func (it *Iterator[C]) Value() C {
	assert(it != nil && it.cur != nil, "Iterator.Value called without current element")
	return *it.cur
}

// Ref returns a reference to the current element.
func (it *Iterator[C]) Ref() *C {
	assert(it != nil && it.cur != nil, "Iterator.Ref called without current element")
	return it.cur
}

// Seq returns a sequence of the remaining elements. Ranging over it
// consumes the iterator.
func (it *Iterator[C]) Seq() iter.Seq[C] {
	return func(yield func(C) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
