package itreap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// ITreap is an indexed treap, a sequence of elements of type C.
//
// An ITreap created by
//
//	var t ITreap[int]
//
// is a valid object and behaves like an empty sequence using the default
// configuration.
//
// References to elements handed out by Insert, Push and Ref, or yielded by
// an Iterator, remain valid until the next mutation of the treap.
type ITreap[C any] struct {
	cfg  Config
	root treeNode[C] // nil denotes the empty leaf
}

// New creates an empty indexed treap with the default configuration.
func New[C any]() *ITreap[C] {
	return &ITreap[C]{cfg: DefaultConfig()}
}

// NewWithConfig creates an empty indexed treap with a validated configuration.
func NewWithConfig[C any](cfg Config) (*ITreap[C], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &ITreap[C]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective configuration.
func (t *ITreap[C]) Config() Config {
	return t.cfg.normalized()
}

// Len returns the number of elements. Cost is O(1).
func (t *ITreap[C]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.Len()
}

// IsEmpty reports whether the treap holds no elements.
func (t *ITreap[C]) IsEmpty() bool {
	return t.Len() == 0
}

// At returns the element at position i. Cost is O(log(n/B)).
func (t *ITreap[C]) At(i int) (C, error) {
	ref, err := t.Ref(i)
	if err != nil {
		var zero C
		return zero, err
	}
	return *ref, nil
}

// Ref returns a reference to the element at position i, enabling in-place
// modification. Cost is O(log(n/B)).
func (t *ITreap[C]) Ref(i int) (*C, error) {
	if i < 0 || i >= t.Len() {
		tracer().Errorf("itreap: access to position %d, length is %d", i, t.Len())
		return nil, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfBounds, i, t.Len())
	}
	leaf, offset := locate[C](t.root, i)
	return &leaf.items[offset], nil
}

// Set replaces the element at position i.
func (t *ITreap[C]) Set(i int, element C) error {
	ref, err := t.Ref(i)
	if err != nil {
		return err
	}
	*ref = element
	return nil
}

// Insert inserts an element at position i, shifting subsequent elements to
// the right. Inserting at i == Len() appends. A reference to the inserted
// element is returned.
// Cost is O(log(n/B)+B).
func (t *ITreap[C]) Insert(i int, element C) (*C, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil treap", ErrIllegalArguments)
	}
	if i < 0 || i > t.Len() {
		tracer().Errorf("itreap: insert at position %d, length is %d", i, t.Len())
		return nil, fmt.Errorf("%w: insert position %d, length %d", ErrIndexOutOfBounds, i, t.Len())
	}
	return t.insert(i, element), nil
}

// Push appends an element and returns a reference to it.
// Cost is O(log(n/B)+1).
func (t *ITreap[C]) Push(element C) *C {
	assert(t != nil, "Push called for nil treap")
	return t.insert(t.Len(), element)
}

func (t *ITreap[C]) insert(i int, element C) *C {
	t.cfg = t.cfg.normalized()
	if t.root == nil {
		t.root = &leafNode[C]{items: make([]C, 0, t.cfg.BlockSize)}
	}
	root, ref := t.insertNode(t.root, i, element)
	t.root = root
	return ref
}

// Iter returns an iterator over all elements. Cost is O(n) for a complete
// iteration.
func (t *ITreap[C]) Iter() *Iterator[C] {
	it, err := t.Between(0, t.Len())
	assert(err == nil, "Iter: full range rejected")
	return it
}

// Values returns a sequence of all elements, in order.
//
//	for v := range t.Values() { … }
func (t *ITreap[C]) Values() iter.Seq[C] {
	return func(yield func(C) bool) {
		t.Iter().Seq()(yield)
	}
}

// All returns a sequence of all positions and elements, in order.
func (t *ITreap[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		it := t.Iter()
		for i := 0; it.Next(); i++ {
			if !yield(i, it.Value()) {
				return
			}
		}
	}
}

// Slice copies all elements into a newly allocated slice.
func (t *ITreap[C]) Slice() []C {
	s := make([]C, 0, t.Len())
	for v := range t.Values() {
		s = append(s, v)
	}
	return s
}

// Height returns the height of the tree, where a single leaf has height 1.
// An empty treap has height 1 as well.
func (t *ITreap[C]) Height() int {
	if t == nil || t.root == nil {
		return 1
	}
	return nodeHeight[C](t.root)
}

func nodeHeight[C any](n treeNode[C]) int {
	if n.isLeaf() {
		return 1
	}
	inner := n.(*innerNode[C])
	return 1 + max(nodeHeight[C](inner.children[left]), nodeHeight[C](inner.children[right]))
}
