package itreap

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every inner node caches the exact element count of its subtree,
//   - priorities of inner nodes do not increase from the root downwards,
//   - no leaf exceeds the block size, and only an empty root leaf may be empty.
//
// Check is intended for tests and debugging; it visits every node.
func (t *ITreap[C]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil treap", ErrInvalidTree)
	}
	if t.root == nil {
		return nil
	}
	if t.root.isLeaf() {
		if t.root.Len() > t.cfg.normalized().BlockSize {
			return fmt.Errorf("%w: root leaf exceeds block size (%d > %d)",
				ErrInvalidTree, t.root.Len(), t.cfg.normalized().BlockSize)
		}
		return nil
	}
	_, err := t.checkNode(t.root, nil)
	return err
}

// checkNode validates subtree n, where parent is the inner node above n or
// nil for the root. It returns the number of elements found in the leaves.
func (t *ITreap[C]) checkNode(n treeNode[C], parent *innerNode[C]) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvalidTree)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[C])
		if len(leaf.items) == 0 {
			return 0, fmt.Errorf("%w: empty leaf below root", ErrInvalidTree)
		}
		if len(leaf.items) > t.cfg.normalized().BlockSize {
			return 0, fmt.Errorf("%w: leaf exceeds block size (%d > %d)",
				ErrInvalidTree, len(leaf.items), t.cfg.normalized().BlockSize)
		}
		return len(leaf.items), nil
	}
	inner := n.(*innerNode[C])
	if parent != nil && inner.priority > parent.priority {
		return 0, fmt.Errorf("%w: priority %x exceeds parent priority %x",
			ErrInvalidTree, inner.priority, parent.priority)
	}
	var total int
	for side, child := range inner.children {
		count, err := t.checkNode(child, inner)
		if err != nil {
			return 0, err
		}
		if count != child.Len() {
			return 0, fmt.Errorf("%w: child %d caches size %d, holds %d elements",
				ErrInvalidTree, side, child.Len(), count)
		}
		total += count
	}
	if total != inner.size {
		return 0, fmt.Errorf("%w: inner node caches size %d, holds %d elements",
			ErrInvalidTree, inner.size, total)
	}
	return total, nil
}
