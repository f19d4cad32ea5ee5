package itreap

const (
	left  = 0
	right = 1
)

// treeNode is either a *leafNode or an *innerNode. The set of variants is
// closed; code switching over node types may rely on that.
type treeNode[C any] interface {
	isLeaf() bool
	Len() int
}

// leafNode holds a contiguous block of elements.
type leafNode[C any] struct {
	// items has at most BlockSize elements. Only the root leaf of an empty
	// treap may be empty.
	items []C
}

func (l *leafNode[C]) isLeaf() bool { return true }
func (l *leafNode[C]) Len() int     { return len(l.items) }

// innerNode is a binary node with a balancing priority and a cached
// element count.
type innerNode[C any] struct {
	priority uint64
	// size == children[left].Len() + children[right].Len()
	size     int
	children [2]treeNode[C]
}

func (n *innerNode[C]) isLeaf() bool { return false }
func (n *innerNode[C]) Len() int     { return n.size }

func makeInner[C any](l, r treeNode[C], priority uint64) *innerNode[C] {
	return &innerNode[C]{
		priority: priority,
		size:     l.Len() + r.Len(),
		children: [2]treeNode[C]{l, r},
	}
}

// other returns the opposite side.
func other(side int) int {
	return 1 - side
}
