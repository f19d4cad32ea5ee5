package itreap

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[C any] struct {
	idTable map[treeNode[C]]int
	max     int
}

func newtable[C any]() nodeids[C] {
	return nodeids[C]{
		idTable: make(map[treeNode[C]]int),
		max:     1,
	}
}

func (ids *nodeids[C]) alloc(node treeNode[C]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of an ITreap in Graphviz DOT format
// (for debugging purposes). Inner nodes are labelled with their size and the
// leading hex digits of their priority, leaves with their size and position.
func (t *ITreap[C]) ToDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if t.root != nil {
		ids := newtable[C]()
		var nodelist, edgelist strings.Builder
		t.walk(func(node treeNode[C], pos int, depth int) {
			ID := ids.alloc(node)
			if node.isLeaf() {
				label := fmt.Sprintf("%d @%d", node.Len(), pos)
				fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true, depth))
				return
			}
			inner := node.(*innerNode[C])
			for _, child := range inner.children {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
			label := fmt.Sprintf("%d\\n%04x", inner.size, inner.priority>>48)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(false, depth))
		})
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("itreap DOT: %s", err.Error())
	}
	return err
}

// walk visits all nodes in pre-order, together with the position of their
// first element and their depth.
func (t *ITreap[C]) walk(fn func(node treeNode[C], pos int, depth int)) {
	if t.root == nil {
		return
	}
	type frame struct {
		node       treeNode[C]
		pos, depth int
	}
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.node, f.pos, f.depth)
		if f.node.isLeaf() {
			continue
		}
		inner := f.node.(*innerNode[C])
		mid := f.pos + inner.children[left].Len()
		stack = append(stack, frame{inner.children[right], mid, f.depth + 1})
		stack = append(stack, frame{inner.children[left], f.pos, f.depth + 1})
	}
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
