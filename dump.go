package itreap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// dumpPalette colors the parts of a tree outline.
type dumpPalette struct {
	inner, leaf, violation *color.Color
}

func makeDumpPalette(colored bool) dumpPalette {
	p := dumpPalette{
		inner:     color.New(color.FgBlue),
		leaf:      color.New(color.FgGreen),
		violation: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.inner, p.leaf, p.violation} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Dump writes an indented outline of the tree to w, one node per line.
// Inner nodes show their size and priority, leaves their size and the
// position of their first element. Inner nodes which outrank their parent
// are flagged. If colored is set, the outline uses ANSI colors.
func (t *ITreap[C]) Dump(w io.Writer, colored bool) error {
	p := makeDumpPalette(colored)
	var b strings.Builder
	if t.root == nil {
		p.leaf.Fprintf(&b, "leaf[0] @0\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	parents := make([]*innerNode[C], 0, 32) // parents[d] is the inner node at depth d on the current path
	t.walk(func(node treeNode[C], pos int, depth int) {
		parents = parents[:depth]
		b.WriteString(strings.Repeat("  ", depth))
		if node.isLeaf() {
			p.leaf.Fprintf(&b, "leaf[%d] @%d\n", node.Len(), pos)
			return
		}
		inner := node.(*innerNode[C])
		line := fmt.Sprintf("inner[%d] prio=%016x", inner.size, inner.priority)
		if depth > 0 && inner.priority > parents[depth-1].priority {
			p.violation.Fprintf(&b, "%s  !heap\n", line)
		} else {
			p.inner.Fprintf(&b, "%s\n", line)
		}
		parents = append(parents, inner)
	})
	_, err := io.WriteString(w, b.String())
	return err
}

// DumpTerm writes a tree outline to stdout, colored if stdout is a terminal.
func (t *ITreap[C]) DumpTerm() error {
	colored := term.IsTerminal(int(os.Stdout.Fd()))
	tracer().P("dump", "stdout").Debugf("terminal = %v", colored)
	return t.Dump(os.Stdout, colored)
}
