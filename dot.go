package pfx

import (
	"fmt"
	"io"
)

type dotWriter struct {
	w    io.Writer
	next int
	err  error
}

func (d *dotWriter) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// generates the dot statements for n and its subtree, returning n's name
func (d *dotWriter) node(n Node) string {
	thisNodeName := fmt.Sprintf("n%d", d.next)
	d.next++

	d.printf("%s [label=%q]\n", thisNodeName, n.Token().String())
	if _, ok := n.(*Leaf); ok {
		d.printf("%s [peripheries=2]\n", thisNodeName)
	}

	for _, child := range children(n) {
		childName := d.node(child)
		d.printf("%s -> %s\n", thisNodeName, childName)
	}
	return thisNodeName
}

// WriteDot writes the tree rooted at root as a Graphviz digraph. Nodes are
// numbered in pre-order; operand edges follow operand order. A nil root
// yields an empty graph.
func WriteDot(w io.Writer, root Node) error {
	d := &dotWriter{w: w}
	d.printf("digraph G {\n")
	if root != nil {
		d.node(root)
	}
	d.printf("}\n")
	return d.err
}
