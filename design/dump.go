package design

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the subtree of n as an indented tree, for debugging.
// Invisible nodes are included and marked.
func Dump(n *Node) string {
	if n == nil {
		return "<nil node>\n"
	}
	root := tp.NewWithRoot(describe(n))
	dumpChildren(root, n)
	return root.String()
}

func dumpChildren(t tp.Tree, n *Node) {
	for _, ch := range n.Children {
		if ch == nil {
			continue
		}
		if len(ch.Children) == 0 {
			t.AddMetaNode(ch.Kind, describe(ch))
			continue
		}
		dumpChildren(t.AddMetaBranch(ch.Kind, describe(ch)), ch)
	}
}

func describe(n *Node) string {
	s := fmt.Sprintf("%s %q", n.Label, n.Name)
	if !n.IsVisible() {
		s += " (hidden)"
	}
	if n.Kind.IsText() && n.Characters != "" {
		s += fmt.Sprintf(" %q", abbrev(n.Characters, 20))
	}
	return s
}

func abbrev(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}
