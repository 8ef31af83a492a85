package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() *Node[string] {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	root.AddChild(a).AddChild(b)
	a.AddChild(NewNode("a1")).AddChild(NewNode("a2"))
	return root
}

func TestNodeParentLinks(t *testing.T) {
	root := buildTestTree()
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	a := root.Children()[0]
	a2 := a.Children()[1]
	if a2.Parent() != a {
		t.Errorf("expected parent of a2 to be a, is %v", a2.Parent())
	}
	if a.Parent() != root {
		t.Errorf("expected parent of a to be root, is %v", a.Parent())
	}
	if root.Parent() != nil {
		t.Errorf("expected root to have no parent, has %v", root.Parent())
	}
	if a2.ChildCount() != 0 || a2.Children() == nil {
		t.Errorf("expected leaf to have an empty list of children, has %v", a2.Children())
	}
}

func TestNodeChildrenIsCopy(t *testing.T) {
	root := buildTestTree()
	ch := root.Children()
	ch[0] = NewNode("x")
	if root.Children()[0].Payload != "a" {
		t.Errorf("expected first child to remain a, is %v", root.Children()[0])
	}
}

func TestNodeNilChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.tree")
	defer teardown()
	//
	root := NewNode("root")
	root.AddChild(nil).AddChild(NewNode("a"))
	if root.ChildCount() != 1 {
		t.Errorf("expected nil child to be ignored, #children is %d", root.ChildCount())
	}
	var none *Node[string]
	if none.ChildCount() != 0 || none.Children() != nil || none.Parent() != nil {
		t.Error("expected nil node to have neither children nor parent")
	}
}
