package resolve

import (
	"fmt"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/style/css"
	"github.com/npillmayer/design2html/tree"
)

// Frame is a design node during compilation. Frames are linked into a
// tree.Node side table, which provides the parent link.
type Frame struct {
	Node *design.Node
	// HasPositioningContext is set by a direct child which is placed
	// absolutely relative to this frame. Once set, it is never cleared.
	HasPositioningContext bool
	// Position is set when the frame is resolved.
	Position css.PositionT
}

// FrameNode is a node of the side table.
type FrameNode = tree.Node[*Frame]

// NewFrameNode wraps a design node into a side table node. The node is not
// yet linked to a parent.
func NewFrameNode(n *design.Node) *FrameNode {
	return tree.NewNode(&Frame{Node: n})
}

func (f *Frame) String() string {
	if f == nil {
		return "<nil frame>"
	}
	if f.HasPositioningContext {
		return fmt.Sprintf("[%v ctx]", f.Node)
	}
	return fmt.Sprintf("[%v]", f.Node)
}

// parentFrame returns the frame of the parent of fnode, if any.
func parentFrame(fnode *FrameNode) *Frame {
	if p := fnode.Parent(); p != nil {
		return p.Payload
	}
	return nil
}
