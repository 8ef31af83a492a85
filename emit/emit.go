package emit

import (
	"io"
	"strings"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/resolve"
	"github.com/npillmayer/design2html/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ImageMap maps image references of image paints to renderable URLs.
type ImageMap map[string]string

// Compiler turns design trees into markup. A Compiler is immutable and may
// be used by several goroutines at once.
type Compiler struct {
	resolver *resolve.Resolver
}

// NewCompiler creates a compiler with given resolver options. images may
// be nil.
func NewCompiler(opts resolve.Options, images ImageMap) *Compiler {
	return &Compiler{resolver: resolve.New(opts, images)}
}

// Compile renders the markup for a design tree, using default options.
func Compile(root *design.Node, images ImageMap) string {
	return NewCompiler(resolve.DefaultOptions(), images).Compile(root)
}

// Render writes the markup for a design tree to w, using default options.
func Render(w io.Writer, root *design.Node, images ImageMap) error {
	return NewCompiler(resolve.DefaultOptions(), images).Render(w, root)
}

// Compile renders the markup for a design tree. An invisible root or a root
// of unknown kind results in the empty string.
func (c *Compiler) Compile(root *design.Node) string {
	var b strings.Builder
	_ = c.Render(&b, root) // strings.Builder does not fail
	return b.String()
}

// Render writes the markup for a design tree to w. It returns the first
// write error, if any.
func (c *Compiler) Render(w io.Writer, root *design.Node) error {
	el, _ := c.Build(root)
	if el == nil {
		return nil
	}
	return html.Render(w, el)
}

// Build creates the markup element for a design tree, together with the
// side table of frames used during compilation. If root produces no markup,
// the element is nil.
func (c *Compiler) Build(root *design.Node) (*html.Node, *resolve.FrameNode) {
	if root == nil {
		return nil, nil
	}
	frames := resolve.NewFrameNode(root)
	return c.emit(frames), frames
}

// emit creates the element for fnode. Children are linked into the side
// table before they are emitted, and fnode's style is resolved only after
// the child loop.
func (c *Compiler) emit(fnode *resolve.FrameNode) *html.Node {
	n := fnode.Payload.Node
	if !n.IsVisible() {
		tracer().Debugf("skipping invisible %v", n)
		return nil
	}
	switch {
	case n.Kind.IsContainer():
		el := element(atom.Div, n)
		for _, ch := range n.Children {
			if ch == nil || !ch.IsVisible() {
				continue
			}
			chnode := resolve.NewFrameNode(ch)
			fnode.AddChild(chnode)
			if chel := c.emit(chnode); chel != nil {
				el.AppendChild(chel)
			}
		}
		setStyle(el, c.resolver.Resolve(fnode))
		return el
	case n.Kind.IsLeafShape():
		el := element(atom.Div, n)
		decls := c.resolver.Resolve(fnode)
		if n.Kind == design.Ellipse {
			decls.Add("border-radius", "50%")
		}
		setStyle(el, decls)
		return el
	case n.Kind == design.Vector:
		el := element(atom.Div, n)
		decls := c.resolver.Resolve(fnode)
		decls.Add("background-color", c.resolver.Options().VectorFiller)
		decls.Add("visibility", "hidden")
		setStyle(el, decls)
		return el
	case n.Kind.IsText():
		el := element(atom.Span, n)
		setStyle(el, c.resolver.Resolve(fnode))
		if n.Characters != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Characters})
		}
		return el
	}
	tracer().Infof("no markup for %v of kind %s", n, n.Kind)
	return nil
}

// element creates an element without style, carrying the node name and
// class.
func element(a atom.Atom, n *design.Node) *html.Node {
	class := n.Label
	if class == "" {
		class = n.Kind.String()
	}
	tracer().Debugf("<%s> for %v", a, n)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr: []html.Attribute{
			{Key: "data-node-name", Val: n.Name},
			{Key: "class", Val: strings.ToLower(class)},
		},
	}
}

func setStyle(el *html.Node, decls style.Declarations) {
	el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: decls.String()})
}
