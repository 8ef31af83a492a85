package resolve

import (
	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/maybe"
	"github.com/npillmayer/design2html/style"
	"github.com/npillmayer/design2html/style/css"
)

// Resolver computes inline styles for frames. A Resolver holds no state
// besides its configuration and may be shared between goroutines.
type Resolver struct {
	opts   Options
	images map[string]string
}

// New creates a resolver. images maps image references of image paints to
// renderable URLs; it may be nil.
func New(opts Options, images map[string]string) *Resolver {
	return &Resolver{opts: opts, images: images}
}

// Options returns the options r has been created with.
func (r *Resolver) Options() Options {
	return r.opts
}

// Resolve computes the declarations for the frame of fnode. If the node
// is placed absolutely relative to its parent, the parent frame is flagged
// as a positioning context.
//
// All children of fnode have to be resolved before fnode itself.
func (r *Resolver) Resolve(fnode *FrameNode) style.Declarations {
	if fnode == nil || fnode.Payload == nil || fnode.Payload.Node == nil {
		return nil
	}
	n := fnode.Payload.Node
	var d style.Declarations
	r.size(n, &d)
	r.transform(n, &d)
	d.Append(r.Position(fnode).Declarations())
	r.flex(n, &d)
	r.padding(n, &d)
	r.paint(n, &d)
	r.border(n, &d)
	r.radius(n, &d)
	r.shadows(n, &d)
	if o, ok := n.Opacity.Get(); ok {
		d.Add("opacity", style.Property(css.Num(o)))
	}
	r.typography(n, &d)
	tracer().Debugf("%v => %s", n, d)
	return d
}

func (r *Resolver) size(n *design.Node, d *style.Declarations) {
	bbox, ok := n.BoundingBox.Get()
	if !ok {
		return
	}
	if n.SizingHorizontal != design.SizingHug {
		d.Add("width", css.Px(bbox.Width))
	}
	if n.SizingVertical != design.SizingHug {
		d.Add("height", css.Px(bbox.Height))
	}
}

func (r *Resolver) transform(n *design.Node, d *style.Declarations) {
	if tf, ok := n.RelativeTransform.Get(); ok {
		d.Add("transform", css.Translate(tf.Translation()))
	}
}

// Position decides how the frame of fnode is positioned:
//
// (1) a positioning context, not itself placed absolutely, is `relative`;
// (2) an absolutely placed node is `absolute`, offset from its parent;
// (3) a node within a non-flex parent (or the root) is `absolute` as well;
// (4) a flex item is left to the flex layout.
//
// In cases (2) and (3) the parent frame is flagged as a positioning context.
func (r *Resolver) Position(fnode *FrameNode) css.PositionT {
	frame := fnode.Payload
	n := frame.Node
	parent := parentFrame(fnode)
	var pos css.PositionT
	switch {
	case frame.HasPositioningContext && n.LayoutPositioning != design.PositionAbsolute:
		pos = css.Relative()
	case n.LayoutPositioning == design.PositionAbsolute:
		pos = css.Absolute(offsets(n, parent))
		flagAsContext(parent)
	case parent == nil || !parent.Node.IsFlexContainer():
		pos = css.Absolute(offsets(n, parent))
		flagAsContext(parent)
	}
	tracer().P("node", n.Name).Debugf("position is %s",
		css.PositionPattern[string](pos).OneOf(css.PositionPatterns[string]{
			Unset:    "flex item",
			Relative: "relative (positioning context)",
			Absolute: "absolute",
			Default:  pos.String(),
		}))
	frame.Position = pos
	return pos
}

// offsets computes the delta of the bounding box origin of n to the one of
// parent. Missing boxes count as origin 0.
func offsets(n *design.Node, parent *Frame) (left, top float64) {
	origin := func(m *design.Node) (x, y float64) {
		if m == nil {
			return 0, 0
		}
		bbox, _ := m.BoundingBox.Get()
		return bbox.X, bbox.Y
	}
	if parent == nil {
		return 0, 0
	}
	x, y := origin(n)
	px, py := origin(parent.Node)
	return x - px, y - py
}

func flagAsContext(parent *Frame) {
	if parent != nil && !parent.HasPositioningContext {
		tracer().Debugf("%v becomes a positioning context", parent.Node)
		parent.HasPositioningContext = true
	}
}

func (r *Resolver) flex(n *design.Node, d *style.Declarations) {
	if !n.IsFlexContainer() {
		return
	}
	d.Add("display", css.DisplayFlex)
	d.Add("flex-direction", css.FlexDirection(n.LayoutMode))
	if n.PrimaryAxisAlign != "" {
		d.Add("justify-content", css.JustifyContent(n.PrimaryAxisAlign))
	}
	if n.CounterAxisAlign != "" {
		d.Add("align-items", css.AlignItems(n.CounterAxisAlign))
	}
	if gap, ok := n.ItemSpacing.Get(); ok && gap < r.opts.GapCeiling {
		d.Add("gap", css.Px(gap))
	}
}

func (r *Resolver) padding(n *design.Node, d *style.Declarations) {
	if !n.Padding.IsSet() {
		return
	}
	p := n.Padding
	d.Add("padding", css.Pxs(
		p.Top.WithDefault(0), p.Right.WithDefault(0),
		p.Bottom.WithDefault(0), p.Left.WithDefault(0)))
}

// paint renders fills and the background channel. Only the first paint of
// each list is used.
func (r *Resolver) paint(n *design.Node, d *style.Declarations) {
	fill, hasFill := design.First(n.Fills)
	if hasFill && !n.Kind.IsText() {
		d.Add("background-color", css.Paint(fill, r.images))
	}
	if bg, ok := design.First(n.Background); ok {
		d.Add("background", css.Paint(bg, r.images))
	}
	if hasFill && n.Kind.IsText() {
		d.Add("color", css.Paint(fill, r.images))
	}
}

func (r *Resolver) border(n *design.Node, d *style.Declarations) {
	color := css.Transparent
	stroke, hasStroke := design.First(n.Strokes)
	if hasStroke {
		color = css.Paint(stroke, r.images)
	}
	if w, ok := n.IndividualStrokeWeights.Get(); ok {
		d.Add("border-top", css.Border(w.Top, color))
		d.Add("border-right", css.Border(w.Right, color))
		d.Add("border-bottom", css.Border(w.Bottom, color))
		d.Add("border-left", css.Border(w.Left, color))
	} else if hasStroke {
		d.Add("border", css.Border(n.StrokeWeight, color))
	}
}

func (r *Resolver) radius(n *design.Node, d *style.Declarations) {
	if n.Kind.HasCornerRadii() && len(n.RectangleCornerRadii) == 4 {
		d.Add("border-radius", css.Pxs(n.RectangleCornerRadii...))
		return
	}
	var radius float64
	switch m := n.CornerRadius.Match(); m {
	case m.Just(&radius):
		d.Add("border-radius", css.Px(radius))
	case m.Nothing():
	}
}

func (r *Resolver) shadows(n *design.Node, d *style.Declarations) {
	for _, e := range n.Effects {
		d.Add("box-shadow", css.BoxShadow(e))
	}
}

func (r *Resolver) typography(n *design.Node, d *style.Declarations) {
	ts := n.TypeStyle
	if ts == nil {
		return
	}
	px := func(v float64) style.Property { return css.Px(v) }
	num := func(v float64) style.Property { return style.Property(css.Num(v)) }
	addf := func(key string, m maybe.Maybe[float64], f func(float64) style.Property) {
		if v, ok := m.Get(); ok {
			d.Add(key, f(v))
		}
	}
	adds := func(key string, m maybe.Maybe[string], f func(string) style.Property) {
		if v, ok := m.Get(); ok && v != "" {
			d.Add(key, f(v))
		}
	}
	addf("font-size", ts.FontSize, px)
	adds("font-family", ts.FontFamily, func(fam string) style.Property {
		if fam == r.opts.DefaultFontFamily {
			return style.NullStyle
		}
		return style.Property(fam)
	})
	addf("font-weight", ts.FontWeight, num)
	addf("line-height", ts.LineHeightPx, px)
	addf("letter-spacing", ts.LetterSpacing, px)
	adds("text-align", ts.TextAlignHorizontal, css.TextAlign)
	adds("vertical-align", ts.TextAlignVertical, css.VerticalAlign)
	adds("text-decoration", ts.TextDecoration, css.TextDecoration)
}
