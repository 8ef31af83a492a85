package design

import (
	"fmt"
	"strings"

	"github.com/npillmayer/design2html/maybe"
)

// Kind is the variant of a design node, as far as markup generation is
// concerned.
type Kind uint8

// Node kinds. Container subsumes frames, groups, components, instances,
// sections and canvases.
const (
	Unknown Kind = iota
	Container
	Rectangle
	Text
	Ellipse
	Polygon
	Star
	Line
	Vector
	Slice
	BooleanOp
)

var kindNames = [...]string{
	"unknown", "container", "rectangle", "text", "ellipse", "polygon", "star",
	"line", "vector", "slice", "boolean_operation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsContainer is true for kinds which render their children.
func (k Kind) IsContainer() bool {
	return k == Container
}

// IsLeafShape is true for geometric kinds rendered as a single box.
// Vector is excluded, it has a stand-in rendering of its own.
func (k Kind) IsLeafShape() bool {
	switch k {
	case Rectangle, Ellipse, Polygon, Star, Line, Slice, BooleanOp:
		return true
	}
	return false
}

// HasCornerRadii is true for kinds which may expose per-corner radii.
func (k Kind) HasCornerRadii() bool {
	return k == Container || k == Rectangle
}

// IsText is true for text layers.
func (k Kind) IsText() bool {
	return k == Text
}

// typeKinds maps design file API type names to kinds.
var typeKinds = map[string]Kind{
	"DOCUMENT":          Container,
	"CANVAS":            Container,
	"FRAME":             Container,
	"GROUP":             Container,
	"SECTION":           Container,
	"COMPONENT":         Container,
	"COMPONENT_SET":     Container,
	"INSTANCE":          Container,
	"RECTANGLE":         Rectangle,
	"TEXT":              Text,
	"ELLIPSE":           Ellipse,
	"REGULAR_POLYGON":   Polygon,
	"STAR":              Star,
	"LINE":              Line,
	"VECTOR":            Vector,
	"SLICE":             Slice,
	"BOOLEAN_OPERATION": BooleanOp,
}

// KindFromType returns the kind for a design file API type name, e.g.
// "FRAME" => Container. Unknown type names return Unknown.
func KindFromType(typ string) Kind {
	return typeKinds[strings.ToUpper(typ)]
}

// --- Geometry --------------------------------------------------------------

// Rect is an axis-aligned box in design space.
type Rect struct {
	X, Y, Width, Height float64
}

// Point is a position or offset in design space.
type Point struct {
	X, Y float64
}

// Transform is a 2×3 affine matrix [[a c tx] [b d ty]].
type Transform [2][3]float64

// Translation returns the translation terms of t.
func (t Transform) Translation() (dx, dy float64) {
	return t[0][2], t[1][2]
}

// --- Auto layout -----------------------------------------------------------

// LayoutMode is the auto-layout direction of a container.
// LayoutNone means children are placed freely.
type LayoutMode uint8

const (
	LayoutNone LayoutMode = iota
	Horizontal
	Vertical
)

// Align is an axis alignment. Values are the raw design file API strings;
// values other than the constants below are kept as-is.
type Align string

const (
	AlignMin          Align = "MIN"
	AlignCenter       Align = "CENTER"
	AlignMax          Align = "MAX"
	AlignSpaceBetween Align = "SPACE_BETWEEN" // primary axis only
)

// Positioning tells if a child of an auto-layout container takes part in
// the layout flow.
type Positioning uint8

const (
	PositionAuto Positioning = iota
	PositionAbsolute
)

// Sizing is the auto-layout sizing mode of one axis.
type Sizing uint8

const (
	SizingFixed Sizing = iota
	SizingHug          // size follows content
	SizingFill         // size follows container
)

// Padding holds optional padding values per side.
type Padding struct {
	Top, Right, Bottom, Left maybe.Maybe[float64]
}

// IsSet is true if any side is present.
func (p Padding) IsSet() bool {
	return maybe.Any(p.Top, p.Right, p.Bottom, p.Left)
}

// StrokeWeights are per-side stroke weights.
type StrokeWeights struct {
	Top, Right, Bottom, Left float64
}

// --- Effects and typography ------------------------------------------------

// EffectType discriminates effects. Only shadows are rendered.
type EffectType uint8

const (
	UnknownEffect EffectType = iota
	DropShadow
	InnerShadow
	LayerBlur
	BackgroundBlur
)

// Effect is a shadow or blur descriptor.
type Effect struct {
	Type   EffectType
	Offset Point
	Radius float64
	Spread maybe.Maybe[float64]
	Color  Color
}

// TypeStyle holds the typography of a text layer. Every attribute is
// optional.
type TypeStyle struct {
	FontSize            maybe.Maybe[float64]
	FontFamily          maybe.Maybe[string]
	FontWeight          maybe.Maybe[float64]
	LineHeightPx        maybe.Maybe[float64]
	LetterSpacing       maybe.Maybe[float64]
	TextAlignHorizontal maybe.Maybe[string]
	TextAlignVertical   maybe.Maybe[string]
	TextDecoration      maybe.Maybe[string]
}

// --- Node ------------------------------------------------------------------

// Node is a node of a design document tree.
//
// Compilation never modifies a Node. Attributes not legal for a node's Kind
// are ignored by the compiler.
type Node struct {
	ID      string
	Name    string // for debugging and data attributes only
	Kind    Kind
	Label   string // lower-cased design type name, e.g. "frame"
	Visible maybe.Maybe[bool]

	BoundingBox       maybe.Maybe[Rect]
	RelativeTransform maybe.Maybe[Transform]

	LayoutMode        LayoutMode
	PrimaryAxisAlign  Align
	CounterAxisAlign  Align
	ItemSpacing       maybe.Maybe[float64]
	Padding           Padding
	LayoutPositioning Positioning
	SizingHorizontal  Sizing
	SizingVertical    Sizing

	Fills                   []Paint // only the first one is rendered
	Strokes                 []Paint // only the first one is rendered
	Background              []Paint // separate background channel of containers
	StrokeWeight            float64
	IndividualStrokeWeights maybe.Maybe[StrokeWeights]
	CornerRadius            maybe.Maybe[float64]
	RectangleCornerRadii    []float64 // top-left, top-right, bottom-right, bottom-left
	Effects                 []Effect
	Opacity                 maybe.Maybe[float64]

	TypeStyle  *TypeStyle
	Characters string

	Children []*Node
}

// NewNode creates a node of a given design type name, e.g. "FRAME".
func NewNode(typ string, name string) *Node {
	return &Node{
		Kind:  KindFromType(typ),
		Label: strings.ToLower(typ),
		Name:  name,
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	return fmt.Sprintf("(%s %q)", n.Label, n.Name)
}

// IsVisible is false only if the node is explicitly flagged invisible.
func (n *Node) IsVisible() bool {
	return n.Visible.WithDefault(true)
}

// IsFlexContainer is true if the node lays out its children along an axis.
func (n *Node) IsFlexContainer() bool {
	return n.LayoutMode != LayoutNone
}

// Add appends children to n and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find searches the subtree of n (pre-order) for a node with a given ID.
func (n *Node) Find(id string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.ID == id {
		return n, true
	}
	for _, ch := range n.Children {
		if found, ok := ch.Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

// Count returns the number of nodes in the subtree of n, including n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	c := 1
	for _, ch := range n.Children {
		c += ch.Count()
	}
	return c
}
