package design

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/design2html/maybe"
)

// ErrNoDocument is returned if a file response does not contain a document.
var ErrNoDocument = errors.New("design file response contains no document")

// ErrNodeNotFound is returned if a requested node is not part of a response.
var ErrNodeNotFound = errors.New("design node not found")

// ErrNoImages is returned if an image map contains no image URLs.
var ErrNoImages = errors.New("image map contains no image URLs")

// DecodeNode reads a single node object, including its subtree.
func DecodeNode(r io.Reader) (*Node, error) {
	var jn jsonNode
	if err := json.NewDecoder(r).Decode(&jn); err != nil {
		return nil, fmt.Errorf("decoding design node: %w", err)
	}
	return jn.node(), nil
}

// DecodeFile reads a file response of the form {"document": {…}}.
func DecodeFile(r io.Reader) (*Node, error) {
	var resp struct {
		Name     string    `json:"name"`
		Document *jsonNode `json:"document"`
	}
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding design file: %w", err)
	}
	if resp.Document == nil {
		return nil, ErrNoDocument
	}
	tracer().Debugf("decoded design file %q", resp.Name)
	return resp.Document.node(), nil
}

// DecodeNodesResponse reads a nodes response of the form
// {"nodes": {"<id>": {"document": {…}}}}. Entries with a null or missing
// document are skipped.
func DecodeNodesResponse(r io.Reader) (map[string]*Node, error) {
	var resp struct {
		Nodes map[string]*struct {
			Document *jsonNode `json:"document"`
		} `json:"nodes"`
	}
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding design nodes response: %w", err)
	}
	nodes := make(map[string]*Node, len(resp.Nodes))
	for id, entry := range resp.Nodes {
		if entry == nil || entry.Document == nil {
			tracer().Infof("nodes response has no document for %q", id)
			continue
		}
		nodes[id] = entry.Document.node()
	}
	return nodes, nil
}

// Decode reads any of the supported shapes: a file response, a nodes
// response or a single node. For a nodes response, the node with ID id is
// returned; for the other shapes, a non-empty id selects a node of the
// subtree.
func Decode(r io.Reader, id string) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading design document: %w", err)
	}
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("decoding design document: %w", err)
	}
	var root *Node
	switch {
	case shape["nodes"] != nil:
		nodes, err := DecodeNodesResponse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if id != "" {
			if n, ok := nodes[id]; ok {
				return n, nil
			}
		} else if len(nodes) == 1 {
			for _, n := range nodes {
				return n, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	case shape["document"] != nil:
		if root, err = DecodeFile(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	default:
		if root, err = DecodeNode(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}
	if id == "" {
		return root, nil
	}
	n, ok := root.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return n, nil
}

// DecodeImageMap reads an image-reference map. Accepted are the image
// fills response {"meta": {"images": {"<ref>": "<url>"}}}, an images
// response {"images": {…}} and a bare object. null entries denote failed
// renders and are dropped. If entries are present but none of them is an
// image URL, ErrNoImages is returned.
func DecodeImageMap(r io.Reader) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding image map: %w", err)
	}
	for _, key := range []string{"meta", "images"} {
		inner, ok := raw[key]
		if !ok {
			continue
		}
		raw = nil
		if err := json.Unmarshal(inner, &raw); err != nil {
			return nil, fmt.Errorf("decoding image map, %q: %w", key, err)
		}
	}
	images := make(map[string]string, len(raw))
	skipped := 0
	for ref, v := range raw {
		var url *string
		if err := json.Unmarshal(v, &url); err != nil {
			tracer().Infof("image map: ignoring entry %q", ref)
			skipped++
			continue
		}
		if url != nil {
			images[ref] = *url
		}
	}
	if len(images) == 0 && skipped > 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

// --- JSON shapes -----------------------------------------------------------

type jsonNode struct {
	ID                      string         `json:"id"`
	Name                    string         `json:"name"`
	Type                    string         `json:"type"`
	Visible                 *bool          `json:"visible"`
	AbsoluteBoundingBox     *Rect          `json:"absoluteBoundingBox"`
	RelativeTransform       *Transform     `json:"relativeTransform"`
	LayoutMode              string         `json:"layoutMode"`
	PrimaryAxisAlignItems   string         `json:"primaryAxisAlignItems"`
	CounterAxisAlignItems   string         `json:"counterAxisAlignItems"`
	ItemSpacing             *float64       `json:"itemSpacing"`
	PaddingTop              *float64       `json:"paddingTop"`
	PaddingRight            *float64       `json:"paddingRight"`
	PaddingBottom           *float64       `json:"paddingBottom"`
	PaddingLeft             *float64       `json:"paddingLeft"`
	LayoutPositioning       string         `json:"layoutPositioning"`
	LayoutSizingHorizontal  string         `json:"layoutSizingHorizontal"`
	LayoutSizingVertical    string         `json:"layoutSizingVertical"`
	Fills                   []jsonPaint    `json:"fills"`
	Strokes                 []jsonPaint    `json:"strokes"`
	Background              []jsonPaint    `json:"background"`
	StrokeWeight            *float64       `json:"strokeWeight"`
	IndividualStrokeWeights *StrokeWeights `json:"individualStrokeWeights"`
	CornerRadius            *float64       `json:"cornerRadius"`
	RectangleCornerRadii    []float64      `json:"rectangleCornerRadii"`
	Effects                 []jsonEffect   `json:"effects"`
	Opacity                 *float64       `json:"opacity"`
	Style                   *jsonTypeStyle `json:"style"`
	Characters              string         `json:"characters"`
	Children                []*jsonNode    `json:"children"`
}

type jsonPaint struct {
	Type                    string          `json:"type"`
	Color                   *Color          `json:"color"`
	Opacity                 *float64        `json:"opacity"`
	GradientStops           []jsonColorStop `json:"gradientStops"`
	GradientHandlePositions []Point         `json:"gradientHandlePositions"`
	ImageRef                string          `json:"imageRef"`
	ScaleMode               string          `json:"scaleMode"`
}

type jsonColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

type jsonEffect struct {
	Type   string   `json:"type"`
	Offset Point    `json:"offset"`
	Radius float64  `json:"radius"`
	Spread *float64 `json:"spread"`
	Color  Color    `json:"color"`
}

type jsonTypeStyle struct {
	FontSize            *float64 `json:"fontSize"`
	FontFamily          *string  `json:"fontFamily"`
	FontWeight          *float64 `json:"fontWeight"`
	LineHeightPx        *float64 `json:"lineHeightPx"`
	LetterSpacing       *float64 `json:"letterSpacing"`
	TextAlignHorizontal *string  `json:"textAlignHorizontal"`
	TextAlignVertical   *string  `json:"textAlignVertical"`
	TextDecoration      *string  `json:"textDecoration"`
}

// UnmarshalJSON defaults a missing alpha channel to 1.
func (c *Color) UnmarshalJSON(b []byte) error {
	v := struct {
		R float64  `json:"r"`
		G float64  `json:"g"`
		B float64  `json:"b"`
		A *float64 `json:"a"`
	}{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Color{R: v.R, G: v.G, B: v.B, A: 1}
	if v.A != nil {
		c.A = *v.A
	}
	return nil
}

// --- Conversion ------------------------------------------------------------

func (jn *jsonNode) node() *Node {
	n := NewNode(jn.Type, jn.Name)
	n.ID = jn.ID
	if n.Kind == Unknown {
		tracer().P("node", jn.ID).Infof("unknown design node type %q", jn.Type)
	}
	n.Visible = maybe.FromPtr(jn.Visible)
	n.BoundingBox = maybe.FromPtr(jn.AbsoluteBoundingBox)
	n.RelativeTransform = maybe.FromPtr(jn.RelativeTransform)
	switch jn.LayoutMode {
	case "HORIZONTAL":
		n.LayoutMode = Horizontal
	case "VERTICAL":
		n.LayoutMode = Vertical
	}
	n.PrimaryAxisAlign = Align(jn.PrimaryAxisAlignItems)
	n.CounterAxisAlign = Align(jn.CounterAxisAlignItems)
	n.ItemSpacing = maybe.FromPtr(jn.ItemSpacing)
	n.Padding = Padding{
		Top:    maybe.FromPtr(jn.PaddingTop),
		Right:  maybe.FromPtr(jn.PaddingRight),
		Bottom: maybe.FromPtr(jn.PaddingBottom),
		Left:   maybe.FromPtr(jn.PaddingLeft),
	}
	if jn.LayoutPositioning == "ABSOLUTE" {
		n.LayoutPositioning = PositionAbsolute
	}
	n.SizingHorizontal = sizing(jn.LayoutSizingHorizontal)
	n.SizingVertical = sizing(jn.LayoutSizingVertical)
	n.Fills = paints(jn.Fills)
	n.Strokes = paints(jn.Strokes)
	n.Background = paints(jn.Background)
	if jn.StrokeWeight != nil {
		n.StrokeWeight = *jn.StrokeWeight
	}
	n.IndividualStrokeWeights = maybe.FromPtr(jn.IndividualStrokeWeights)
	n.CornerRadius = maybe.FromPtr(jn.CornerRadius)
	n.RectangleCornerRadii = jn.RectangleCornerRadii
	for _, je := range jn.Effects {
		n.Effects = append(n.Effects, je.effect())
	}
	n.Opacity = maybe.FromPtr(jn.Opacity)
	if jn.Style != nil {
		n.TypeStyle = jn.Style.typeStyle()
	}
	n.Characters = jn.Characters
	for _, jch := range jn.Children {
		if jch != nil {
			n.Children = append(n.Children, jch.node())
		}
	}
	return n
}

func sizing(s string) Sizing {
	switch s {
	case "HUG":
		return SizingHug
	case "FILL":
		return SizingFill
	}
	return SizingFixed
}

func paints(jps []jsonPaint) []Paint {
	if len(jps) == 0 {
		return nil
	}
	ps := make([]Paint, 0, len(jps))
	for _, jp := range jps {
		ps = append(ps, jp.paint())
	}
	return ps
}

func (jp jsonPaint) paint() Paint {
	switch jp.Type {
	case "SOLID":
		s := Solid{Opacity: maybe.FromPtr(jp.Opacity)}
		if jp.Color != nil {
			s.Color = *jp.Color
		}
		return s
	case "GRADIENT_LINEAR":
		return LinearGradient{Stops: stops(jp.GradientStops), Handles: jp.GradientHandlePositions}
	case "GRADIENT_RADIAL":
		return RadialGradient{Stops: stops(jp.GradientStops), Handles: jp.GradientHandlePositions}
	case "GRADIENT_ANGULAR":
		return AngularGradient{Stops: stops(jp.GradientStops)}
	case "GRADIENT_DIAMOND":
		return DiamondGradient{Stops: stops(jp.GradientStops)}
	case "IMAGE":
		return ImagePaint{Ref: jp.ImageRef, ScaleMode: jp.ScaleMode}
	}
	tracer().Infof("unknown paint type %q", jp.Type)
	return UnknownPaint{Type: jp.Type}
}

func stops(jss []jsonColorStop) []ColorStop {
	cs := make([]ColorStop, len(jss))
	for i, js := range jss {
		cs[i] = ColorStop{Position: js.Position, Color: js.Color}
	}
	return cs
}

func (je jsonEffect) effect() Effect {
	e := Effect{
		Offset: je.Offset,
		Radius: je.Radius,
		Spread: maybe.FromPtr(je.Spread),
		Color:  je.Color,
	}
	switch je.Type {
	case "DROP_SHADOW":
		e.Type = DropShadow
	case "INNER_SHADOW":
		e.Type = InnerShadow
	case "LAYER_BLUR":
		e.Type = LayerBlur
	case "BACKGROUND_BLUR":
		e.Type = BackgroundBlur
	}
	return e
}

func (js *jsonTypeStyle) typeStyle() *TypeStyle {
	return &TypeStyle{
		FontSize:            maybe.FromPtr(js.FontSize),
		FontFamily:          maybe.FromPtr(js.FontFamily),
		FontWeight:          maybe.FromPtr(js.FontWeight),
		LineHeightPx:        maybe.FromPtr(js.LineHeightPx),
		LetterSpacing:       maybe.FromPtr(js.LetterSpacing),
		TextAlignHorizontal: maybe.FromPtr(js.TextAlignHorizontal),
		TextAlignVertical:   maybe.FromPtr(js.TextAlignVertical),
		TextDecoration:      maybe.FromPtr(js.TextDecoration),
	}
}
