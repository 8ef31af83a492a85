package design

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameJSON = `{
  "id": "1:2",
  "name": "Card",
  "type": "FRAME",
  "absoluteBoundingBox": {"x": 100, "y": 50, "width": 320, "height": 200},
  "relativeTransform": [[1, 0, 4], [0, 1, 8]],
  "layoutMode": "HORIZONTAL",
  "primaryAxisAlignItems": "SPACE_BETWEEN",
  "counterAxisAlignItems": "CENTER",
  "itemSpacing": 12,
  "paddingTop": 16,
  "paddingLeft": 8,
  "layoutSizingHorizontal": "HUG",
  "fills": [
    {"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0, "a": 1}, "opacity": 0.5},
    {"type": "GRADIENT_LINEAR",
     "gradientHandlePositions": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 0, "y": 1}],
     "gradientStops": [{"position": 0, "color": {"r": 0, "g": 0, "b": 0, "a": 1}}]},
    {"type": "IMAGE", "imageRef": "abc123", "scaleMode": "FILL"},
    {"type": "EMOJI"}
  ],
  "strokes": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 1}}],
  "strokeWeight": 2,
  "individualStrokeWeights": {"top": 1, "right": 2, "bottom": 3, "left": 4},
  "rectangleCornerRadii": [1, 2, 3, 4],
  "effects": [{"type": "DROP_SHADOW", "offset": {"x": 0, "y": 4}, "radius": 8,
               "color": {"r": 0, "g": 0, "b": 0, "a": 0.25}}],
  "children": [
    {"id": "1:3", "name": "Title", "type": "TEXT", "characters": "Hello",
     "style": {"fontSize": 14, "fontFamily": "Inter", "textAlignHorizontal": "LEFT"}},
    {"id": "1:4", "name": "Hidden", "type": "RECTANGLE", "visible": false,
     "layoutPositioning": "ABSOLUTE"},
    {"id": "1:5", "name": "Widget", "type": "WIDGET"}
  ]
}`

func TestDecodeNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.design")
	defer teardown()
	//
	n, err := DecodeNode(strings.NewReader(frameJSON))
	require.NoError(t, err)
	t.Logf("design tree =\n%s", Dump(n))

	assert.Equal(t, Container, n.Kind)
	assert.Equal(t, "frame", n.Label)
	assert.True(t, n.IsVisible())
	bbox, ok := n.BoundingBox.Get()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 100, Y: 50, Width: 320, Height: 200}, bbox)
	tf, ok := n.RelativeTransform.Get()
	require.True(t, ok)
	dx, dy := tf.Translation()
	assert.Equal(t, 4.0, dx)
	assert.Equal(t, 8.0, dy)
	assert.Equal(t, Horizontal, n.LayoutMode)
	assert.Equal(t, AlignSpaceBetween, n.PrimaryAxisAlign)
	assert.Equal(t, AlignCenter, n.CounterAxisAlign)
	assert.Equal(t, 12.0, n.ItemSpacing.WithDefault(0))
	assert.True(t, n.Padding.IsSet())
	assert.False(t, n.Padding.Right.IsJust())
	assert.Equal(t, SizingHug, n.SizingHorizontal)
	assert.Equal(t, SizingFixed, n.SizingVertical)
	assert.Equal(t, 2.0, n.StrokeWeight)
	assert.Equal(t, []float64{1, 2, 3, 4}, n.RectangleCornerRadii)
	sw, ok := n.IndividualStrokeWeights.Get()
	require.True(t, ok)
	assert.Equal(t, StrokeWeights{Top: 1, Right: 2, Bottom: 3, Left: 4}, sw)
	require.Len(t, n.Effects, 1)
	assert.Equal(t, DropShadow, n.Effects[0].Type)
	assert.False(t, n.Effects[0].Spread.IsJust())
	assert.Equal(t, 0.25, n.Effects[0].Color.A)
}

func TestDecodePaints(t *testing.T) {
	n, err := DecodeNode(strings.NewReader(frameJSON))
	require.NoError(t, err)
	require.Len(t, n.Fills, 4)

	solid, ok := n.Fills[0].(Solid)
	require.True(t, ok, "expected first fill to be solid, is %T", n.Fills[0])
	assert.Equal(t, 0.5, solid.Opacity.WithDefault(1))
	lin, ok := n.Fills[1].(LinearGradient)
	require.True(t, ok, "expected second fill to be a linear gradient, is %T", n.Fills[1])
	assert.Len(t, lin.Handles, 3)
	assert.Len(t, lin.Stops, 1)
	img, ok := n.Fills[2].(ImagePaint)
	require.True(t, ok)
	assert.Equal(t, "abc123", img.Ref)
	unknown, ok := n.Fills[3].(UnknownPaint)
	require.True(t, ok)
	assert.Equal(t, "EMOJI", unknown.Type)

	stroke, ok := n.Strokes[0].(Solid)
	require.True(t, ok)
	if stroke.Color.A != 1 {
		t.Errorf("expected missing alpha to default to 1, is %g", stroke.Color.A)
	}
}

func TestDecodeChildren(t *testing.T) {
	n, err := DecodeNode(strings.NewReader(frameJSON))
	require.NoError(t, err)
	require.Len(t, n.Children, 3)

	title := n.Children[0]
	assert.Equal(t, Text, title.Kind)
	assert.Equal(t, "Hello", title.Characters)
	require.NotNil(t, title.TypeStyle)
	assert.Equal(t, "Inter", title.TypeStyle.FontFamily.WithDefault(""))
	assert.False(t, title.TypeStyle.FontWeight.IsJust())

	hidden := n.Children[1]
	assert.False(t, hidden.IsVisible())
	assert.Equal(t, PositionAbsolute, hidden.LayoutPositioning)

	assert.Equal(t, Unknown, n.Children[2].Kind)
	assert.Equal(t, 4, n.Count())
}

func TestDecodeShapes(t *testing.T) {
	file := `{"name": "Demo", "document": ` + frameJSON + `}`
	n, err := Decode(strings.NewReader(file), "1:3")
	require.NoError(t, err)
	assert.Equal(t, "Title", n.Name)

	nodes := `{"nodes": {"1:2": {"document": ` + frameJSON + `}, "9:9": null}}`
	n, err = Decode(strings.NewReader(nodes), "")
	require.NoError(t, err)
	assert.Equal(t, "Card", n.Name)

	_, err = Decode(strings.NewReader(nodes), "7:7")
	assert.True(t, errors.Is(err, ErrNodeNotFound), "expected ErrNodeNotFound, is %v", err)

	_, err = DecodeFile(strings.NewReader(`{"name": "empty"}`))
	assert.True(t, errors.Is(err, ErrNoDocument), "expected ErrNoDocument, is %v", err)

	_, err = Decode(strings.NewReader(`[1, 2]`), "")
	assert.Error(t, err)
}

func TestDecodeImageMap(t *testing.T) {
	images, err := DecodeImageMap(strings.NewReader(`{"err": null, "images": {"abc": "https://img/abc.png", "dead": null}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"abc": "https://img/abc.png"}, images)

	images, err = DecodeImageMap(strings.NewReader(`{"abc": "https://img/abc.png"}`))
	require.NoError(t, err)
	assert.Equal(t, "https://img/abc.png", images["abc"])

	fills := `{"error": false, "status": 200, "meta": {"images": {"abc123": "https://s3/abc123.png", "gone": null}}}`
	images, err = DecodeImageMap(strings.NewReader(fills))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"abc123": "https://s3/abc123.png"}, images)

	_, err = DecodeImageMap(strings.NewReader(`{"error": false, "status": 200}`))
	assert.True(t, errors.Is(err, ErrNoImages), "expected ErrNoImages, is %v", err)

	_, err = DecodeImageMap(strings.NewReader(`{"meta": [1]}`))
	assert.Error(t, err)
}

func TestKindFromType(t *testing.T) {
	for typ, kind := range map[string]Kind{
		"FRAME": Container, "group": Container, "INSTANCE": Container,
		"REGULAR_POLYGON": Polygon, "BOOLEAN_OPERATION": BooleanOp,
		"VECTOR": Vector, "STICKY": Unknown,
	} {
		if k := KindFromType(typ); k != kind {
			t.Errorf("expected kind of %s to be %s, is %s", typ, kind, k)
		}
	}
	if !Rectangle.HasCornerRadii() || Ellipse.HasCornerRadii() {
		t.Error("expected only rectangles and containers to expose per-corner radii")
	}
	if Vector.IsLeafShape() || !Slice.IsLeafShape() {
		t.Error("expected slices but not vectors to be leaf shapes")
	}
}

func TestDumpSkipsNilChildren(t *testing.T) {
	n := NewNode("FRAME", "f").Add(nil, NewNode("TEXT", "t"))
	s := Dump(n)
	t.Logf("design tree =\n%s", s)
	assert.Contains(t, s, `frame "f"`)
	assert.Contains(t, s, `text "t"`)
	assert.Equal(t, "<nil node>\n", Dump(nil))
}
