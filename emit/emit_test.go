package emit

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/maybe"
	"github.com/npillmayer/design2html/resolve"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float64) maybe.Maybe[design.Rect] {
	return maybe.Just(design.Rect{X: x, Y: y, Width: w, Height: h})
}

func TestPositioningContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.emit")
	defer teardown()
	//
	parent := design.NewNode("FRAME", "Parent")
	parent.BoundingBox = box(100, 50, 300, 200)
	child := design.NewNode("RECTANGLE", "Child")
	child.BoundingBox = box(110, 60, 20, 20)
	parent.Add(child)
	markup := Compile(parent, nil)
	expected := `<div data-node-name="Parent" class="frame" style="width: 300px; height: 200px; position: relative;">` +
		`<div data-node-name="Child" class="rectangle" style="width: 20px; height: 20px; position: absolute; left: 10px; top: 10px;"></div>` +
		`</div>`
	assert.Equal(t, expected, markup)
}

func card() *design.Node {
	root := design.NewNode("FRAME", "Card")
	root.BoundingBox = box(0, 0, 200, 40)
	root.LayoutMode = design.Horizontal
	root.PrimaryAxisAlign = design.AlignSpaceBetween
	root.CounterAxisAlign = design.AlignCenter
	root.ItemSpacing = maybe.Just(12.0)
	root.Fills = []design.Paint{design.RGB(1, 1, 1)}
	//
	title := design.NewNode("TEXT", "Title")
	title.BoundingBox = box(0, 0, 100, 20)
	title.Fills = []design.Paint{design.RGB(0, 0, 0)}
	title.TypeStyle = &design.TypeStyle{
		FontSize:   maybe.Just(14.0),
		FontFamily: maybe.Just("SF Pro Text"),
	}
	title.Characters = "Tom & Jerry <3"
	dot := design.NewNode("ELLIPSE", "Dot")
	dot.BoundingBox = box(180, 10, 20, 20)
	dot.CornerRadius = maybe.Just(4.0)
	icon := design.NewNode("VECTOR", "Icon")
	icon.BoundingBox = box(150, 10, 16, 16)
	icon.LayoutPositioning = design.PositionAbsolute
	hidden := design.NewNode("RECTANGLE", "Hidden")
	hidden.Visible = maybe.Just(false)
	hidden.LayoutPositioning = design.PositionAbsolute
	widget := design.NewNode("WIDGET", "Widget")
	return root.Add(title, dot, icon, hidden, widget)
}

func TestGoldenCard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.emit")
	defer teardown()
	//
	markup := Compile(card(), nil)
	expected := `<div data-node-name="Card" class="frame" style="width: 200px; height: 40px; position: relative; display: flex; flex-direction: row; justify-content: space-between; align-items: center; gap: 12px; background-color: rgba(255, 255, 255, 1);">` +
		`<span data-node-name="Title" class="text" style="width: 100px; height: 20px; color: rgba(0, 0, 0, 1); font-size: 14px;">Tom &amp; Jerry &lt;3</span>` +
		`<div data-node-name="Dot" class="ellipse" style="width: 20px; height: 20px; border-radius: 4px; border-radius: 50%;"></div>` +
		`<div data-node-name="Icon" class="vector" style="width: 16px; height: 16px; position: absolute; left: 150px; top: 10px; background-color: #d9d9d9; visibility: hidden;"></div>` +
		`</div>`
	assert.Equal(t, expected, markup)
}

func TestIdempotence(t *testing.T) {
	const doc = `{"id": "1:1", "name": "Screen", "type": "FRAME",
	  "absoluteBoundingBox": {"x": 0, "y": 0, "width": 375, "height": 812},
	  "children": [
	    {"id": "1:2", "name": "Header", "type": "FRAME", "layoutMode": "VERTICAL",
	     "absoluteBoundingBox": {"x": 0, "y": 0, "width": 375, "height": 64},
	     "children": [
	       {"id": "1:3", "name": "Logo", "type": "RECTANGLE", "layoutPositioning": "ABSOLUTE",
	        "absoluteBoundingBox": {"x": 16, "y": 16, "width": 32, "height": 32},
	        "fills": [{"type": "IMAGE", "imageRef": "logo"}]}
	     ]}
	  ]}`
	n, err := design.DecodeNode(strings.NewReader(doc))
	require.NoError(t, err)
	pristine, err := design.DecodeNode(strings.NewReader(doc))
	require.NoError(t, err)
	images := ImageMap{"logo": "https://cdn/logo.png"}
	first := Compile(n, images)
	second := Compile(n, images)
	assert.Equal(t, first, second)
	assert.Equal(t, pristine, n, "compilation must not modify the design tree")
	assert.Contains(t, first, "background-color: url(https://cdn/logo.png);")
	assert.Contains(t, first, `class="frame" style="width: 375px; height: 64px; position: relative; display: flex; flex-direction: column;"`)
}

func TestInvisibility(t *testing.T) {
	visibleOnly := func() *design.Node {
		root := design.NewNode("FRAME", "Root")
		root.LayoutMode = design.Vertical
		return root
	}
	root := visibleOnly()
	ghost := design.NewNode("FRAME", "Ghost")
	ghost.Visible = maybe.Just(false)
	ghost.LayoutPositioning = design.PositionAbsolute
	inner := design.NewNode("RECTANGLE", "Inner")
	inner.LayoutPositioning = design.PositionAbsolute
	ghost.Add(inner)
	root.Add(ghost)
	c := NewCompiler(resolve.DefaultOptions(), nil)
	el, frames := c.Build(root)
	require.NotNil(t, el)
	assert.Equal(t, 0, frames.ChildCount(), "invisible nodes must not enter the side table")
	assert.False(t, frames.Payload.HasPositioningContext)
	assert.Equal(t, Compile(visibleOnly(), nil), c.Compile(root))
	assert.Equal(t, "", Compile(ghost, nil))
}

func TestKindCoverage(t *testing.T) {
	for _, typ := range []string{
		"FRAME", "GROUP", "COMPONENT", "COMPONENT_SET", "INSTANCE", "SECTION",
		"CANVAS", "RECTANGLE", "TEXT", "ELLIPSE", "REGULAR_POLYGON", "STAR",
		"LINE", "VECTOR", "SLICE", "BOOLEAN_OPERATION",
	} {
		n := design.NewNode(typ, "n")
		n.BoundingBox = box(0, 0, 1, 1)
		markup := Compile(n, nil)
		if markup == "" {
			t.Errorf("expected %s to produce markup", typ)
			continue
		}
		class := `class="` + strings.ToLower(typ) + `"`
		if !strings.Contains(markup, class) {
			t.Errorf("expected markup for %s to carry %s, is %s", typ, class, markup)
		}
	}
	for _, typ := range []string{"STICKY", "WIDGET", "CONNECTOR", ""} {
		if markup := Compile(design.NewNode(typ, "n"), nil); markup != "" {
			t.Errorf("expected %q to produce no markup, is %s", typ, markup)
		}
	}
	assert.Equal(t, "", Compile(nil, nil))
}

func TestTextIsAlwaysSpan(t *testing.T) {
	text := design.NewNode("TEXT", `Quote "1"`)
	text.TypeStyle = &design.TypeStyle{FontSize: maybe.Just(48.0)}
	text.Characters = "Big"
	markup := Compile(text, nil)
	assert.Equal(t, `<span data-node-name="Quote &#34;1&#34;" class="text" style="position: absolute; font-size: 48px;">Big</span>`, markup)
}

func TestConfiguredCompiler(t *testing.T) {
	conf := testconfig.Conf{}
	conf.Set(resolve.KeyVectorFiller, "red")
	c := NewCompiler(resolve.OptionsFromConfig(conf), nil)
	markup := c.Compile(design.NewNode("VECTOR", "V"))
	assert.Equal(t, `<div data-node-name="V" class="vector" style="position: absolute; background-color: red; visibility: hidden;"></div>`, markup)
}

func TestConcurrentCompilation(t *testing.T) {
	root := card()
	expected := Compile(root, nil)
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Compile(root, nil)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if r != expected {
			t.Errorf("expected compilation #%d to equal the sequential one, is %s", i, r)
		}
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestRenderError(t *testing.T) {
	err := Render(failingWriter{}, card(), nil)
	assert.True(t, errors.Is(err, errWrite), "expected write error, is %v", err)
	assert.NoError(t, Render(failingWriter{}, design.NewNode("STICKY", "s"), nil))
}
