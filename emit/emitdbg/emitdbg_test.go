package emitdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/emit"
	"github.com/npillmayer/design2html/maybe"
	"github.com/npillmayer/design2html/resolve"
	"github.com/npillmayer/design2html/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *design.Node {
	root := design.NewNode("FRAME", "Root")
	root.BoundingBox = maybe.Just(design.Rect{Width: 100, Height: 50})
	root.LayoutMode = design.Horizontal
	label := design.NewNode("TEXT", "Label")
	label.Characters = "Hello World"
	pin := design.NewNode("RECTANGLE", "Pin")
	pin.LayoutPositioning = design.PositionAbsolute
	pin.BoundingBox = maybe.Just(design.Rect{X: 4, Y: 4, Width: 8, Height: 8})
	pin.Strokes = []design.Paint{design.RGB(0, 0, 0)}
	pin.StrokeWeight = 1
	return root.Add(label, pin)
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.emit")
	defer teardown()
	//
	el, frames := emit.NewCompiler(resolve.DefaultOptions(), nil).Build(sample())
	require.NotNil(t, el)
	s := Print(el)
	t.Logf("markup tree =\n%s", s)
	assert.True(t, strings.HasPrefix(s, `<div> .frame "Root"`))
	assert.Contains(t, s, "["+style.PGFlex+"]")
	assert.Contains(t, s, "display: flex;")
	assert.Contains(t, s, `<span> .text "Label"`)
	assert.Contains(t, s, `"Hello World"`)
	assert.Contains(t, s, "border: 1px solid rgba(0, 0, 0, 1);")
	//
	f := PrintFrames(frames)
	t.Logf("frames =\n%s", f)
	assert.Contains(t, f, `[(frame "Root") ctx] relative`)
	assert.Contains(t, f, `[(rectangle "Pin")] absolute left=4px top=4px`)
	assert.Contains(t, f, `[(text "Label")]`)
	assert.NotContains(t, f, `"Label")] absolute`)
	assert.Equal(t, "<empty>", Print(nil))
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.emit")
	defer teardown()
	//
	el, _ := emit.NewCompiler(resolve.DefaultOptions(), nil).Build(sample())
	var buf bytes.Buffer
	err := ToGraphViz(el, &buf, nil)
	require.NoError(t, err)
	dot := buf.String()
	t.Logf("dot =\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "node00001_flex")
	assert.Contains(t, dot, "<td>row</td>")
	assert.Contains(t, dot, `"\"Hello␣Worl...\""`)
	//
	buf.Reset()
	require.NoError(t, ToGraphViz(el, &buf, []string{style.PGBorder}))
	assert.NotContains(t, buf.String(), "_flex")
	assert.Contains(t, buf.String(), "_border")
}

func TestGraphVizEscapesValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "design2html.emit")
	defer teardown()
	//
	text := design.NewNode("TEXT", "Label")
	text.TypeStyle = &design.TypeStyle{FontFamily: maybe.Just("A&B<i>")}
	el, _ := emit.NewCompiler(resolve.DefaultOptions(), nil).Build(text)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(el, &buf, []string{style.PGText}))
	dot := buf.String()
	t.Logf("dot =\n%s", dot)
	assert.Contains(t, dot, "<td>A&amp;B&lt;i&gt;</td>")
	assert.NotContains(t, dot, "A&B")
}
