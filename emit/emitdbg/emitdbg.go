/*
Package emitdbg implements helpers to debug emitted markup.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package emitdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/design2html/resolve"
	"github.com/npillmayer/design2html/style"
	"github.com/npillmayer/design2html/style/css"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// tracer traces with key 'design2html.emit'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.emit")
}

// Print returns a tree rendering of an element tree, as created by the
// emitter. Elements are listed with their class, inline styles are split up
// into property groups.
func Print(root *html.Node) string {
	if root == nil {
		return "<empty>"
	}
	t := tp.NewWithRoot(label(root))
	printElement(root, t)
	return t.String()
}

func printElement(n *html.Node, t tp.Tree) {
	for _, g := range styleGroups(n) {
		b := t.AddMetaBranch(g.Name, "")
		for _, kv := range g.Declarations {
			b.AddNode(kv.String())
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			printElement(ch, t.AddBranch(label(ch)))
		case html.TextNode:
			t.AddMetaNode("text", fmt.Sprintf("%q", ch.Data))
		}
	}
}

// PrintFrames returns a tree rendering of the side table of a compilation,
// showing which frames became positioning contexts and where frames have
// been placed.
func PrintFrames(root *resolve.FrameNode) string {
	if root == nil {
		return "<empty>"
	}
	t := tp.NewWithRoot(frameLabel(root.Payload))
	printFrames(root, t)
	return t.String()
}

func printFrames(fnode *resolve.FrameNode, t tp.Tree) {
	for _, ch := range fnode.Children() {
		if ch.ChildCount() == 0 {
			t.AddNode(frameLabel(ch.Payload))
			continue
		}
		printFrames(ch, t.AddBranch(frameLabel(ch.Payload)))
	}
}

func frameLabel(f *resolve.Frame) string {
	var offsets []css.PositionOffset
	switch m := f.Position.Match(); m {
	case m.Absolute(&offsets):
		s := f.String() + " absolute"
		for _, o := range offsets {
			s += fmt.Sprintf(" %s=%s", o.Dir, css.Px(o.Px))
		}
		return s
	case m.Relative():
		return f.String() + " relative"
	}
	return f.String()
}

func label(n *html.Node) string {
	return fmt.Sprintf("<%s> .%s %q", n.Data, attr(n, "class"), attr(n, "data-node-name"))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// styleGroups parses the style attribute of n. Unparsable styles are traced
// and reported as a single group.
func styleGroups(n *html.Node) []style.Group {
	s := attr(n, "style")
	if s == "" {
		return nil
	}
	decls, err := style.ParseInline(s)
	if err != nil {
		tracer().Errorf("element %s: %v", label(n), err)
		return []style.Group{{
			Name:         style.PGX,
			Declarations: style.Declarations{{Key: "style", Value: style.Property(s)}},
		}}
	}
	return decls.Grouped()
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGDisplay,
	style.PGFlex,
	style.PGBorder,
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root element, a
// Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Display
//     - Flex
//     - Border
//
func ToGraphViz(root *html.Node, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("markup").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("element").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(elementTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*html.Node]string, 256)
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N     *html.Node
	Name  string
	Label string
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	if err := elementNode(n, w, dict, gparams); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{N: n, Name: dict[n]}, node{N: ch, Name: dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func elementNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	nd := &node{N: n, Name: name}
	if n.Type == html.ElementNode {
		nd.Label = label(n)
	}
	if err := gparams.NodeTmpl.Execute(w, nd); err != nil {
		return err
	}
	if n.Type != html.ElementNode {
		return nil
	}
	return elementStyles(n, name, w, gparams)
}

// pgroup is a style group with a unique name for DOT.
type pgroup struct {
	ID string
	style.Group
}

func elementStyles(n *html.Node, name string, w io.Writer, gparams *graphParamsType) error {
	groups := make(map[string]style.Group)
	for _, g := range styleGroups(n) {
		groups[g.Name] = g
	}
	var prev *pgroup
	for _, s := range gparams.StyleGroups {
		g, ok := groups[s]
		if !ok {
			continue
		}
		pg := &pgroup{ID: name + "_" + strings.ToLower(s), Group: g}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*pgroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *pgroup
}

func shortText(n *html.Node) string {
	s := "\"\\\""
	if len(n.Data) > 10 {
		s += n.Data[:10] + "...\\\"\""
	} else {
		s += n.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const elementTmpl = `{{ if .Label }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Declarations }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ html .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ .PropGroup.ID }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ (index . 0).ID }} -> {{ (index . 1).ID }} [dir=none weight=1 style="dashed"] ;
`
