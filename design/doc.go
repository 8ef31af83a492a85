/*
Package design models the node tree of a visual design document.

A design document, as delivered by a design tool's file API, is a tree of
frames, shapes and text layers. Every node has geometry (an absolute bounding
box and a relative transform), paint (fills, strokes, effects), optional
auto-layout attributes, and, for text layers, typography.

Node kinds

The design tool knows many node types. For the purpose of producing markup,
frames, groups, components, instances, sections and canvases behave
identically: they are containers, differing only in their label. Kind
collapses the type names into a small set of variants, and Node.Label keeps
the original type name for use as a CSS class.

Not every attribute is legal for every kind. Kind answers the questions
"may this node have children", "does it expose per-corner radii" and "is
this a text layer"; clients should ask Kind instead of probing attributes.

Paint

Paints are a closed set of variants (Solid, LinearGradient, RadialGradient,
AngularGradient, DiamondGradient, ImagePaint, UnknownPaint), all
implementing interface Paint. Clients use a type switch.

Decoding

DecodeNode, DecodeFile and DecodeNodesResponse read the JSON format of the
design file API. Decoding never rejects a node for unknown attributes or
unknown types; these degrade to Unknown kinds and UnknownPaint values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package design

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'design2html.design'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.design")
}
