/*
Package resolve implements the style resolver: it maps a single design node
to the list of inline CSS declarations of its markup element.

A node is resolved in the context of its immediate parent only. Nodes are
wrapped into Frames, which are linked into a tree.Node side table by the
emitter; the design tree itself is never touched. Resolving a child may
flag its parent frame as a positioning context (see HasPositioningContext),
therefore a parent must be resolved after all of its children.

Declarations are produced in a fixed order:

    size, transform, position, flex container, padding,
    background, text color, border, border radius, shadow, opacity,
    typography

Missing attributes never result in an error, they simply omit the
corresponding declaration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'design2html.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.resolve")
}
