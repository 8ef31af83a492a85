/*
Package emit compiles a design tree into HTML markup with inline styles.

Every visible node of a recognized kind becomes one element:

    container kinds       div, wrapping the markup of its children
    rectangle, ellipse,   div
    polygon, star, line,
    slice, boolean op
    vector                div, a hidden stand-in with a filler background
    text                  span, containing the characters of the node

Elements carry the node name as attribute `data-node-name`, the lower-cased
design type as class and the resolved declarations as `style` attribute.
Invisible nodes and nodes of unknown kind produce no markup at all.

The compiler walks the design tree top-down, building a side table of
frames (see package resolve), and resolves a node's style only after all of
its children have been emitted, as children may turn their parent into a
positioning context. The design tree is never modified; compiling the same
tree twice yields identical markup.

Markup is created as golang.org/x/net/html nodes and serialized by
html.Render, which takes care of escaping.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'design2html.emit'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.emit")
}
