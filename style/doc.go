/*
Package style holds CSS declarations as produced for a single element.

The compiler emits inline styles, i.e. flat lists of declarations without
selectors. Declarations keeps them in emission order and allows a property
to occur more than once; as in a CSS declaration block, the last occurence
wins (see Lookup).

CSS knows a whole lot of properties. For debugging output we split them up
into organisational groups (see GroupNameFromPropertyKey).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'design2html.style'
func tracer() tracing.Trace {
	return tracing.Select("design2html.style")
}
