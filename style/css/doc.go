/*
Package css maps design attributes to CSS property values.

Values produced by this package are plain style.Property strings, ready to be
put into a declaration list. Numbers are formatted in the shortest form which
round-trips, after snapping away floating point noise below 1/10000 of a unit;
lengths are given in CSS pixels, one pixel per design-space unit.

Colors are always rendered in the functional rgba() notation, with channels
scaled to [0…255] and alpha left in [0…1]:

    rgba(255, 0, 0, 0.5)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'design2html.style'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.style")
}
