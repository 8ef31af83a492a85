package design

import "github.com/npillmayer/design2html/maybe"

// Color is an RGBA color with components in [0…1].
type Color struct {
	R, G, B, A float64
}

// Paint is a fill or stroke description. The set of variants is closed.
type Paint interface {
	isPaint()
}

// Solid is a single color paint. A paint opacity, if present, takes
// precedence over the color's alpha channel.
type Solid struct {
	Color   Color
	Opacity maybe.Maybe[float64]
}

// ColorStop is a color at a position in [0…1] of a gradient.
type ColorStop struct {
	Position float64
	Color    Color
}

// LinearGradient is a linear gradient. Its direction is given by the
// vector from Handles[0] to Handles[1]; Handles[2] controls the width and
// is not used for rendering.
type LinearGradient struct {
	Stops   []ColorStop
	Handles []Point
}

// RadialGradient is a radial gradient. It is always rendered centered.
type RadialGradient struct {
	Stops   []ColorStop
	Handles []Point
}

// AngularGradient is recognized but not rendered.
type AngularGradient struct {
	Stops []ColorStop
}

// DiamondGradient is recognized but not rendered.
type DiamondGradient struct {
	Stops []ColorStop
}

// ImagePaint references an image by the design tool's image reference.
type ImagePaint struct {
	Ref       string
	ScaleMode string
}

// UnknownPaint keeps the type name of an unrecognized paint.
type UnknownPaint struct {
	Type string
}

func (Solid) isPaint()           {}
func (LinearGradient) isPaint()  {}
func (RadialGradient) isPaint()  {}
func (AngularGradient) isPaint() {}
func (DiamondGradient) isPaint() {}
func (ImagePaint) isPaint()      {}
func (UnknownPaint) isPaint()    {}

// RGB creates an opaque solid paint.
func RGB(r, g, b float64) Solid {
	return Solid{Color: Color{R: r, G: g, B: b, A: 1}}
}

// RGBA creates a solid paint with alpha.
func RGBA(r, g, b, a float64) Solid {
	return Solid{Color: Color{R: r, G: g, B: b, A: a}}
}

// First returns the first paint of a list, if any.
func First(paints []Paint) (Paint, bool) {
	if len(paints) == 0 {
		return nil, false
	}
	return paints[0], true
}
