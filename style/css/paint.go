package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/maybe"
	"github.com/npillmayer/design2html/style"
)

// Transparent is the CSS value for paints which cannot be rendered.
const Transparent style.Property = "transparent"

// RGBA formats a color as `rgba(r, g, b, a)`. If opacity is present, it
// replaces the alpha channel of c.
func RGBA(c design.Color, opacity maybe.Maybe[float64]) style.Property {
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(channel(c.R))
	b.WriteString(", ")
	b.WriteString(channel(c.G))
	b.WriteString(", ")
	b.WriteString(channel(c.B))
	b.WriteString(", ")
	b.WriteString(Num(opacity.WithDefault(c.A)))
	b.WriteByte(')')
	return style.Property(b.String())
}

func channel(x float64) string {
	return strconv.Itoa(int(math.Round(x * 255)))
}

// Paint resolves a paint to a CSS color or image value. Image references
// are looked up in images; references without an entry are used verbatim.
// Paints without a CSS equivalent resolve to `transparent`.
func Paint(p design.Paint, images map[string]string) style.Property {
	switch paint := p.(type) {
	case design.Solid:
		return RGBA(paint.Color, paint.Opacity)
	case design.LinearGradient:
		return LinearGradient(paint)
	case design.RadialGradient:
		return RadialGradient(paint)
	case design.ImagePaint:
		return URL(paint.Ref, images)
	case design.AngularGradient, design.DiamondGradient:
		tracer().Debugf("gradient type %T not supported", p)
	default:
		tracer().Debugf("cannot resolve paint %v", p)
	}
	return Transparent
}

// GradientAngle returns the angle in degrees of the vector from the first to
// the second gradient handle. The angle is not normalized.
func GradientAngle(handles []design.Point) float64 {
	if len(handles) < 2 {
		return 0
	}
	dx := handles[1].X - handles[0].X
	dy := handles[1].Y - handles[0].Y
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// LinearGradient formats a linear gradient, e.g.
//
//     linear-gradient(90deg, rgba(0, 0, 0, 1) 0%, rgba(255, 255, 255, 1) 100%)
//
func LinearGradient(g design.LinearGradient) style.Property {
	return gradient("linear-gradient", Deg(GradientAngle(g.Handles)), g.Stops)
}

// RadialGradient formats a centered circular gradient.
func RadialGradient(g design.RadialGradient) style.Property {
	return gradient("radial-gradient", "circle", g.Stops)
}

func gradient(fn string, shape string, stops []design.ColorStop) style.Property {
	var b strings.Builder
	b.WriteString(fn)
	b.WriteByte('(')
	b.WriteString(shape)
	for _, stop := range stops {
		b.WriteString(", ")
		b.WriteString(string(RGBA(stop.Color, maybe.Nothing[float64]())))
		b.WriteByte(' ')
		b.WriteString(Percent(stop.Position))
	}
	b.WriteByte(')')
	return style.Property(b.String())
}

// URL formats an image reference as `url(…)`, resolving it through images
// first.
func URL(ref string, images map[string]string) style.Property {
	if u, ok := images[ref]; ok && u != "" {
		ref = u
	}
	return style.Property("url(" + ref + ")")
}

// --- Borders and effects ---------------------------------------------------

// Border formats a solid border, e.g. `2px solid rgba(0, 0, 0, 1)`.
func Border(weight float64, color style.Property) style.Property {
	return Px(weight) + " solid " + color
}

// BoxShadow formats a drop or inner shadow effect. Other effect types result
// in the null style.
func BoxShadow(e design.Effect) style.Property {
	var inset string
	switch e.Type {
	case design.DropShadow:
	case design.InnerShadow:
		inset = "inset "
	default:
		return style.NullStyle
	}
	lengths := []float64{e.Offset.X, e.Offset.Y, e.Radius}
	if spread, ok := e.Spread.Get(); ok {
		lengths = append(lengths, spread)
	}
	return style.Property(inset) + Pxs(lengths...) + " " + RGBA(e.Color, maybe.Nothing[float64]())
}
