package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/design2html/style"
)

// Num formats a number for CSS output, e.g. 12 => "12", 0.25 => "0.25".
// Output is rounded to 4 decimal places, so 10.123456 => "10.1235", and
// trailing zeros are dropped.
func Num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 { // avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px formats a length in pixels, e.g. 12 => "12px".
func Px(v float64) style.Property {
	return style.Property(Num(v) + "px")
}

// Pxs formats a list of lengths, separated by spaces, e.g. "1px 2px 0px 4px".
func Pxs(vs ...float64) style.Property {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = string(Px(v))
	}
	return style.Property(strings.Join(s, " "))
}

// Percent formats a fraction in [0…1] as a percentage, e.g. 0.5 => "50%".
func Percent(f float64) string {
	return Num(f*100) + "%"
}

// Deg formats an angle in degrees.
func Deg(a float64) string {
	return Num(a) + "deg"
}

// Translate creates a transform of value `translate(dx, dy)`.
func Translate(dx, dy float64) style.Property {
	return style.Property("translate(" + string(Px(dx)) + ", " + string(Px(dy)) + ")")
}
