package css

import (
	"strings"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/style"
)

// DisplayFlex is the display value of auto-layout containers.
const DisplayFlex style.Property = "flex"

// FlexDirection maps a layout mode to a CSS flex-direction. LayoutNone
// results in the null style.
func FlexDirection(m design.LayoutMode) style.Property {
	switch m {
	case design.Horizontal:
		return "row"
	case design.Vertical:
		return "column"
	}
	return style.NullStyle
}

var justifyContentMap = map[design.Align]style.Property{
	design.AlignMin:          "flex-start",
	design.AlignCenter:       "center",
	design.AlignMax:          "flex-end",
	design.AlignSpaceBetween: "space-between",
}

var alignItemsMap = map[design.Align]style.Property{
	design.AlignMin:    "flex-start",
	design.AlignCenter: "center",
	design.AlignMax:    "flex-end",
}

// JustifyContent maps a primary axis alignment to a CSS justify-content
// value. Unknown alignments are passed through in lower case.
func JustifyContent(a design.Align) style.Property {
	return mapped(justifyContentMap, a)
}

// AlignItems maps a counter axis alignment to a CSS align-items value.
// Unknown alignments are passed through in lower case.
func AlignItems(a design.Align) style.Property {
	return mapped(alignItemsMap, a)
}

func mapped[K ~string](m map[K]style.Property, k K) style.Property {
	if p, ok := m[k]; ok {
		return p
	}
	return style.Property(strings.ToLower(string(k)))
}

// --- Text ------------------------------------------------------------------

type textValue string

var textAlignMap = map[textValue]style.Property{
	"LEFT":      "left",
	"CENTER":    "center",
	"RIGHT":     "right",
	"JUSTIFIED": "justify",
}

var verticalAlignMap = map[textValue]style.Property{
	"TOP":    "top",
	"CENTER": "middle",
	"BOTTOM": "bottom",
}

var textDecorationMap = map[textValue]style.Property{
	"NONE":          "none",
	"UNDERLINE":     "underline",
	"STRIKETHROUGH": "line-through",
}

// TextAlign maps a horizontal text alignment to CSS text-align.
func TextAlign(a string) style.Property {
	return mapped(textAlignMap, textValue(a))
}

// VerticalAlign maps a vertical text alignment to CSS vertical-align.
func VerticalAlign(a string) style.Property {
	return mapped(verticalAlignMap, textValue(a))
}

// TextDecoration maps a text decoration to CSS text-decoration.
func TextDecoration(d string) style.Property {
	return mapped(textDecorationMap, textValue(d))
}
