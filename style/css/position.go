package css

import (
	"github.com/npillmayer/design2html/style"
)

// placement is the value of the CSS position property. Design data never
// asks for static or fixed placement.
type placement uint8

const (
	placementUnset placement = iota
	placementRelative
	placementAbsolute
)

var placementNames = map[placement]style.Property{
	placementRelative: "relative",
	placementAbsolute: "absolute",
}

// PositionT is an option type for CSS positions. The zero value is unset,
// as is the case for flex items, and results in no declarations.
type PositionT struct {
	kind    placement
	offsets []PositionOffset
}

// PositionOffset is a pixel offset from one edge of the containing block.
type PositionOffset struct {
	Px  float64
	Dir PosDir
}

// PosDir is the edge an offset refers to. Offsets from the right and bottom
// edges are not derived from design data.
type PosDir uint8

const (
	Left PosDir = iota
	Top
)

func (d PosDir) String() string {
	if d == Top {
		return "top"
	}
	return "left"
}

// Relative is a positioning context which keeps its place in the flow.
func Relative() PositionT {
	return PositionT{kind: placementRelative}
}

// Absolute places a box at offsets from the left and top edge of its
// containing block.
func Absolute(left, top float64) PositionT {
	return PositionT{
		kind:    placementAbsolute,
		offsets: []PositionOffset{{Px: left, Dir: Left}, {Px: top, Dir: Top}},
	}
}

// Declarations returns `position`, followed by `left` and `top` for non-zero
// offsets.
func (p PositionT) Declarations() style.Declarations {
	if p.kind == placementUnset {
		return nil
	}
	var d style.Declarations
	d.Add("position", placementNames[p.kind])
	for _, o := range p.offsets {
		if o.Px != 0 {
			d.Add(o.Dir.String(), Px(o.Px))
		}
	}
	return d
}

func (p PositionT) String() string {
	if p.kind == placementUnset {
		return "unset"
	}
	return placementNames[p.kind].String()
}

// --- Matching --------------------------------------------------------------

// Match starts a type switch on p:
//
//     var offs []PositionOffset
//     switch m := p.Match(); m {
//     case m.Absolute(&offs):
//         …
//     case m.Relative():
//         …
//     }
//
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher is a case selector for positions, created by PositionT.Match.
type PMatcher struct {
	pos PositionT
}

// Absolute matches absolute positions and extracts the offsets, if o is
// non-nil.
func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	if m == nil || m.pos.kind != placementAbsolute {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// Relative matches positioning contexts.
func (m *PMatcher) Relative() *PMatcher {
	if m == nil || m.pos.kind != placementRelative {
		return nil
	}
	return m
}

// PositionPatterns holds one result per kind of position.
type PositionPatterns[T any] struct {
	Unset    T
	Absolute T
	Relative T
	Default  T
}

// PMatchExpr selects from PositionPatterns. Create it with PositionPattern.
type PMatchExpr[T any] struct {
	pos PositionT
}

// PositionPattern is an expression form of Match, e.g. for log messages.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// OneOf returns the pattern for the kind of position.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case placementUnset:
		return patterns.Unset
	case placementAbsolute:
		return patterns.Absolute
	case placementRelative:
		return patterns.Relative
	}
	return patterns.Default
}
