package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + string(kv.Value) + ";"
}

// --- Declarations ----------------------------------------------------------

// Declarations is an ordered list of CSS declarations. Keys may repeat.
// nil is a legal (empty) list.
type Declarations []KeyValue

// Add appends a declaration. Empty values are dropped.
func (d *Declarations) Add(key string, value Property) {
	if value.IsEmpty() {
		return
	}
	*d = append(*d, KeyValue{Key: key, Value: value})
}

// Append appends all declarations of other.
func (d *Declarations) Append(other Declarations) {
	*d = append(*d, other...)
}

// Len returns the number of declarations, counting repeated keys.
func (d Declarations) Len() int {
	return len(d)
}

// Lookup returns the effective value of a property, i.e. the value of its
// last occurence.
func (d Declarations) Lookup(key string) (Property, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Key == key {
			return d[i].Value, true
		}
	}
	return NullStyle, false
}

// Count returns how often a property occurs.
func (d Declarations) Count(key string) int {
	c := 0
	for _, kv := range d {
		if kv.Key == key {
			c++
		}
	}
	return c
}

// Keys returns the property keys in emission order, repeated keys included.
func (d Declarations) Keys() []string {
	keys := make([]string, len(d))
	for i, kv := range d {
		keys[i] = kv.Key
	}
	return keys
}

// String renders the declarations as the content of a style attribute:
//
//     width: 10px; height: 20px;
//
func (d Declarations) String() string {
	var b strings.Builder
	for i, kv := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.String())
	}
	return b.String()
}

// Grouped splits the declarations into property groups, preserving order
// within each group. Groups are returned in the order of AllGroups.
func (d Declarations) Grouped() []Group {
	m := make(map[string]Declarations)
	for _, kv := range d {
		g := GroupNameFromPropertyKey(kv.Key)
		m[g] = append(m[g], kv)
	}
	var groups []Group
	for _, name := range AllGroups {
		if decls, ok := m[name]; ok {
			groups = append(groups, Group{Name: name, Declarations: decls})
		}
	}
	return groups
}

// --- CSS Property Groups ----------------------------------------------

// Group is a named subset of declarations.
type Group struct {
	Name         string
	Declarations Declarations
}

// Symbolic names for string literals, denoting property groups.
const (
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGPadding   = "Padding"
	PGColor     = "Color"
	PGBorder    = "Border"
	PGEffects   = "Effects"
	PGText      = "Text"
	PGX         = "X"
)

// AllGroups lists the property groups in the order declarations are
// emitted by the compiler.
var AllGroups = []string{
	PGDimension, PGDisplay, PGFlex, PGPadding, PGColor, PGBorder, PGEffects,
	PGText, PGX,
}

var groupNameFromPropertyKey = map[string]string{
	"width":            PGDimension,
	"height":           PGDimension,
	"transform":        PGDisplay,
	"position":         PGDisplay,
	"left":             PGDisplay,
	"top":              PGDisplay,
	"display":          PGDisplay,
	"visibility":       PGDisplay,
	"flex-direction":   PGFlex,
	"justify-content":  PGFlex,
	"align-items":      PGFlex,
	"gap":              PGFlex,
	"padding":          PGPadding,
	"background-color": PGColor,
	"background":       PGColor,
	"color":            PGColor,
	"border":           PGBorder,
	"border-top":       PGBorder,
	"border-right":     PGBorder,
	"border-bottom":    PGBorder,
	"border-left":      PGBorder,
	"border-radius":    PGBorder,
	"box-shadow":       PGEffects,
	"opacity":          PGEffects,
	"font-size":        PGText,
	"font-family":      PGText,
	"font-weight":      PGText,
	"line-height":      PGText,
	"letter-spacing":   PGText,
	"text-align":       PGText,
	"vertical-align":   PGText,
	"text-decoration":  PGText,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("gap") => "Flex"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}
