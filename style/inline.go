package style

import (
	"github.com/aymerick/douceur/parser"
)

// ParseInline parses the content of a style attribute, e.g.
//
//     position: absolute; left: 10px;
//
// Declaration order is preserved, as are repeated properties. A trailing
// "!important" is dropped from the value.
func ParseInline(s string) (Declarations, error) {
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		tracer().Errorf("cannot parse inline style %q: %v", s, err)
		return nil, err
	}
	d := make(Declarations, 0, len(decls))
	for _, decl := range decls {
		d = append(d, KeyValue{Key: decl.Property, Value: Property(decl.Value)})
	}
	return d, nil
}
