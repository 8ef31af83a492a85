/*
Package tree implements a small parent-linked tree type.

The compiler needs parent links while walking a design tree, but design
nodes as delivered by the design file API carry no back-references, and the
input tree must not be mutated. Package tree provides the side table: a tree
of nodes, each carrying a payload of type parameter T, built during a single
top-down pass and thrown away afterwards.

Nodes are not synchronized. A tree is meant to be built and read by a single
goroutine; independent trees may of course live in different goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'design2html.tree'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.tree")
}
