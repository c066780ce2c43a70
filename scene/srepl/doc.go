/*
Package srepl/main provides an interactive command line tool for the scene
format. Lines entered at the prompt are parsed as scenes and displayed as a
structure tree, together with the solidified object map. It serves as a
sandbox for authoring scene strings and for inspecting how the parser splits
them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 the chilly authors

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chilly.scene'
func tracer() tracing.Trace {
	return tracing.Select("chilly.scene")
}
