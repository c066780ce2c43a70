/*
Package scene parses the plaintext scene format.

A scene is a list of global flags followed by a tilemap. Rows of the tilemap
are separated by newlines, stacks within a row by runs of spaces, objects
within a stack by '&', animation frames of an object by '>'. Each frame is an
optionally tagged tile ('$' for text, '#' for glyph) followed by any number of
':'-led variants, each with an optional '/'-separated argument list. Flags are
'-' or '--' tokens with an optional '='-introduced '/'-separated value list.

Any character may be escaped with a preceding backslash, which strips it of
its delimiter meaning at every nesting level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 the chilly authors

*/
package scene

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chilly.scene'.
func tracer() tracing.Trace {
	return tracing.Select("chilly.scene")
}

// --- Document types ---------------------------------------------------------

// Scene is the root document produced by Parse: global flags plus a tilemap.
// It is immutable once produced; clients interpret names, the parser does not.
type Scene struct {
	Flags []Flag
	Map   Tilemap
}

// Flag is one global '-'/'--' directive, with an optional value list.
type Flag struct {
	Name string
	Args []string
}

func (f Flag) String() string {
	if len(f.Args) == 0 {
		return "--" + f.Name
	}
	return "--" + f.Name + "=" + strings.Join(f.Args, "/")
}

// Tilemap is the 2-D grid of map positions, top-to-bottom.
type Tilemap []Row

// Row holds the stacks of one tilemap row, left-to-right.
type Row []Stack

// Stack holds the objects occupying one map position, bottom-to-top in
// source order. The parser does not reorder.
type Stack []Anim

// Anim holds the animation frames of one object, in playback order.
type Anim []Cell

// Cell is a single animation frame: a tile (possibly the empty tile) plus
// variant modifiers. Variants may be present even when the tile is empty.
type Cell struct {
	Tile     Tile
	Variants []Variant
}

// IsEmpty reports whether the cell carries neither a tile nor variants.
func (c Cell) IsEmpty() bool {
	return c.Tile.IsEmpty() && len(c.Variants) == 0
}

func (c Cell) String() string {
	var b strings.Builder
	b.WriteString(c.Tile.String())
	for _, v := range c.Variants {
		b.WriteByte(':')
		b.WriteString(v.String())
	}
	return b.String()
}

// Tile is a named game element with a kind tag. The zero value is the empty
// tile, i.e. "no tile here".
type Tile struct {
	Tag  TileTag
	Name string
}

// IsEmpty reports whether the tile is the empty tile (no tag, no name).
func (t Tile) IsEmpty() bool {
	return t.Tag == TagNone && t.Name == ""
}

func (t Tile) String() string {
	if t.IsEmpty() {
		return "·"
	}
	return t.Tag.String() + t.Name
}

// TileTag is the kind tag of a tile.
type TileTag int8

// Tile kinds. TagText corresponds to the source marker '$', TagGlyph to '#'.
const (
	TagNone TileTag = iota
	TagText
	TagGlyph
)

func (tag TileTag) String() string {
	switch tag {
	case TagText:
		return "$"
	case TagGlyph:
		return "#"
	}
	return ""
}

// Variant is a named modifier on a cell, with optional arguments.
type Variant struct {
	Name string
	Args []string
}

func (v Variant) String() string {
	if len(v.Args) == 0 {
		return v.Name
	}
	return v.Name + "/" + strings.Join(v.Args, "/")
}
