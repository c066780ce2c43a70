/*
Package solid flattens a parsed scene into a dense object map.

The parser preserves the source structure verbatim; solidifying resolves the
frame-level conventions of the format: animations shorter than the scene's
global frame count repeat their last tile, a frame with an empty name repeats
the previous frame's tile, and a frame named "." clears its slot. Tile tags
are resolved to canonical names ("text_"/"glyph_" prefixes) against the
scene's default tile mode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 the chilly authors

*/
package solid

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/scene"
)

// tracer traces with key 'chilly.solid'.
func tracer() tracing.Trace {
	return tracing.Select("chilly.solid")
}

// TileDefault selects how untagged tile names are to be read: as plain
// tiles, as text, or as glyphs.
type TileDefault int8

const (
	DefaultTile TileDefault = iota
	DefaultText
	DefaultGlyph
)

// Tile is a solidified tile: its canonical name plus effective variants.
type Tile struct {
	Name     string
	Variants []scene.Variant
}

// ObjectMap is the dense form of a tilemap: every concrete tile of every
// frame, keyed by its 4-D position. Width and Height are the scene's maximum
// extents in stacks and rows, Length the global frame count.
type ObjectMap struct {
	Width, Height, Length int
	tiles                 *treemap.Map // chilly.Position → Tile
}

// positionComparator orders map keys row-major, so traversal is
// deterministic regardless of insertion order.
var positionComparator utils.Comparator = func(a, b interface{}) int {
	return a.(chilly.Position).Compare(b.(chilly.Position))
}

func newObjectMap() *ObjectMap {
	return &ObjectMap{tiles: treemap.NewWith(positionComparator)}
}

// At returns the tile at a position, if any.
func (m *ObjectMap) At(pos chilly.Position) (Tile, bool) {
	v, ok := m.tiles.Get(pos)
	if !ok {
		return Tile{}, false
	}
	return v.(Tile), true
}

// Size returns the number of concrete tiles in the map.
func (m *ObjectMap) Size() int {
	return m.tiles.Size()
}

// Each calls f for every tile in row-major position order.
func (m *ObjectMap) Each(f func(pos chilly.Position, tile Tile)) {
	it := m.tiles.Iterator()
	for it.Next() {
		f(it.Key().(chilly.Position), it.Value().(Tile))
	}
}

// Solidify flattens a parsed scene into an ObjectMap, applying frame
// padding, carry-forward and tag canonicalization. The input scene is not
// modified.
func Solidify(sc scene.Scene, mode TileDefault) *ObjectMap {
	m := newObjectMap()
	// Extents fold over the cells actually present, so trailing empty rows,
	// stacks and animations do not inflate the map.
	for y, row := range sc.Map {
		for x, stack := range row {
			for _, anim := range stack {
				if len(anim) == 0 {
					continue
				}
				if y+1 > m.Height {
					m.Height = y + 1
				}
				if x+1 > m.Width {
					m.Width = x + 1
				}
				if len(anim) > m.Length {
					m.Length = len(anim)
				}
			}
		}
	}
	for y, row := range sc.Map {
		for x, stack := range row {
			for z, anim := range stack {
				solidifyAnim(m, anim, chilly.Position{X: x, Y: y, Z: z}, mode)
			}
		}
	}
	tracer().Debugf("solidified scene: %d×%d, %d frame(s), %d tile(s)",
		m.Width, m.Height, m.Length, m.Size())
	return m
}

// solidifyAnim walks one animation over the scene's global frame count.
// last carries the previous frame's concrete tile; a nil last means the slot
// is clear and padding produces nothing.
func solidifyAnim(m *ObjectMap, anim scene.Anim, pos chilly.Position, mode TileDefault) {
	var last *Tile
	for t := 0; t < m.Length; t++ {
		pos.T = t
		if t >= len(anim) {
			// animation ran out: repeat the last concrete tile
			if last != nil {
				m.tiles.Put(pos, *last)
			}
			continue
		}
		c := anim[t]
		// Clearing and carrying key on the name alone; a tag on such a
		// frame has nothing to prefix and is ignored.
		switch {
		case c.Tile.Name == ".":
			// explicitly cleared
			last = nil
		case c.Tile.Name == "":
			if last == nil {
				continue // empty with nothing to repeat: stays clear
			}
			repeated := Tile{Name: last.Name, Variants: c.Variants}
			if len(repeated.Variants) == 0 {
				repeated.Variants = last.Variants
			}
			last = &repeated
			m.tiles.Put(pos, repeated)
		default:
			tile := Tile{
				Name:     CanonicalName(c.Tile, mode),
				Variants: c.Variants,
			}
			last = &tile
			m.tiles.Put(pos, tile)
		}
	}
}

// CanonicalName resolves a tile's tag against the scene's default mode.
// A tag matching the default mode reads the name as already canonical and
// only strips a redundant prefix; any other tag (or a non-plain default)
// prepends its prefix.
func CanonicalName(t scene.Tile, mode TileDefault) string {
	switch {
	case t.Tag == scene.TagText && mode == DefaultText:
		return strings.TrimPrefix(t.Name, "text_")
	case t.Tag == scene.TagText || (t.Tag == scene.TagNone && mode == DefaultText):
		return "text_" + t.Name
	case t.Tag == scene.TagGlyph && mode == DefaultGlyph:
		return strings.TrimPrefix(t.Name, "glyph_")
	case t.Tag == scene.TagGlyph || (t.Tag == scene.TagNone && mode == DefaultGlyph):
		return "glyph_" + t.Name
	}
	return t.Name
}
