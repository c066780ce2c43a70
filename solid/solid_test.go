package solid

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/scene"
)

func mustParse(t *testing.T, input string) scene.Scene {
	t.Helper()
	sc, err := scene.Parse(input)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", input, err)
	}
	return sc
}

func TestSolidifyExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	for i, test := range []struct {
		input                 string
		width, height, length int
	}{
		{input: "a b c\nd>e&f", width: 3, height: 2, length: 2},
		// empty rows, stacks and animations do not count towards extents
		{input: "a\n\n", width: 1, height: 1, length: 1},
		{input: "a \nb", width: 1, height: 2, length: 1},
		{input: "a&", width: 1, height: 1, length: 1},
		{input: "\n\n", width: 0, height: 0, length: 0},
	} {
		m := Solidify(mustParse(t, test.input), DefaultTile)
		if m.Width != test.width || m.Height != test.height || m.Length != test.length {
			t.Errorf("test %d: expected extents %d×%d×%d, is %d×%d×%d", i,
				test.width, test.height, test.length, m.Width, m.Height, m.Length)
		}
	}
}

func TestSolidifyPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	// "c" has one frame but the scene has two: it repeats at t=1
	m := Solidify(mustParse(t, "a>b c"), DefaultTile)
	for i, test := range []struct {
		pos  chilly.Position
		name string
	}{
		{pos: chilly.Position{X: 0, Y: 0, Z: 0, T: 0}, name: "a"},
		{pos: chilly.Position{X: 0, Y: 0, Z: 0, T: 1}, name: "b"},
		{pos: chilly.Position{X: 1, Y: 0, Z: 0, T: 0}, name: "c"},
		{pos: chilly.Position{X: 1, Y: 0, Z: 0, T: 1}, name: "c"},
	} {
		tile, ok := m.At(test.pos)
		if !ok {
			t.Fatalf("test %d: expected a tile at %v, found none", i, test.pos)
		}
		if tile.Name != test.name {
			t.Errorf("test %d: expected %q at %v, is %q", i, test.name, test.pos, tile.Name)
		}
	}
}

func TestSolidifyCarryForward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	// an empty frame repeats the previous tile, inheriting its variants
	m := Solidify(mustParse(t, "a:x>"), DefaultTile)
	tile, ok := m.At(chilly.Position{T: 1})
	if !ok {
		t.Fatal("expected frame 1 to repeat \"a\", found nothing")
	}
	if tile.Name != "a" {
		t.Errorf("expected repeated tile \"a\", is %q", tile.Name)
	}
	want := []scene.Variant{{Name: "x"}}
	if !reflect.DeepEqual(tile.Variants, want) {
		t.Errorf("expected inherited variants %v, is %v", want, tile.Variants)
	}
	// an empty frame with its own variants keeps them
	m = Solidify(mustParse(t, "a:x>:y"), DefaultTile)
	tile, _ = m.At(chilly.Position{T: 1})
	if len(tile.Variants) != 1 || tile.Variants[0].Name != "y" {
		t.Errorf("expected own variant \"y\", is %v", tile.Variants)
	}
}

func TestSolidifyClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	// "." clears the slot: nothing at t=1 and nothing padded at t=2
	m := Solidify(mustParse(t, "a>.>. b>c>d"), DefaultTile)
	if _, ok := m.At(chilly.Position{T: 0}); !ok {
		t.Error("expected \"a\" at frame 0")
	}
	for _, tt := range []int{1, 2} {
		if tile, ok := m.At(chilly.Position{T: tt}); ok {
			t.Errorf("expected frame %d to be clear, has %q", tt, tile.Name)
		}
	}
}

func TestSolidifyTaggedEmptyNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	// a tagged frame with an empty name still carries the previous tile
	m := Solidify(mustParse(t, "a>$"), DefaultTile)
	tile, ok := m.At(chilly.Position{T: 1})
	if !ok {
		t.Fatal("expected frame 1 to repeat \"a\", found nothing")
	}
	if tile.Name != "a" {
		t.Errorf("expected repeated tile \"a\", is %q", tile.Name)
	}
	// a tagged "." still clears
	m = Solidify(mustParse(t, "a>$. b>c"), DefaultTile)
	if tile, ok := m.At(chilly.Position{T: 1}); ok {
		t.Errorf("expected frame 1 to be clear, has %q", tile.Name)
	}
}

func TestCanonicalName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	for i, test := range []struct {
		tile scene.Tile
		mode TileDefault
		want string
	}{
		{tile: scene.Tile{Name: "baba"}, mode: DefaultTile, want: "baba"},
		{tile: scene.Tile{Tag: scene.TagText, Name: "baba"}, mode: DefaultTile, want: "text_baba"},
		{tile: scene.Tile{Tag: scene.TagGlyph, Name: "baba"}, mode: DefaultTile, want: "glyph_baba"},
		{tile: scene.Tile{Name: "baba"}, mode: DefaultText, want: "text_baba"},
		{tile: scene.Tile{Tag: scene.TagText, Name: "baba"}, mode: DefaultText, want: "baba"},
		{tile: scene.Tile{Tag: scene.TagText, Name: "text_baba"}, mode: DefaultText, want: "baba"},
		{tile: scene.Tile{Tag: scene.TagGlyph, Name: "baba"}, mode: DefaultGlyph, want: "baba"},
		{tile: scene.Tile{Name: "baba"}, mode: DefaultGlyph, want: "glyph_baba"},
	} {
		if got := CanonicalName(test.tile, test.mode); got != test.want {
			t.Errorf("test %d: expected %q, is %q", i, test.want, got)
		}
	}
}

func TestObjectMapOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chilly.solid")
	defer teardown()
	//
	m := Solidify(mustParse(t, "a b\nc&d"), DefaultTile)
	var visited []chilly.Position
	m.Each(func(pos chilly.Position, _ Tile) {
		visited = append(visited, pos)
	})
	if len(visited) != 4 {
		t.Fatalf("expected 4 tiles, have %d", len(visited))
	}
	for i := 1; i < len(visited); i++ {
		if visited[i-1].Compare(visited[i]) >= 0 {
			t.Errorf("expected row-major order, %v is not before %v", visited[i-1], visited[i])
		}
	}
}
