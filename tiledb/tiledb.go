/*
Package tiledb holds tile metadata external to the parser.

A database maps tile names, as they appear in parsed scenes, to sprite
metadata. Data is loaded from world directories: every subdirectory of the
asset root carries a sprites.toml describing its tiles, and each loaded tile
is stamped with the directory it came from.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 the chilly authors

*/
package tiledb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chilly.tiledb'.
func tracer() tracing.Trace {
	return tracing.Select("chilly.tiledb")
}

// TileData holds all of the data a tile has.
type TileData struct {
	// Color of the tile, paletted or direct RGB.
	Color Color `toml:"color"`
	// Sprite is the sprite filename of the tile.
	Sprite string `toml:"sprite"`
	// Directory is the world directory the tile was loaded from. It is
	// stamped at load time and not read from sprites.toml.
	Directory string `toml:"-"`
	// Tiling is the sprite sheet layout the tile uses.
	Tiling Tiling `toml:"tiling"`
	// Author is who created the tile.
	Author string `toml:"author"`
	// TileIndex is the tile's index into the game's internal tile grid.
	TileIndex []uint8 `toml:"tile_index"`
	// ObjectID is the tile's internal object representation, if any.
	ObjectID string `toml:"object_id"`
	// Layer is the z layer of the tile, only used in levels.
	Layer *uint8 `toml:"layer"`
}

// Tiling enumerates sprite sheet layouts.
type Tiling int8

const (
	// TilingNone: only one sprite.
	TilingNone Tiling = -1
	// TilingDirectional: sprites for all four directions.
	TilingDirectional Tiling = 0
	// TilingAutoTiled: sprites for connecting to tiles of the same type.
	TilingAutoTiled Tiling = 1
	// TilingCharacter: direction sprites with animation and sleep frames.
	TilingCharacter Tiling = 2
	// TilingAnimDir: sprites with both animation and direction.
	TilingAnimDir Tiling = 3
	// TilingAnimated: animation sprites only.
	TilingAnimated Tiling = 4
)

func (tl Tiling) String() string {
	switch tl {
	case TilingNone:
		return "none"
	case TilingDirectional:
		return "directional"
	case TilingAutoTiled:
		return "autotiled"
	case TilingCharacter:
		return "character"
	case TilingAnimDir:
		return "animdir"
	case TilingAnimated:
		return "animated"
	}
	return fmt.Sprintf("Tiling(%d)", int8(tl))
}

// Database maps tile names to their data. It is expected to grow very large;
// pass it by pointer and do not copy it.
type Database struct {
	Tiles map[string]TileData
}

// New creates an empty database.
func New() *Database {
	return &Database{Tiles: make(map[string]TileData)}
}

// Lookup resolves a canonical tile name.
func (db *Database) Lookup(name string) (TileData, bool) {
	d, ok := db.Tiles[name]
	return d, ok
}

// LoadCustom loads tile data from every world subdirectory of root.
func (db *Database) LoadCustom(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("cannot read asset root (%w)", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := db.loadWorld(filepath.Join(root, entry.Name()), entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

// loadWorld decodes one world's sprites.toml and stamps every tile with the
// world's directory name.
func (db *Database) loadWorld(path, world string) error {
	var tiles map[string]TileData
	if _, err := toml.DecodeFile(filepath.Join(path, "sprites.toml"), &tiles); err != nil {
		return fmt.Errorf("cannot load world %q (%w)", world, err)
	}
	for name, data := range tiles {
		data.Directory = world
		db.Tiles[name] = data
	}
	tracer().Infof("loaded %d tile(s) from world %q", len(tiles), world)
	return nil
}

// Fingerprint returns a stable hash over the database contents, usable as a
// cache key for derived artifacts.
func (db *Database) Fingerprint() (string, error) {
	return structhash.Hash(db.Tiles, 1)
}
