/*
Package chilly is a toolkit for the "scene" plaintext format: a compact,
human-authored description of a 2-D game scene, consisting of global flags
followed by a tilemap of stacked, animated, tagged tiles.

■ scene: Package scene implements the layered recursive descent parser for
the format, producing a Scene document of flags and a tilemap.

■ solid: Package solid flattens a parsed scene into a dense object map,
padding animation frames and resolving tile tags to canonical names.

■ tiledb: Package tiledb loads tile metadata from per-world sprites.toml
files and resolves tile names against it.

The base package contains small value types which are used throughout the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 the chilly authors

*/
package chilly
