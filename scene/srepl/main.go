package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/scene"
	"github.com/balt-dev/chilly/solid"
	"github.com/balt-dev/chilly/tiledb"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 the chilly authors

*/

// main() starts an interactive CLI where users may enter scene strings.
// Every line is parsed as a complete scene and printed as a structure tree,
// followed by a summary of the solidified object map. A scene file (which
// may contain multiple rows) can be inspected with -load, and -tiles points
// at an asset root whose tile database is used to check which tile names
// resolve.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	loadf := flag.String("load", "", "Scene file to parse on startup")
	tilesd := flag.String("tiles", "", "Asset root with world directories")
	modef := flag.String("mode", "tile", "Default tile mode [tile|text|glyph]")
	flag.Parse()
	pterm.Info.Println("Welcome to the chilly scene REPL")
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	intp := &Intp{mode: tileMode(*modef)}
	if *tilesd != "" {
		intp.db = tiledb.New()
		if err := intp.db.LoadCustom(*tilesd); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		fp, _ := intp.db.Fingerprint()
		tracer().Infof("Tile database loaded: %d tile(s), fingerprint %s", len(intp.db.Tiles), fp)
	}
	//
	// set up REPL
	repl, err := readline.New("scene> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.Show(input)
	}
	if *loadf != "" {
		intp.loadSceneFile(*loadf)
	}
	//
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func tileMode(m string) solid.TileDefault {
	switch m {
	case "text":
		return solid.DefaultText
	case "glyph":
		return solid.DefaultGlyph
	}
	return solid.DefaultTile
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	db   *tiledb.Database
	mode solid.TileDefault
}

func (intp *Intp) loadSceneFile(filename string) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open scene file: %s", filename)
		return
	}
	intp.Show(strings.TrimRight(string(buf), "\n"))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Show(line)
	}
	println("Good bye!")
}

// Show parses a scene string and displays its structure.
func (intp *Intp) Show(input string) {
	sc, err := scene.Parse(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	for _, f := range sc.Flags {
		pterm.Info.Println("flag " + f.String())
	}
	if len(sc.Map) == 0 {
		pterm.Info.Println("(empty tilemap)")
		return
	}
	root := pterm.NewTreeFromLeveledList(sceneTree(sc))
	root.Text = "scene"
	pterm.DefaultTree.WithRoot(root).Render()
	//
	m := solid.Solidify(sc, intp.mode)
	pterm.Info.Println(fmt.Sprintf("solidified: %d×%d map, %d frame(s), %d tile(s)",
		m.Width, m.Height, m.Length, m.Size()))
	if intp.db != nil {
		intp.checkTiles(m)
	}
}

// checkTiles reports every solidified tile name the database cannot resolve.
func (intp *Intp) checkTiles(m *solid.ObjectMap) {
	missing := map[string]bool{}
	m.Each(func(_ chilly.Position, tile solid.Tile) {
		if _, ok := intp.db.Lookup(tile.Name); !ok {
			missing[tile.Name] = true
		}
	})
	for name := range missing {
		pterm.Error.Println(fmt.Sprintf("tile %q is not in the database", name))
	}
}

// sceneTree flattens the nesting levels of a parsed tilemap into a leveled
// list for display.
func sceneTree(sc scene.Scene) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for y, row := range sc.Map {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("row %d", y)})
		for x, stack := range row {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("stack %d", x)})
			for z, anim := range stack {
				ll = append(ll, pterm.LeveledListItem{Level: 2, Text: fmt.Sprintf("object %d", z)})
				for t, c := range anim {
					ll = append(ll, pterm.LeveledListItem{
						Level: 3,
						Text:  fmt.Sprintf("frame %d: %s", t, c.String()),
					})
				}
			}
		}
	}
	return ll
}
