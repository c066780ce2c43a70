package scene

import (
	"fmt"

	"github.com/balt-dev/chilly"
)

// SyntaxError reports input that could not be consumed as part of a scene.
// Every production of the grammar has a valid empty form, so the only way a
// parse can fail is trailing input that no production accepts.
type SyntaxError struct {
	Offset int         // byte index of the offending input
	Line   int         // 1-based
	Column int         // 1-based, in bytes
	Span   chilly.Span // the unconsumed trailing input range
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d (byte %d): trailing input is not part of a scene",
		e.Line, e.Column, e.Offset)
}

// Parse parses a complete scene document: flags first, then the tilemap,
// requiring the whole input to be consumed. It either returns a complete
// Scene or a *SyntaxError locating the first unconsumable byte; there is no
// partial result. The empty input is a valid scene with no flags and no rows.
//
// Parse is a pure function over the input; independent parses may run
// concurrently.
func Parse(input string) (Scene, error) {
	s := &scanner{input: input}
	sc := Scene{}
	sc.Flags = s.parseFlags()
	sc.Map = s.parseTilemap()
	if !s.eof() {
		err := s.syntaxError()
		tracer().Debugf("scene parse failed: %v", err)
		return Scene{}, err
	}
	tracer().Debugf("parsed scene: %d flag(s), %d row(s)", len(sc.Flags), len(sc.Map))
	return sc, nil
}

func (s *scanner) syntaxError() *SyntaxError {
	line, col := 1, 1
	for i := 0; i < s.pos; i++ {
		if s.input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{
		Offset: s.pos,
		Line:   line,
		Column: col,
		Span:   chilly.Span{uint64(s.pos), uint64(len(s.input))},
	}
}

// --- Flags ------------------------------------------------------------------

func isFlagSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// parseFlags parses zero or more whitespace-separated flags. Whitespace after
// the final flag belongs to the flags section; the tilemap begins at the first
// token not led by an unescaped '-'.
func (s *scanner) parseFlags() []Flag {
	var flags []Flag
	for s.peek() == '-' {
		s.skip()
		if s.peek() == '-' {
			s.skip()
		}
		f := Flag{Name: s.scanValue()}
		if s.peek() == '=' {
			s.skip()
			f.Args = s.scanList()
		}
		flags = append(flags, f)
		if !isFlagSpace(s.peek()) {
			break // trailing flag with no separator
		}
		for isFlagSpace(s.peek()) {
			s.skip()
		}
	}
	return flags
}

// --- Tilemap ----------------------------------------------------------------

// Each level stops at its own delimiter plus every delimiter of the levels
// above it. An empty segment yields the empty sequence for that level, which
// is a first-class value, never an error.

// atCRLF reports a "\r\n" pair at the cursor. A row separator is either a
// bare newline or a CRLF pair; a lone CR is not a separator and surfaces as
// trailing input at the root.
func (s *scanner) atCRLF() bool {
	return s.peek() == '\r' && s.pos+1 < len(s.input) && s.input[s.pos+1] == '\n'
}

func (s *scanner) atRowEnd() bool {
	return s.eof() || s.peek() == '\n' || s.atCRLF()
}

func (s *scanner) atStackEnd() bool {
	return s.peek() == ' ' || s.atRowEnd()
}

func (s *scanner) atAnimEnd() bool {
	return s.peek() == '&' || s.atStackEnd()
}

func (s *scanner) parseTilemap() Tilemap {
	if s.eof() {
		return nil // empty input: zero rows
	}
	m := Tilemap{s.parseRow()}
	for {
		if s.peek() == '\n' {
			s.skip()
		} else if s.atCRLF() {
			s.skip()
			s.skip()
		} else {
			break
		}
		m = append(m, s.parseRow())
	}
	return m
}

func (s *scanner) parseRow() Row {
	if s.atRowEnd() {
		return nil
	}
	r := Row{s.parseStack()}
	for s.peek() == ' ' {
		for s.peek() == ' ' { // a run of spaces is one separator
			s.skip()
		}
		r = append(r, s.parseStack())
	}
	return r
}

func (s *scanner) parseStack() Stack {
	if s.atStackEnd() {
		return nil
	}
	st := Stack{s.parseAnim()}
	for s.peek() == '&' {
		s.skip()
		st = append(st, s.parseAnim())
	}
	return st
}

func (s *scanner) parseAnim() Anim {
	if s.atAnimEnd() {
		return nil
	}
	a := Anim{s.parseCell()}
	for s.peek() == '>' {
		s.skip()
		a = append(a, s.parseCell())
	}
	return a
}

// --- Cells ------------------------------------------------------------------

// parseCell never fails: at a delimiter it produces the canonical empty cell,
// which is distinct from the absence of a cell.
func (s *scanner) parseCell() Cell {
	c := Cell{Tile: s.parseTile()}
	c.Variants = s.parseVariantList()
	return c
}

func (s *scanner) parseTile() Tile {
	t := Tile{}
	switch s.peek() {
	case '$':
		t.Tag = TagText
		s.skip()
	case '#':
		t.Tag = TagGlyph
		s.skip()
	}
	t.Name = s.scanValue()
	return t
}

func (s *scanner) parseVariantList() []Variant {
	var vs []Variant
	for s.peek() == ':' {
		s.skip()
		vs = append(vs, s.parseVariant())
	}
	return vs
}

func (s *scanner) parseVariant() Variant {
	v := Variant{Name: s.scanValue()}
	if s.peek() == '/' {
		s.skip()
		v.Args = s.scanList()
	}
	return v
}
