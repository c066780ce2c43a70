package scene

import "strings"

// The delimiter blacklist is identical at every nesting level; structural
// disambiguation comes from which delimiters the calling level has already
// consumed, not from narrowing the set. Control bytes below 0x20 never form
// value content unless escaped.
func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '&', '>', '=', ':', '/':
		return true
	}
	return b < 0x20
}

// scanner is a cursor over an immutable input buffer. The cursor only ever
// moves forward; no level of the grammar needs backtracking.
type scanner struct {
	input string
	pos   int // byte index into input
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// peek returns the byte at the cursor, or 0 at end of input. 0 compares
// unequal to every delimiter, so callers may match on the result directly.
func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

// skip advances the cursor over one byte the caller has already peeked.
func (s *scanner) skip() {
	s.pos++
}

// scanValue consumes a run of value content and returns it de-escaped.
// The run ends at end of input or at the first unescaped delimiter; the
// cursor is left on the delimiter, not behind it. A backslash consumes the
// byte following it and emits that byte verbatim, whatever it is; the
// backslash itself never reaches the output. A backslash at the very end of
// the input is consumed and contributes nothing.
//
// The result may legally be empty: this is how absent tags, absent names
// and fully empty cells are represented.
//
// Scanning is byte-wise. Multi-byte UTF-8 sequences pass through unharmed
// because none of their bytes fall into the delimiter set, and escaping the
// first byte of a sequence leaves its continuation bytes as plain content.
func (s *scanner) scanValue() string {
	var b strings.Builder
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == '\\' {
			s.pos++
			if s.pos < len(s.input) {
				b.WriteByte(s.input[s.pos])
				s.pos++
			}
			continue
		}
		if isDelim(c) {
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return b.String()
}

// scanList scans a '/'-separated list of values: one value, then another for
// every unescaped '/' that follows. Flag values and variant arguments share
// this rule.
func (s *scanner) scanList() []string {
	list := []string{s.scanValue()}
	for s.peek() == '/' {
		s.skip()
		list = append(list, s.scanValue())
	}
	return list
}
