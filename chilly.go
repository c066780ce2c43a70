package chilly

import "fmt"

// --- Positions --------------------------------------------------------------

// Position locates one object within a scene. X is the stack's index within
// its row, Y the row's index within the tilemap, Z the object's depth within
// its stack, and T the animation frame.
type Position struct {
	X, Y, Z, T int
}

// Compare orders positions row-major: by Y, then X, then Z, then T.
// It returns a negative number, zero, or a positive number as p is before,
// equal to, or after other.
func (p Position) Compare(other Position) int {
	if d := p.Y - other.Y; d != 0 {
		return d
	}
	if d := p.X - other.X; d != 0 {
		return d
	}
	if d := p.Z - other.Z; d != 0 {
		return d
	}
	return p.T - other.T
}

func (p Position) String() string {
	return fmt.Sprintf("{%d, %d, %d, %d}", p.X, p.Y, p.Z, p.T)
}

// --- Spans ------------------------------------------------------------------

// Span is a small type for capturing a range of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
