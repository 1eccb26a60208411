// Package source provides the position and span types shared by the lexer,
// parser, and error-injection engine.
package source

import "fmt"

// Position is a location in source text. Line and Column are 1-based;
// Offset is the 0-based byte offset from the start of the source.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// StartOfFile returns the position of the first byte of a source buffer.
func StartOfFile() Position {
	return Position{Line: 1, Column: 1, Offset: 0}
}

// IsValid returns true if the position points into real source (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Advance returns the position after consuming r. A newline resets the
// column to 1 and increments the line; every rune advances the byte offset
// by its encoded size.
func (p Position) Advance(r rune, size int) Position {
	p.Offset += size
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}

// Before reports whether p comes before other in offset order.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
