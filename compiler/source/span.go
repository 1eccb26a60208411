package source

import "fmt"

// Span is a half-open range [Start, End) in source text. End never precedes
// Start in offset order.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NewSpan builds a span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// PointSpan returns an empty span at a single position. Used for
// diagnostics that mark a location rather than a range (e.g. an
// end-of-input report).
func PointSpan(p Position) Span {
	return Span{Start: p, End: p}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start.Offset < s.Start.Offset {
		s.Start = other.Start
	}
	if other.End.Offset > s.End.Offset {
		s.End = other.End
	}
	return s
}

// Text slices the originating source. The span borrows into src; callers
// must not hold the result past the lifetime of the buffer.
func (s Span) Text(src string) string {
	if s.Start.Offset < 0 || s.End.Offset > len(src) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return src[s.Start.Offset:s.End.Offset]
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
