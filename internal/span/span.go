// Package span provides located views over source text. Tag values and
// diagnostics are both anchored to spans.
package span

import (
	"fmt"
	"strings"
)

// Span is an immutable view over Text[start:end] of a Source. The zero
// value is "absent" and is distinct from an empty span.
type Span struct {
	src   *Source
	start uint32
	end   uint32
}

// IsValid reports whether the span points into a source.
func (s Span) IsValid() bool {
	return s.src != nil
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.start == s.end
}

func (s Span) Start() int { return int(s.start) }
func (s Span) End() int   { return int(s.end) }
func (s Span) Len() int   { return int(s.end - s.start) }

// Source returns the buffer the span borrows from.
func (s Span) Source() *Source {
	return s.src
}

// Text returns the covered text.
func (s Span) Text() string {
	if s.src == nil {
		return ""
	}
	return s.src.Text[s.start:s.end]
}

// Sub returns the span covering [start, end) relative to the receiver.
func (s Span) Sub(start, end int) Span {
	if start < 0 || end < start || end > s.Len() {
		panic(fmt.Errorf("sub-span %d..%d out of range (len %d)", start, end, s.Len()))
	}
	return s.src.Span(s.Start()+start, s.Start()+end)
}

// TrimSpace narrows the span so it does not begin or end with white space.
// A span of only white space becomes an empty span at its end.
func (s Span) TrimSpace() Span {
	text := s.Text()
	left := len(text) - len(strings.TrimLeft(text, " \t\r\n"))
	right := len(strings.TrimRight(text, " \t\r\n"))
	if right < left {
		return s.Sub(len(text), len(text))
	}
	return s.Sub(left, right)
}

// Cover returns the smallest span containing both spans. Spans over
// different sources are never combined; the receiver is returned as is.
func (s Span) Cover(other Span) Span {
	if s.src != other.src {
		return s
	}
	if other.start < s.start {
		s.start = other.start
	}
	if other.end > s.end {
		s.end = other.end
	}
	return s
}

// Position is the file position of the first covered byte.
func (s Span) Position() Position {
	if s.src == nil {
		return Position{}
	}
	return s.src.Position(s.Start())
}

func (s Span) String() string {
	if s.src == nil {
		return "<no span>"
	}
	return fmt.Sprintf("%s:%s", s.src.Name, s.Position())
}
