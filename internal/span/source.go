package span

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"fortio.org/safecast"
)

// Source owns a buffer of text that spans point into. Every Span keeps a
// pointer to its Source, so the buffer lives as long as anything derived
// from it.
type Source struct {
	// Name is the display name used in diagnostics, usually a file path.
	Name string
	// Text is the buffer itself.
	Text string
	// Line and Column are the 1-based file position of Text[0]. A comment
	// body cut out of a larger file uses them to keep reporting real file
	// positions.
	Line   int
	Column int
	// File is the whole file Text was cut from, nil when Text is the file.
	File *Source

	once       sync.Once
	lineStarts []uint32
}

// Position is a 1-based line/column pair. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NewSource creates a Source that starts at line 1, column 1.
func NewSource(name, text string) *Source {
	return NewSourceAt(name, text, 1, 1)
}

// NewSourceAt creates a Source whose first byte sits at the given file
// position.
func NewSourceAt(name, text string, line, column int) *Source {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	return &Source{Name: name, Text: text, Line: line, Column: column}
}

// Span returns the span covering Text[start:end].
func (src *Source) Span(start, end int) Span {
	if start < 0 || end < start || end > len(src.Text) {
		panic(fmt.Errorf("span %d..%d out of range for %q (len %d)", start, end, src.Name, len(src.Text)))
	}
	return Span{src: src, start: toOffset(start), end: toOffset(end)}
}

// Whole returns the span covering the entire buffer.
func (src *Source) Whole() Span {
	return src.Span(0, len(src.Text))
}

// Position converts a byte offset into a file position.
func (src *Source) Position(offset int) Position {
	src.once.Do(src.buildLineIndex)

	off := toOffset(offset)
	idx := sort.Search(len(src.lineStarts), func(i int) bool {
		return src.lineStarts[i] > off
	}) - 1
	if idx < 0 {
		idx = 0
	}

	col := int(off-src.lineStarts[idx]) + 1
	if idx == 0 {
		col += src.Column - 1
	}
	return Position{Line: src.Line + idx, Column: col}
}

// LineText returns the text of the buffer line containing offset, without
// the trailing newline.
func (src *Source) LineText(offset int) string {
	src.once.Do(src.buildLineIndex)

	off := toOffset(offset)
	idx := sort.Search(len(src.lineStarts), func(i int) bool {
		return src.lineStarts[i] > off
	}) - 1
	if idx < 0 {
		idx = 0
	}
	rest := src.Text[src.lineStarts[idx]:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSuffix(rest, "\r")
}

// FileLine returns the text of 1-based file line n, without the trailing
// newline. It reads from File when there is one, so comment delimiters
// blanked out of a body are shown as written.
func (src *Source) FileLine(n int) (string, bool) {
	if src.File != nil {
		return src.File.FileLine(n)
	}
	src.once.Do(src.buildLineIndex)

	idx := n - src.Line
	if idx < 0 || idx >= len(src.lineStarts) {
		return "", false
	}
	// a buffer starting mid-line does not hold all of its first line
	if idx == 0 && src.Column > 1 {
		return "", false
	}
	text := src.Text[src.lineStarts[idx]:]
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[:nl]
	}
	return strings.TrimSuffix(text, "\r"), true
}

func (src *Source) buildLineIndex() {
	src.lineStarts = append(src.lineStarts, 0)
	for i := 0; i < len(src.Text); i++ {
		if src.Text[i] == '\n' {
			src.lineStarts = append(src.lineStarts, toOffset(i+1))
		}
	}
}

func toOffset(n int) uint32 {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return off
}
