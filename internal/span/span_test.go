package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_EmptyIsDistinctFromAbsent(t *testing.T) {
	src := NewSource("a.lua", "hello")

	var absent Span
	empty := src.Span(2, 2)

	assert.False(t, absent.IsValid())
	assert.True(t, empty.IsValid())
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.Text())
}

func TestSpan_SubAndText(t *testing.T) {
	src := NewSource("a.lua", "@param name string")
	whole := src.Whole()

	name := whole.Sub(1, 6)
	assert.Equal(t, "param", name.Text())
	assert.Equal(t, 1, name.Start())
	assert.Equal(t, 6, name.End())

	inner := whole.Sub(7, 18).Sub(0, 4)
	assert.Equal(t, "name", inner.Text())
	assert.Equal(t, 7, inner.Start())
}

func TestSpan_OutOfRangePanics(t *testing.T) {
	src := NewSource("a.lua", "abc")
	assert.Panics(t, func() { src.Span(2, 4) })
	assert.Panics(t, func() { src.Whole().Sub(2, 1) })
}

func TestSpan_TrimSpace(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "both sides", text: "  foo bar \n", want: "foo bar"},
		{name: "nothing to trim", text: "foo", want: "foo"},
		{name: "only blanks", text: "  \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSource("x", tt.text).Whole().TrimSpace()
			assert.Equal(t, tt.want, sp.Text())
			assert.True(t, sp.IsValid())
		})
	}
}

func TestSource_Position(t *testing.T) {
	src := NewSource("a.lua", "one\ntwo\nthree")

	assert.Equal(t, Position{Line: 1, Column: 1}, src.Position(0))
	assert.Equal(t, Position{Line: 1, Column: 4}, src.Position(3))
	assert.Equal(t, Position{Line: 2, Column: 1}, src.Position(4))
	assert.Equal(t, Position{Line: 3, Column: 3}, src.Position(10))
}

func TestSource_PositionWithOffset(t *testing.T) {
	// a body that starts at line 10, column 5 of its file
	src := NewSourceAt("a.lua", "abc\n  def", 10, 5)

	assert.Equal(t, Position{Line: 10, Column: 5}, src.Position(0))
	assert.Equal(t, Position{Line: 10, Column: 7}, src.Position(2))
	assert.Equal(t, Position{Line: 11, Column: 3}, src.Position(6))

	sp := src.Span(6, 9)
	require.Equal(t, "def", sp.Text())
	assert.Equal(t, "a.lua:11:3", sp.String())
}

func TestSource_LineText(t *testing.T) {
	src := NewSource("a.lua", "one\r\ntwo\nthree")
	assert.Equal(t, "one", src.LineText(1))
	assert.Equal(t, "two", src.LineText(6))
	assert.Equal(t, "three", src.LineText(len(src.Text)))
}

func TestSource_FileLine(t *testing.T) {
	file := NewSource("a.lua", "one\r\n--[=[ two\nthree")

	line, ok := file.FileLine(2)
	require.True(t, ok)
	assert.Equal(t, "--[=[ two", line)

	_, ok = file.FileLine(4)
	assert.False(t, ok)

	body := NewSourceAt("a.lua", " two\nthree", 2, 6)
	_, ok = body.FileLine(2)
	assert.False(t, ok, "a body cut mid-line has no whole first line")
	line, ok = body.FileLine(3)
	require.True(t, ok)
	assert.Equal(t, "three", line)

	body.File = file
	line, ok = body.FileLine(2)
	require.True(t, ok)
	assert.Equal(t, "--[=[ two", line)
}

func TestSpan_Cover(t *testing.T) {
	src := NewSource("a.lua", "abcdefgh")
	other := NewSource("b.lua", "abcdefgh")

	a := src.Span(1, 3)
	b := src.Span(5, 7)
	assert.Equal(t, "bcdefg", a.Cover(b).Text())
	assert.Equal(t, a, a.Cover(other.Span(0, 8)))
}
