package tags

import (
	"strings"

	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/span"
)

// Block is the result of splitting one comment body.
type Block struct {
	// Desc is the free text before the first tag, dedented.
	Desc string
	// DescSpan covers the raw description lines.
	DescSpan span.Span
	// Tags holds every tag that parsed, in source order.
	Tags []Tag
}

// ParseBlock splits a comment body into its description and tags. A line
// whose first non-blank character is '@' followed by a tag name always
// starts a new tag; the tag's arguments run until the next such line.
//
// Tags that fail to parse are reported in the returned error, a
// diagnostic.Diagnostics in source order. The Block still holds every tag
// that parsed, so callers decide whether a partial result is useful.
func ParseBlock(body span.Span) (Block, error) {
	var (
		block     Block
		collector diagnostic.Collector
	)

	text := body.Text()
	descEnd := len(text)
	tagName := span.Span{}
	tagStart := -1

	flush := func(end int) {
		if tagStart < 0 {
			return
		}
		tag, err := Parse(tagName, body.Sub(tagStart, end))
		if err != nil {
			collector.Extend(err)
			return
		}
		block.Tags = append(block.Tags, tag)
	}

	for offset := 0; offset < len(text); {
		lineEnd := strings.IndexByte(text[offset:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += offset
		}

		line := text[offset:lineEnd]
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if n := tagNameLen(line[indent:]); n > 0 {
			flush(offset)
			if tagStart < 0 {
				descEnd = offset
			}
			nameStart := offset + indent
			tagName = body.Sub(nameStart, nameStart+n)
			tagStart = nameStart + n
		}

		offset = lineEnd + 1
	}
	flush(len(text))

	block.DescSpan = body.Sub(0, descEnd)
	block.Desc = Dedent(block.DescSpan.Text())
	return block, collector.Err()
}

// tagNameLen returns the length of a leading `@name` (including '@') when
// it is followed by white space or the end of the line, otherwise 0.
func tagNameLen(line string) int {
	if len(line) < 2 || line[0] != '@' || !isIdentByte(line[1], true) {
		return 0
	}
	n := 2
	for n < len(line) && isIdentByte(line[n], false) {
		n++
	}
	if n < len(line) && !isSpace(line[n]) {
		return 0
	}
	return n
}
