package doccomment

import (
	"strings"

	"github.com/Zachacious/go-luadoc/internal/span"
	"github.com/Zachacious/go-luadoc/internal/syntax"
)

// Find returns every doc comment in text, in source order. Doc comments are
// long comments opened with at least one '=' (`--[=[ ... ]=]`) and runs of
// consecutive `---` line comments.
func Find(path, text string) []*DocComment {
	lines := splitLines(text)
	file := span.NewSource(path, text)

	var comments []*DocComment
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		trimmed := strings.TrimLeft(ln.text, " \t")
		indent := len(ln.text) - len(trimmed)

		if level, ok := docBracket(trimmed); ok {
			opener := indent + len("--[") + level + len("[")
			closing := "]" + strings.Repeat("=", level) + "]"

			bodyStart := ln.start + opener
			rel := strings.Index(text[bodyStart:], closing)
			bodyEnd := len(text)
			if rel >= 0 {
				bodyEnd = bodyStart + rel
			}

			body := span.NewSourceAt(path, text[bodyStart:bodyEnd], i+1, opener+1)
			body.File = file
			end := bodyEnd + len(closing)
			if end > len(text) {
				end = len(text)
			}
			comments = append(comments, newComment(path, body, text, end, i+1))

			for i+1 < len(lines) && lines[i+1].start < end {
				i++
			}
			continue
		}

		if isTripleDash(trimmed) {
			first := i
			var b strings.Builder
			for ; i < len(lines); i++ {
				t := strings.TrimLeft(lines[i].text, " \t")
				if !isTripleDash(t) {
					break
				}
				if i > first {
					b.WriteByte('\n')
				}
				prefix := len(lines[i].text) - len(t) + len("---")
				b.WriteString(strings.Repeat(" ", prefix))
				b.WriteString(lines[i].text[prefix:])
			}
			i--

			body := span.NewSourceAt(path, b.String(), first+1, 1)
			body.File = file
			comments = append(comments, newComment(path, body, text, lines[i].end, first+1))
		}
	}
	return comments
}

func newComment(path string, body *span.Source, text string, after, commentLine int) *DocComment {
	c := &DocComment{
		Body:         body,
		OutputSource: OutputSource{Path: path, Line: commentLine},
	}

	// the statement must begin on a later line than the comment ends
	rest := text[after:]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return c
	}
	line := strings.Count(text[:after], "\n") + 1
	rest = rest[nl+1:]
	line++

	for {
		trimmed := strings.TrimLeft(rest, " \t\r")
		if !strings.HasPrefix(trimmed, "\n") {
			rest = trimmed
			break
		}
		rest = trimmed[1:]
		line++
	}
	// another doc comment directly after means nothing is documented here
	if strings.HasPrefix(rest, "---") || startsDocBracket(rest) {
		return c
	}

	if node, ok := syntax.ReadDeclaration(rest, line); ok {
		c.Node = node
		c.OutputSource.Line = node.DeclLine()
	}
	return c
}

// docBracket reports the level of a `--[=[` opener, which must be at least 1.
func docBracket(line string) (int, bool) {
	if !strings.HasPrefix(line, "--[") {
		return 0, false
	}
	level := 0
	for 3+level < len(line) && line[3+level] == '=' {
		level++
	}
	if level == 0 || 3+level >= len(line) || line[3+level] != '[' {
		return 0, false
	}
	return level, true
}

func startsDocBracket(text string) bool {
	_, ok := docBracket(text)
	return ok
}

func isTripleDash(line string) bool {
	return strings.HasPrefix(line, "---") && !strings.HasPrefix(line, "----")
}

type lineInfo struct {
	text       string
	start, end int
}

func splitLines(text string) []lineInfo {
	var lines []lineInfo
	for start := 0; start <= len(text); {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			lines = append(lines, lineInfo{text: strings.TrimSuffix(text[start:], "\r"), start: start, end: len(text)})
			break
		}
		end += start
		lines = append(lines, lineInfo{text: strings.TrimSuffix(text[start:end], "\r"), start: start, end: end})
		start = end + 1
	}
	return lines
}
