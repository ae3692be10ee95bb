package tags

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeDesc trims every line of a (possibly multi-line) description,
// joins the lines with "\n" and trims the result.
func NormalizeDesc(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return norm.NFC.String(strings.Join(lines, "\n"))
}

// Dedent removes the indentation shared by all non-blank lines, strips
// trailing white space and drops blank lines at both ends. Relative
// indentation inside the text is kept, so markdown code blocks survive.
func Dedent(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		return ""
	}

	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if len(line) >= indent {
			line = line[indent:]
		} else {
			line = strings.TrimLeft(line, " \t")
		}
		lines[i] = line
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return norm.NFC.String(strings.Join(lines, "\n"))
}
