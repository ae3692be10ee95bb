package tags

import (
	"strings"

	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/span"
)

// Parse builds the tag named by name from its argument text. The name span
// may include the leading '@'. A malformed remainder produces exactly one
// diagnostic.Diagnostic and no tag. Unknown names become a CustomTag.
func Parse(name, remainder span.Span) (Tag, error) {
	source := name
	if strings.HasPrefix(name.Text(), "@") {
		name = name.Sub(1, name.Len())
	}
	remainder = remainder.TrimSpace()
	if !remainder.IsEmpty() {
		source = source.Cover(remainder)
	}

	switch n := name.Text(); n {
	case "param":
		return parseParam(remainder, source)
	case "return":
		return parseReturn(remainder, source)
	case "field":
		return parseField(remainder, source)
	case "type":
		return parseType(remainder, source)
	case "server", "client", "plugin", "yields", "unreleased", "readonly":
		if err := expectNoArguments(remainder); err != nil {
			return nil, err
		}
		return MarkerTag{Marker: Marker(n), Source: source}, nil
	case "deprecated":
		return parseDeprecated(remainder, source), nil
	case "since":
		return parseSince(remainder, source)
	case "private":
		if err := expectNoArguments(remainder); err != nil {
			return nil, err
		}
		return PrivateTag{Source: source}, nil
	case "ignore":
		if err := expectNoArguments(remainder); err != nil {
			return nil, err
		}
		return IgnoreTag{Source: source}, nil
	case "within":
		return parseWithin(remainder, source)
	case "class", "function", "method", "interface":
		return parseEntry(EntryKind(n), remainder, source)
	default:
		return CustomTag{Name: name, Text: NormalizeDesc(remainder.Text()), Source: source}, nil
	}
}

func parseParam(rem, source span.Span) (Tag, error) {
	name, rest, err := leadingIdent(rem, source, "parameter")
	if err != nil {
		return nil, err
	}
	luaType, desc := splitTypeAndDesc(rest)
	return ParamTag{Name: name, LuaType: luaType, Desc: desc, Source: source}, nil
}

func parseReturn(rem, source span.Span) (Tag, error) {
	luaType, desc := splitTypeAndDesc(rem)
	if luaType.IsEmpty() {
		return nil, diagnostic.At(source, "expected a return type")
	}
	return ReturnTag{LuaType: luaType, Desc: desc, Source: source}, nil
}

func parseField(rem, source span.Span) (Tag, error) {
	name, rest, err := leadingIdent(rem, source, "field")
	if err != nil {
		return nil, err
	}
	luaType, desc := splitTypeAndDesc(rest)
	if luaType.IsEmpty() {
		return nil, diagnostic.At(source, "expected a field type")
	}
	return FieldTag{Name: name, LuaType: luaType, Desc: desc, Source: source}, nil
}

func parseType(rem, source span.Span) (Tag, error) {
	name, rest, err := leadingIdent(rem, source, "type")
	if err != nil {
		return nil, err
	}
	return TypeTag{Name: name, LuaType: rest.TrimSpace(), Source: source}, nil
}

func parseDeprecated(rem, source span.Span) Tag {
	tag := DeprecatedTag{Version: rem.Sub(0, 0), Source: source}
	if rem.IsEmpty() {
		return tag
	}

	text := rem.Text()
	if i := strings.Index(text, "--"); i >= 0 {
		tag.Version = rem.Sub(0, i).TrimSpace()
		tag.Desc = NormalizeDesc(text[i+2:])
		return tag
	}

	word := strings.IndexAny(text, " \t\r\n")
	if word < 0 {
		word = len(text)
	}
	if looksLikeVersion(text[:word]) {
		tag.Version = rem.Sub(0, word)
		tag.Desc = NormalizeDesc(text[word:])
		return tag
	}
	tag.Desc = NormalizeDesc(text)
	return tag
}

// parseSince keeps the first word as the version. A `--` note or any
// further text is dropped.
func parseSince(rem, source span.Span) (Tag, error) {
	text := rem.Text()
	end := len(text)
	if i := strings.Index(text, "--"); i >= 0 {
		end = i
	}
	if i := strings.IndexAny(text[:end], " \t\r\n"); i >= 0 {
		end = i
	}
	version := rem.Sub(0, end).TrimSpace()
	if version.IsEmpty() {
		return nil, diagnostic.At(source, "expected a version")
	}
	return SinceTag{Version: version, Source: source}, nil
}

// parseWithin accepts a single dotted name such as `Players` or
// `Players.Kick`.
func parseWithin(rem, source span.Span) (Tag, error) {
	if rem.IsEmpty() {
		return nil, diagnostic.At(source, "expected a scope name")
	}
	text := rem.Text()
	if i := strings.IndexAny(text, " \t\r\n"); i >= 0 {
		return nil, diagnostic.At(rem.Sub(i, len(text)).TrimSpace(), "unexpected text after the scope name")
	}
	if !isDottedName(text) {
		return nil, diagnostic.At(rem, "invalid scope name")
	}
	return WithinTag{Name: rem, Source: source}, nil
}

func parseEntry(kind EntryKind, rem, source span.Span) (Tag, error) {
	if rem.IsEmpty() {
		return nil, diagnostic.At(source, "expected a name")
	}
	text := rem.Text()
	if i := strings.IndexAny(text, " \t\r\n"); i >= 0 {
		return nil, diagnostic.At(rem.Sub(i, len(text)).TrimSpace(), "unexpected text after the %s name", kind)
	}
	return EntryTag{Entry: kind, Name: rem, Source: source}, nil
}

func expectNoArguments(rem span.Span) error {
	if rem.IsEmpty() {
		return nil
	}
	return diagnostic.At(rem, "this tag does not take any arguments")
}

// leadingIdent splits an identifier off the front of rem.
func leadingIdent(rem, source span.Span, what string) (span.Span, span.Span, error) {
	if rem.IsEmpty() {
		return span.Span{}, span.Span{}, diagnostic.At(source, "expected a %s name", what)
	}
	text := rem.Text()
	n := scanIdent(text)
	if n == 0 {
		return span.Span{}, span.Span{}, diagnostic.At(rem, "expected a %s name", what)
	}
	if n < len(text) && !isSpace(text[n]) {
		end := strings.IndexAny(text, " \t\r\n")
		if end < 0 {
			end = len(text)
		}
		return span.Span{}, span.Span{}, diagnostic.At(rem.Sub(0, end), "invalid %s name", what)
	}
	return rem.Sub(0, n), rem.Sub(n, len(text)).TrimSpace(), nil
}

// splitTypeAndDesc reads a type expression up to the first `--` or the end
// of the first line. Everything after it is the description.
func splitTypeAndDesc(rest span.Span) (span.Span, string) {
	text := rest.Text()
	lineEnd := strings.IndexByte(text, '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	}
	if i := strings.Index(text[:lineEnd], "--"); i >= 0 {
		return rest.Sub(0, i).TrimSpace(), NormalizeDesc(text[i+2:])
	}

	desc := strings.TrimSpace(text[lineEnd:])
	desc = strings.TrimPrefix(desc, "--")
	return rest.Sub(0, lineEnd).TrimSpace(), NormalizeDesc(desc)
}

// scanIdent returns the length of the identifier at the start of text:
// `...` or [A-Za-z_][A-Za-z0-9_]* with an optional trailing `?`.
func scanIdent(text string) int {
	if strings.HasPrefix(text, "...") {
		return 3
	}
	n := 0
	for n < len(text) && isIdentByte(text[n], n == 0) {
		n++
	}
	if n > 0 && n < len(text) && text[n] == '?' {
		n++
	}
	return n
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func isDottedName(text string) bool {
	for _, part := range strings.Split(text, ".") {
		if part == "" || !isIdentByte(part[0], true) {
			return false
		}
		for i := 1; i < len(part); i++ {
			if !isIdentByte(part[i], false) {
				return false
			}
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func looksLikeVersion(word string) bool {
	word = strings.TrimPrefix(strings.TrimPrefix(word, "v"), "V")
	return word != "" && word[0] >= '0' && word[0] <= '9'
}
