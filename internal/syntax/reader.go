package syntax

import (
	"strings"
)

// ReadDeclaration reads the statement at the start of text. line is the
// file line text starts on. It reports false when the statement is not a
// declaration this package understands.
func ReadDeclaration(text string, line int) (Node, bool) {
	r := &reader{text: text}
	r.skipSpace()

	switch {
	case r.keyword("local"):
		r.skipSpace()
		if r.keyword("function") {
			r.skipSpace()
			name := r.ident()
			if name == "" {
				return nil, false
			}
			return &FunctionDeclaration{Name: name, Local: true, Line: line}, true
		}
		name := r.ident()
		if name == "" || !r.assignsFunction() {
			return nil, false
		}
		return &FunctionDeclaration{Name: name, Local: true, Line: line}, true

	case r.keyword("function"):
		r.skipSpace()
		return r.functionName(line)

	case r.keyword("export"):
		r.skipSpace()
		if !r.keyword("type") {
			return nil, false
		}
		return r.typeDeclaration(true, line)

	case r.keyword("type"):
		return r.typeDeclaration(false, line)
	}

	// A.b = function(...)
	start := r.pos
	decl, ok := r.functionName(line)
	if !ok {
		return nil, false
	}
	fn := decl.(*FunctionDeclaration)
	if fn.Method || fn.Owner == "" {
		r.pos = start
		return nil, false
	}
	if !r.assignsFunction() {
		return nil, false
	}
	return fn, true
}

type reader struct {
	text string
	pos  int
}

func (r *reader) eof() bool { return r.pos >= len(r.text) }

func (r *reader) peek() byte {
	if r.eof() {
		return 0
	}
	return r.text[r.pos]
}

func (r *reader) has(prefix string) bool {
	return strings.HasPrefix(r.text[r.pos:], prefix)
}

func (r *reader) skipSpace() {
	for !r.eof() && isSpace(r.peek()) {
		r.pos++
	}
}

func (r *reader) skipInlineSpace() {
	for !r.eof() && (r.peek() == ' ' || r.peek() == '\t' || r.peek() == '\r') {
		r.pos++
	}
}

// keyword consumes kw when it is not the prefix of a longer identifier.
func (r *reader) keyword(kw string) bool {
	if !r.has(kw) {
		return false
	}
	end := r.pos + len(kw)
	if end < len(r.text) && isIdentByte(r.text[end], false) {
		return false
	}
	r.pos = end
	return true
}

func (r *reader) ident() string {
	start := r.pos
	for !r.eof() && isIdentByte(r.peek(), r.pos == start) {
		r.pos++
	}
	return r.text[start:r.pos]
}

// functionName reads `a.b.c` or `a.b:c`.
func (r *reader) functionName(line int) (Node, bool) {
	first := r.ident()
	if first == "" {
		return nil, false
	}
	name := first
	owner := ""
	method := false
	for !r.eof() && (r.peek() == '.' || r.peek() == ':') && !method {
		sep := r.peek()
		r.pos++
		part := r.ident()
		if part == "" {
			return nil, false
		}
		owner = name
		name += string(sep) + part
		method = sep == ':'
	}
	return &FunctionDeclaration{Name: name, Owner: owner, Method: method, Line: line}, true
}

func (r *reader) assignsFunction() bool {
	r.skipSpace()
	if r.peek() != '=' {
		return false
	}
	r.pos++
	r.skipSpace()
	return r.keyword("function")
}

func (r *reader) typeDeclaration(exported bool, line int) (Node, bool) {
	r.skipSpace()
	name := r.ident()
	if name == "" {
		return nil, false
	}
	r.skipSpace()
	if r.peek() == '<' {
		if !r.skipBalanced('<', '>') {
			return nil, false
		}
		r.skipSpace()
	}
	if r.peek() != '=' {
		return nil, false
	}
	r.pos++
	r.skipSpace()

	if r.peek() != '{' {
		value := r.typeExpression(true)
		if value == "" {
			return nil, false
		}
		return &TypeDeclaration{Name: name, Exported: exported, Value: value, Line: line}, true
	}

	fields, ok := r.tableFields()
	if !ok {
		return nil, false
	}
	return &TableTypeDeclaration{Name: name, Exported: exported, Fields: fields, Line: line}, true
}

// tableFields reads `{ key: T, ... }` starting at '{'.
func (r *reader) tableFields() ([]TypeField, bool) {
	r.pos++
	r.trailingTrivia()

	var fields []TypeField
	for {
		leading := r.trivia()
		if r.eof() {
			return nil, false
		}
		if r.peek() == '}' {
			r.pos++
			return fields, true
		}

		key, ok := r.fieldKey()
		if !ok {
			return nil, false
		}
		r.skipInlineSpace()
		if r.peek() != ':' {
			return nil, false
		}
		r.pos++

		value := r.typeExpression(false)
		fields = append(fields, TypeField{Key: key, LeadingTrivia: leading, Value: value})

		// comments after the value on the same line belong to it
		r.skipInlineSpace()
		if r.has("--") {
			r.trailingTrivia()
		}
		switch r.peek() {
		case ',', ';':
			r.pos++
			r.trailingTrivia()
		case '}':
		default:
			if r.eof() {
				return nil, false
			}
		}
	}
}

func (r *reader) fieldKey() ([]Token, bool) {
	if r.peek() != '[' {
		name := r.ident()
		if name == "" {
			return nil, false
		}
		// Luau property modifiers: `read name: T`
		if name == "read" || name == "write" {
			save := r.pos
			r.skipInlineSpace()
			if next := r.ident(); next != "" {
				name = next
			} else {
				r.pos = save
			}
		}
		return []Token{{Kind: TokenIdentifier, Text: name}}, true
	}

	tokens := []Token{{Kind: TokenSymbol, Text: "["}}
	r.pos++
	for {
		r.skipSpace()
		switch c := r.peek(); {
		case r.eof():
			return nil, false
		case c == ']':
			r.pos++
			return append(tokens, Token{Kind: TokenSymbol, Text: "]"}), true
		case c == '"' || c == '\'':
			start := r.pos
			r.skipString()
			tokens = append(tokens, Token{Kind: TokenString, Text: r.text[start:r.pos]})
		case isIdentByte(c, true):
			tokens = append(tokens, Token{Kind: TokenIdentifier, Text: r.ident()})
		default:
			r.pos++
			tokens = append(tokens, Token{Kind: TokenOther, Text: string(c)})
		}
	}
}

// typeExpression reads a type up to a top-level separator. In a table that
// is ',', ';' or the closing '}'; at statement level it is the end of the
// line. A top-level comment always ends the type.
func (r *reader) typeExpression(statement bool) string {
	start := r.pos
	depth := 0
	for !r.eof() {
		c := r.peek()
		if depth == 0 {
			if r.has("--") {
				break
			}
			if statement && c == '\n' {
				break
			}
			if !statement && (c == ',' || c == ';' || c == '}') {
				break
			}
		}
		switch c {
		case '"', '\'':
			r.skipString()
			continue
		case '(', '{', '[', '<':
			depth++
		case ')', '}', ']':
			depth--
		case '>':
			if r.pos > 0 && r.text[r.pos-1] != '-' {
				depth--
			}
		}
		r.pos++
	}
	return strings.TrimSpace(r.text[start:r.pos])
}

func (r *reader) skipBalanced(open, closing byte) bool {
	depth := 0
	for !r.eof() {
		switch r.peek() {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				r.pos++
				return true
			}
		}
		r.pos++
	}
	return false
}

func (r *reader) skipString() {
	quote := r.peek()
	r.pos++
	for !r.eof() {
		c := r.peek()
		r.pos++
		if c == '\\' {
			r.pos++
			continue
		}
		if c == quote || c == '\n' {
			return
		}
	}
}

// trivia collects white space and comments.
func (r *reader) trivia() []Trivia {
	var out []Trivia
	for !r.eof() {
		if isSpace(r.peek()) {
			start := r.pos
			r.skipSpace()
			out = append(out, Trivia{Kind: TriviaWhitespace, Text: r.text[start:r.pos]})
			continue
		}
		if c, ok := r.comment(); ok {
			out = append(out, c)
			continue
		}
		break
	}
	return out
}

// trailingTrivia skips white space and comments up to and including the
// end of the current line.
func (r *reader) trailingTrivia() {
	for !r.eof() {
		switch c := r.peek(); {
		case c == '\n':
			r.pos++
			return
		case isSpace(c):
			r.pos++
		default:
			if _, ok := r.comment(); !ok {
				return
			}
		}
	}
}

func (r *reader) comment() (Trivia, bool) {
	if !r.has("--") {
		return Trivia{}, false
	}
	if level, ok := longBracket(r.text[r.pos+2:]); ok {
		open := 2 + level + 2
		closing := "]" + strings.Repeat("=", level) + "]"
		body := r.text[r.pos+open:]
		end := strings.Index(body, closing)
		if end < 0 {
			r.pos = len(r.text)
			return Trivia{Kind: TriviaMultiLineComment, Text: body}, true
		}
		r.pos += open + end + len(closing)
		return Trivia{Kind: TriviaMultiLineComment, Text: body[:end]}, true
	}

	start := r.pos + 2
	end := strings.IndexByte(r.text[start:], '\n')
	if end < 0 {
		end = len(r.text) - start
	}
	r.pos = start + end
	return Trivia{Kind: TriviaSingleLineComment, Text: strings.TrimSuffix(r.text[start:r.pos], "\r")}, true
}

// longBracket reports the level of a `[==[` opener at the start of text.
func longBracket(text string) (int, bool) {
	if !strings.HasPrefix(text, "[") {
		return 0, false
	}
	level := 0
	for 1+level < len(text) && text[1+level] == '=' {
		level++
	}
	if 1+level < len(text) && text[1+level] == '[' {
		return level, true
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
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
