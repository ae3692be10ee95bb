// Package syntax models the few Lua/Luau declarations that doc comments
// attach to. It is not a Lua parser: it reads just enough of the statement
// after a comment to name it and, for table types, list its fields.
package syntax

// Node is a declaration a doc comment documents.
type Node interface {
	// DeclName is the declared name as written, e.g. "Players.kick".
	DeclName() string
	// DeclLine is the 1-based line the declaration starts on.
	DeclLine() int
	node()
}

// FunctionDeclaration is `function A.b()`, `function A:b()`,
// `local function f()` or `A.b = function()`.
type FunctionDeclaration struct {
	Name string
	// Owner is the table the function is stored in ("A" for A.b.c is
	// "A.b"), empty for plain globals and locals.
	Owner string
	// Method is true for colon declarations.
	Method bool
	Local  bool
	Line   int
}

// ShortName is the last segment of Name.
func (f *FunctionDeclaration) ShortName() string {
	if f.Owner == "" {
		return f.Name
	}
	return f.Name[len(f.Owner)+1:]
}

// TypeDeclaration is `[export] type Name = <type>` where the type is not a
// table literal.
type TypeDeclaration struct {
	Name     string
	Exported bool
	Value    string
	Line     int
}

// TableTypeDeclaration is `[export] type Name = { ... }`.
type TableTypeDeclaration struct {
	Name     string
	Exported bool
	Fields   []TypeField
	Line     int
}

// TypeField is one `key: type` entry of a table type.
type TypeField struct {
	// Key holds the tokens of the field key: an identifier for `name: T`,
	// or the bracketed tokens for `["name"]: T` and `[K]: V`.
	Key []Token
	// LeadingTrivia is the white space and comments before the key.
	LeadingTrivia []Trivia
	// Value is the field's type as written.
	Value string
}

// TokenKind classifies a key token.
type TokenKind int

const (
	TokenIdentifier TokenKind = iota
	TokenSymbol
	TokenString
	TokenOther
)

// Token is a lexical token of a field key.
type Token struct {
	Kind TokenKind
	Text string
}

// TriviaKind classifies trivia.
type TriviaKind int

const (
	TriviaWhitespace TriviaKind = iota
	TriviaSingleLineComment
	TriviaMultiLineComment
)

// Trivia is white space or a comment. For comments Text holds the comment
// contents without the `--`, `--[[` or `]]` delimiters.
type Trivia struct {
	Kind TriviaKind
	Text string
}

func (f *FunctionDeclaration) DeclName() string  { return f.Name }
func (t *TypeDeclaration) DeclName() string      { return t.Name }
func (t *TableTypeDeclaration) DeclName() string { return t.Name }

func (f *FunctionDeclaration) DeclLine() int  { return f.Line }
func (t *TypeDeclaration) DeclLine() int      { return t.Line }
func (t *TableTypeDeclaration) DeclLine() int { return t.Line }

func (*FunctionDeclaration) node()  {}
func (*TypeDeclaration) node()      {}
func (*TableTypeDeclaration) node() {}
