package docentry

import (
	"strings"

	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/syntax"
	"github.com/Zachacious/go-luadoc/internal/tags"
)

// Field is one field of a table type, from either the declaration itself
// or a @field tag.
type Field struct {
	Name    string `json:"name" yaml:"name"`
	LuaType string `json:"lua_type" yaml:"lua_type"`
	Desc    string `json:"desc" yaml:"desc"`
}

// FieldFromTag converts a @field tag.
func FieldFromTag(tag tags.FieldTag) Field {
	return Field{
		Name:    tag.Name.Text(),
		LuaType: tag.LuaType.Text(),
		Desc:    tag.Desc,
	}
}

// TypeDocEntry documents a type or interface.
type TypeDocEntry struct {
	Name    string           `json:"name" yaml:"name"`
	Desc    string           `json:"desc" yaml:"desc"`
	LuaType *string          `json:"lua_type,omitempty" yaml:"lua_type,omitempty"`
	Fields  []Field          `json:"fields,omitempty" yaml:"fields,omitempty"`
	Tags    []tags.CustomTag `json:"tags,omitempty" yaml:"tags,omitempty"`
	Private bool             `json:"private,omitempty" yaml:"private,omitempty"`
	Ignore  bool             `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	OutputSource doccomment.OutputSource `json:"source" yaml:"source"`
	Source       *doccomment.DocComment  `json:"-" yaml:"-"`
	Within       string                  `json:"-" yaml:"-"`
}

var typeFolds = foldTable[TypeDocEntry]{
	tags.KindType: func(e *TypeDocEntry, t tags.Tag) {
		if luaType := t.(tags.TypeTag).LuaType.Text(); luaType != "" {
			e.LuaType = &luaType
		}
	},
	tags.KindField: func(e *TypeDocEntry, t tags.Tag) {
		e.Fields = append(e.Fields, FieldFromTag(t.(tags.FieldTag)))
	},
	tags.KindCustom: func(e *TypeDocEntry, t tags.Tag) {
		e.Tags = append(e.Tags, t.(tags.CustomTag))
	},
	tags.KindPrivate: func(e *TypeDocEntry, _ tags.Tag) { e.Private = true },
	tags.KindIgnore:  func(e *TypeDocEntry, _ tags.Tag) { e.Ignore = true },
}

// ParseType builds a type entry. Fields declared by a table type are filled
// in before the tags, so @field tags add to them.
func ParseType(args ParseArguments) (*TypeDocEntry, error) {
	within, err := requireWithin(args, KindType)
	if err != nil {
		return nil, err
	}

	entry := &TypeDocEntry{
		Name:   args.Name,
		Desc:   args.Desc,
		Within: within,
		Source: args.Source,
	}
	if args.Source != nil {
		entry.OutputSource = args.Source.OutputSource

		switch node := args.Source.Node.(type) {
		case *syntax.TableTypeDeclaration:
			entry.Fields = structuralFields(node)
		case *syntax.TypeDeclaration:
			value := node.Value
			entry.LuaType = &value
		}
	}

	if err := fold(entry, KindType, typeFolds, args.Tags); err != nil {
		return nil, err
	}
	return entry, nil
}

func structuralFields(decl *syntax.TableTypeDeclaration) []Field {
	fields := make([]Field, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		fields = append(fields, Field{
			Name:    keyName(f.Key),
			LuaType: f.Value,
			Desc:    leadingComment(f.LeadingTrivia),
		})
	}
	return fields
}

// keyName is the first identifier among the key tokens, or "".
func keyName(key []syntax.Token) string {
	for _, tok := range key {
		if tok.Kind == syntax.TokenIdentifier {
			return tok.Text
		}
	}
	return ""
}

// leadingComment joins the lines of every comment in trivia, each line
// trimmed, with "\n".
func leadingComment(trivia []syntax.Trivia) string {
	var lines []string
	for _, tr := range trivia {
		if tr.Kind != syntax.TriviaSingleLineComment && tr.Kind != syntax.TriviaMultiLineComment {
			continue
		}
		for _, line := range strings.Split(tr.Text, "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (*TypeDocEntry) EntryKind() Kind                   { return KindType }
func (e *TypeDocEntry) EntryName() string               { return e.Name }
func (e *TypeDocEntry) Comment() *doccomment.DocComment { return e.Source }
func (*TypeDocEntry) docEntry()                         {}
