// Package tags parses the `@name argument...` annotations found in doc
// comments into typed values.
package tags

import (
	"github.com/Zachacious/go-luadoc/internal/span"
)

// Kind identifies a tag variant.
type Kind int

const (
	KindParam Kind = iota
	KindReturn
	KindField
	KindType
	KindMarker
	KindDeprecated
	KindSince
	KindPrivate
	KindIgnore
	KindWithin
	KindEntry
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindReturn:
		return "return"
	case KindField:
		return "field"
	case KindType:
		return "type"
	case KindMarker:
		return "marker"
	case KindDeprecated:
		return "deprecated"
	case KindSince:
		return "since"
	case KindPrivate:
		return "private"
	case KindIgnore:
		return "ignore"
	case KindWithin:
		return "within"
	case KindEntry:
		return "entry"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// Tag is one parsed annotation. The set of implementations is closed.
type Tag interface {
	Kind() Kind
	// Span covers the whole tag, from its name to the end of its arguments.
	Span() span.Span
	isTag()
}

// ParamTag is `@param name [type] [-- desc]`.
type ParamTag struct {
	Name    span.Span `json:"name" yaml:"name"`
	LuaType span.Span `json:"lua_type" yaml:"lua_type"`
	Desc    string    `json:"desc" yaml:"desc"`
	Source  span.Span `json:"-" yaml:"-"`
}

// ReturnTag is `@return type [-- desc]`.
type ReturnTag struct {
	LuaType span.Span `json:"lua_type" yaml:"lua_type"`
	Desc    string    `json:"desc" yaml:"desc"`
	Source  span.Span `json:"-" yaml:"-"`
}

// FieldTag is `@field name type [-- desc]`.
type FieldTag struct {
	Name    span.Span `json:"name" yaml:"name"`
	LuaType span.Span `json:"lua_type" yaml:"lua_type"`
	Desc    string    `json:"desc" yaml:"desc"`
	Source  span.Span `json:"-" yaml:"-"`
}

// TypeTag is `@type Name [type]`.
type TypeTag struct {
	Name    span.Span `json:"name" yaml:"name"`
	LuaType span.Span `json:"lua_type" yaml:"lua_type"`
	Source  span.Span `json:"-" yaml:"-"`
}

// Marker is the name of a flag-like tag such as @server or @yields.
type Marker string

const (
	MarkerServer     Marker = "server"
	MarkerClient     Marker = "client"
	MarkerPlugin     Marker = "plugin"
	MarkerYields     Marker = "yields"
	MarkerUnreleased Marker = "unreleased"
	MarkerReadonly   Marker = "readonly"
)

// MarkerTag is one of the argument-less realm/behaviour markers.
type MarkerTag struct {
	Marker Marker
	Source span.Span
}

// MarshalText writes a marker as its bare name.
func (t MarkerTag) MarshalText() ([]byte, error) {
	return []byte(t.Marker), nil
}

// DeprecatedTag is `@deprecated [version] [-- reason]`.
type DeprecatedTag struct {
	Version span.Span `json:"version" yaml:"version"`
	Desc    string    `json:"desc" yaml:"desc"`
	Source  span.Span `json:"-" yaml:"-"`
}

// SinceTag is `@since version`.
type SinceTag struct {
	Version span.Span
	Source  span.Span
}

// PrivateTag is `@private`.
type PrivateTag struct {
	Source span.Span
}

// IgnoreTag is `@ignore`.
type IgnoreTag struct {
	Source span.Span
}

// WithinTag is `@within Scope`.
type WithinTag struct {
	Name   span.Span
	Source span.Span
}

// EntryKind is the kind of doc entry a comment declares.
type EntryKind string

const (
	EntryClass     EntryKind = "class"
	EntryFunction  EntryKind = "function"
	EntryMethod    EntryKind = "method"
	EntryInterface EntryKind = "interface"
)

// EntryTag is one of @class, @function, @method or @interface. It names the
// entry and selects which builder handles the comment.
type EntryTag struct {
	Entry  EntryKind
	Name   span.Span
	Source span.Span
}

// CustomTag is any tag whose name is not recognised.
type CustomTag struct {
	Name   span.Span `json:"name" yaml:"name"`
	Text   string    `json:"text" yaml:"text"`
	Source span.Span `json:"-" yaml:"-"`
}

func (ParamTag) Kind() Kind      { return KindParam }
func (ReturnTag) Kind() Kind     { return KindReturn }
func (FieldTag) Kind() Kind      { return KindField }
func (TypeTag) Kind() Kind       { return KindType }
func (MarkerTag) Kind() Kind     { return KindMarker }
func (DeprecatedTag) Kind() Kind { return KindDeprecated }
func (SinceTag) Kind() Kind      { return KindSince }
func (PrivateTag) Kind() Kind    { return KindPrivate }
func (IgnoreTag) Kind() Kind     { return KindIgnore }
func (WithinTag) Kind() Kind     { return KindWithin }
func (EntryTag) Kind() Kind      { return KindEntry }
func (CustomTag) Kind() Kind     { return KindCustom }

func (t ParamTag) Span() span.Span      { return t.Source }
func (t ReturnTag) Span() span.Span     { return t.Source }
func (t FieldTag) Span() span.Span      { return t.Source }
func (t TypeTag) Span() span.Span       { return t.Source }
func (t MarkerTag) Span() span.Span     { return t.Source }
func (t DeprecatedTag) Span() span.Span { return t.Source }
func (t SinceTag) Span() span.Span      { return t.Source }
func (t PrivateTag) Span() span.Span    { return t.Source }
func (t IgnoreTag) Span() span.Span     { return t.Source }
func (t WithinTag) Span() span.Span     { return t.Source }
func (t EntryTag) Span() span.Span      { return t.Source }
func (t CustomTag) Span() span.Span     { return t.Source }

func (ParamTag) isTag()      {}
func (ReturnTag) isTag()     {}
func (FieldTag) isTag()      {}
func (TypeTag) isTag()       {}
func (MarkerTag) isTag()     {}
func (DeprecatedTag) isTag() {}
func (SinceTag) isTag()      {}
func (PrivateTag) isTag()    {}
func (IgnoreTag) isTag()     {}
func (WithinTag) isTag()     {}
func (EntryTag) isTag()      {}
func (CustomTag) isTag()     {}
