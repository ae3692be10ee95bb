package docentry

import (
	"github.com/Zachacious/go-luadoc/internal/doccomment"
)

// ClassDocEntry documents a class. Functions and types are attached to it
// later by matching their within scope against the class name.
type ClassDocEntry struct {
	Name string `json:"name" yaml:"name"`
	Desc string `json:"desc" yaml:"desc"`

	OutputSource doccomment.OutputSource `json:"source" yaml:"source"`
	Source       *doccomment.DocComment  `json:"-" yaml:"-"`
}

// classFolds is empty: every tag left on a class comment is unused.
var classFolds = foldTable[ClassDocEntry]{}

// ParseClass builds a class entry.
func ParseClass(args ParseArguments) (*ClassDocEntry, error) {
	entry := &ClassDocEntry{
		Name:   args.Name,
		Desc:   args.Desc,
		Source: args.Source,
	}
	if args.Source != nil {
		entry.OutputSource = args.Source.OutputSource
	}

	if err := fold(entry, KindClass, classFolds, args.Tags); err != nil {
		return nil, err
	}
	return entry, nil
}

func (*ClassDocEntry) EntryKind() Kind                   { return KindClass }
func (e *ClassDocEntry) EntryName() string               { return e.Name }
func (e *ClassDocEntry) Comment() *doccomment.DocComment { return e.Source }
func (*ClassDocEntry) docEntry()                         {}
