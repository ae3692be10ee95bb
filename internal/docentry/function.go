package docentry

import (
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/tags"
)

// FunctionType separates functions called with a dot from methods called
// with a colon.
type FunctionType string

const (
	FunctionMethod FunctionType = "method"
	FunctionStatic FunctionType = "static"
)

// FunctionDocEntry documents a function or method.
type FunctionDocEntry struct {
	Name         string              `json:"name" yaml:"name"`
	Desc         string              `json:"desc" yaml:"desc"`
	Within       string              `json:"within" yaml:"within"`
	Params       []tags.ParamTag     `json:"params" yaml:"params"`
	Returns      []tags.ReturnTag    `json:"returns" yaml:"returns"`
	Markers      []tags.MarkerTag    `json:"markers,omitempty" yaml:"markers,omitempty"`
	FunctionType FunctionType        `json:"function_type" yaml:"function_type"`
	Since        *string             `json:"since,omitempty" yaml:"since,omitempty"`
	Deprecated   *tags.DeprecatedTag `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	OutputSource doccomment.OutputSource `json:"source" yaml:"source"`
	Source       *doccomment.DocComment  `json:"-" yaml:"-"`
}

var functionFolds = foldTable[FunctionDocEntry]{
	tags.KindParam: func(e *FunctionDocEntry, t tags.Tag) {
		e.Params = append(e.Params, t.(tags.ParamTag))
	},
	tags.KindReturn: func(e *FunctionDocEntry, t tags.Tag) {
		e.Returns = append(e.Returns, t.(tags.ReturnTag))
	},
	tags.KindMarker: func(e *FunctionDocEntry, t tags.Tag) {
		e.Markers = append(e.Markers, t.(tags.MarkerTag))
	},
	tags.KindDeprecated: func(e *FunctionDocEntry, t tags.Tag) {
		dep := t.(tags.DeprecatedTag)
		e.Deprecated = &dep
	},
	tags.KindSince: func(e *FunctionDocEntry, t tags.Tag) {
		version := t.(tags.SinceTag).Version.Text()
		e.Since = &version
	},
}

// ParseFunction builds a function or method entry.
func ParseFunction(args ParseArguments, functionType FunctionType) (*FunctionDocEntry, error) {
	within, err := requireWithin(args, KindFunction)
	if err != nil {
		return nil, err
	}

	entry := &FunctionDocEntry{
		Name:         args.Name,
		Desc:         args.Desc,
		Within:       within,
		Params:       []tags.ParamTag{},
		Returns:      []tags.ReturnTag{},
		FunctionType: functionType,
		Source:       args.Source,
	}
	if args.Source != nil {
		entry.OutputSource = args.Source.OutputSource
	}

	if err := fold(entry, KindFunction, functionFolds, args.Tags); err != nil {
		return nil, err
	}
	return entry, nil
}

func (*FunctionDocEntry) EntryKind() Kind                   { return KindFunction }
func (e *FunctionDocEntry) EntryName() string               { return e.Name }
func (e *FunctionDocEntry) Comment() *doccomment.DocComment { return e.Source }
func (*FunctionDocEntry) docEntry()                         {}
